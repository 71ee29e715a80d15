package entity

// Wishlist is a set of favorited products, unique by product id. There is no
// variant or quantity dimension; a product is either present or absent.
type Wishlist struct {
	Items []Product `json:"items"`
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{Items: []Product{}}
}

// Add inserts the product unless it is already present. Idempotent.
func (w *Wishlist) Add(product Product) {
	if w.Contains(product.ID) {
		return
	}

	w.Items = append(w.Items, product)
}

// Remove deletes the product if present, no-op otherwise.
func (w *Wishlist) Remove(productID string) {
	for i := range w.Items {
		if w.Items[i].ID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)

			return
		}
	}
}

// Contains is a pure membership test by product id.
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ID == productID {
			return true
		}
	}

	return false
}

// ItemCount is the number of favorited products.
func (w *Wishlist) ItemCount() int {
	return len(w.Items)
}
