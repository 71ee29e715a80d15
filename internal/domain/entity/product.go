// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a catalog record. The catalog owns these values; nothing in the
// storefront core ever mutates a Product.
type Product struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Mode          ShopMode `json:"mode"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Discount      int      `json:"discount,omitempty"` // percentage off, 0 when not on sale
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Image         string   `json:"image"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Description   string   `json:"description"`
}

// OnSale reports whether the product carries a discount.
func (p Product) OnSale() bool {
	return p.Discount > 0
}
