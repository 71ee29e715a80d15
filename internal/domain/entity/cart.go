package entity

// CartLine is one product+variant+quantity selection in the cart. Lines are
// keyed by (product id, size, color): the same product in two size/color
// combinations is two distinct lines.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// Matches reports whether the line carries the given identity key.
func (l CartLine) Matches(productID, size, color string) bool {
	return l.Product.ID == productID && l.Size == size && l.Color == color
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Cart is an ordered sequence of cart lines. Order is insertion order.
// Total and ItemCount are always recomputed from the lines, never stored.
type Cart struct {
	Items []CartLine `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartLine{}}
}

// Add merges the incoming line into an existing line with the same
// (product id, size, color) key, or appends it at the end of the sequence.
func (c *Cart) Add(line CartLine) {
	for i := range c.Items {
		if c.Items[i].Matches(line.Product.ID, line.Size, line.Color) {
			c.Items[i].Quantity += line.Quantity

			return
		}
	}

	c.Items = append(c.Items, line)
}

// Remove deletes the line matching the key. Removing an absent line is a no-op.
func (c *Cart) Remove(productID, size, color string) {
	for i := range c.Items {
		if c.Items[i].Matches(productID, size, color) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// UpdateQuantity replaces the matching line's quantity in place. A quantity of
// zero or less removes the line entirely; it is never stored.
func (c *Cart) UpdateQuantity(productID, size, color string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, size, color)

		return
	}

	for i := range c.Items {
		if c.Items[i].Matches(productID, size, color) {
			c.Items[i].Quantity = quantity

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartLine{}
}

// Total is the sum of price x quantity over all lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Items {
		total += line.Subtotal()
	}

	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Items {
		count += line.Quantity
	}

	return count
}
