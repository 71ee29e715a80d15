package entity

const (
	// FreeShippingThreshold is the pre-discount subtotal at which shipping
	// becomes free.
	FreeShippingThreshold = 999

	// FlatShippingFee is charged below the free-shipping threshold.
	FlatShippingFee = 99

	// DiscountThreshold is the pre-shipping subtotal at which the order
	// discount kicks in.
	DiscountThreshold = 2000

	// discountDivisor implements the 10% discount as floor(subtotal / 10).
	discountDivisor = 10
)

// PriceQuote is the final pricing of a checkout. Shipping and discount are
// both evaluated off the pre-shipping, pre-discount subtotal; the two
// thresholds are independent.
type PriceQuote struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shippingFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// ComputeQuote derives the final pricing from a cart subtotal.
func ComputeQuote(subtotal int64) PriceQuote {
	quote := PriceQuote{Subtotal: subtotal}

	if subtotal < FreeShippingThreshold {
		quote.ShippingFee = FlatShippingFee
	}
	if subtotal >= DiscountThreshold {
		quote.Discount = subtotal / discountDivisor
	}

	quote.Total = subtotal + quote.ShippingFee - quote.Discount

	return quote
}
