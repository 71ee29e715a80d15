package entity

import "time"

// OrderStatus is the fulfillment stage of a placed order.
type OrderStatus string

const (
	StatusOrdered   OrderStatus = "ordered"
	StatusPacked    OrderStatus = "packed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

var statusRank = map[OrderStatus]int{
	StatusOrdered:   0,
	StatusPacked:    1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// Valid reports whether the status is a known fulfillment stage.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]

	return ok
}

// CanAdvanceTo reports whether next is a strictly later fulfillment stage.
// Tracking only ever moves forward.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	current, ok := statusRank[s]
	if !ok {
		return false
	}
	target, ok := statusRank[next]
	if !ok {
		return false
	}

	return target > current
}

// ShippingAddress is the checkout form snapshot stored on the order.
// Every field is required at checkout submission.
type ShippingAddress struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Pincode   string `json:"pincode" validate:"required"`
}

// FullName joins the shipper's first and last name for gateway prefill.
func (a ShippingAddress) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Order is the locally persisted snapshot of a completed checkout. It is
// immutable once created except for Status, which the tracking view advances.
// Only the single last order is retained; each checkout overwrites the slot.
//
// The order id is time-derived (receipt_<unix-ms>); two checkouts within the
// same millisecond could collide. Preserved as a documented limitation.
type Order struct {
	OrderID         string          `json:"orderId"`
	Items           []CartLine      `json:"items"`
	Total           int64           `json:"total"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	Status          OrderStatus     `json:"status"`
	PaymentID       string          `json:"paymentId,omitempty"`
	GatewayOrderID  string          `json:"gatewayOrderId,omitempty"`
}

// NewOrder builds an order snapshot from the cart at checkout time.
func NewOrder(orderID string, items []CartLine, total int64, address ShippingAddress, placedAt time.Time) *Order {
	snapshot := make([]CartLine, len(items))
	copy(snapshot, items)

	return &Order{
		OrderID:         orderID,
		Items:           snapshot,
		Total:           total,
		ShippingAddress: address,
		OrderDate:       placedAt,
		Status:          StatusOrdered,
	}
}
