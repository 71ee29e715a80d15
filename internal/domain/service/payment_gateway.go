// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import "context"

// GatewayOrderRequest is the outbound order-creation request. Amount is in
// the gateway's minor currency unit.
type GatewayOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

// GatewayOrder is the gateway's order-creation response.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentGateway is the external payment collaborator. The checkout
// orchestrator depends on this interface, never on the concrete SDK, so the
// whole payment state machine is testable with a fake client.
//
// The hosted payment UI runs on the shopper's side; its success, failure and
// dismissal callbacks arrive as the orchestrator's ConfirmPayment,
// FailPayment and CancelPayment operations.
type PaymentGateway interface {
	// CreateOrder registers the order with the gateway and returns the
	// gateway-issued order id used to open the hosted payment UI.
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)

	// KeyID returns the public key the hosted payment UI is configured with.
	KeyID() string
}
