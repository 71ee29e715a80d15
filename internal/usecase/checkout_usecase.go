package usecase

import (
	"context"

	"stylemart/internal/domain/entity"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD     = "cod"
	PaymentMethodGateway = "razorpay"
)

// --- Input DTOs ---

// SubmitCheckoutInput is the checkout form: the shipping address and the
// chosen payment path.
type SubmitCheckoutInput struct {
	Address       entity.ShippingAddress `json:"address"`
	PaymentMethod string                 `json:"paymentMethod"`
}

// ConfirmPaymentInput is the gateway's payment-success callback payload.
type ConfirmPaymentInput struct {
	ReceiptID      string `json:"receiptId"`
	PaymentID      string `json:"paymentId"`
	GatewayOrderID string `json:"gatewayOrderId"`
}

// --- Output DTOs ---

// PaymentPrefill is the contact info the hosted payment UI is pre-filled with.
type PaymentPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// PaymentSession configures the gateway's hosted payment UI for a pending
// checkout. Amount is in the gateway's minor currency unit.
type PaymentSession struct {
	ReceiptID      string         `json:"receiptId"`
	KeyID          string         `json:"keyId"`
	GatewayOrderID string         `json:"gatewayOrderId"`
	Amount         int64          `json:"amount"`
	Currency       string         `json:"currency"`
	MerchantName   string         `json:"merchantName"`
	Description    string         `json:"description"`
	Prefill        PaymentPrefill `json:"prefill"`
	ThemeColor     string         `json:"themeColor"`
}

// SubmitCheckoutOutput is the result of a checkout submission. Exactly one of
// Order (pay-on-delivery, terminal) or Payment (gateway path, awaiting the
// hosted UI callback) is set.
type SubmitCheckoutOutput struct {
	Quote   entity.PriceQuote `json:"quote"`
	Order   *entity.Order     `json:"order,omitempty"`
	Payment *PaymentSession   `json:"payment,omitempty"`
}

// CheckoutUsecase drives checkout submission to exactly one terminal path.
//
// ConfirmPayment, FailPayment and CancelPayment are the gateway hosted UI's
// success, failure and dismissal callbacks. Any failure path returns the
// orchestrator to idle without creating an order record; the user resubmits
// manually, there is no automatic retry.
type CheckoutUsecase interface {
	Submit(ctx context.Context, input SubmitCheckoutInput) (*SubmitCheckoutOutput, error)
	ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*entity.Order, error)
	FailPayment(ctx context.Context, receiptID, description string) error
	CancelPayment(ctx context.Context, receiptID string) error
}
