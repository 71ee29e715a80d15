package impl

import (
	"context"
	"strings"
	"testing"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixtures struct {
	service usecase.CheckoutUsecase
	gateway *fakeGateway
	stores  *stores
}

func createTestCheckoutService(t *testing.T) checkoutFixtures {
	t.Helper()

	st := newStores(t)
	gw := newFakeGateway()
	svc := NewCheckoutService(CheckoutServiceParams{
		CartRepo:  st.cart,
		OrderRepo: st.order,
		ModeRepo:  st.mode,
		Gateway:   gw,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	return checkoutFixtures{service: svc, gateway: gw, stores: st}
}

func validAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Address:   "14 MG Road",
		City:      "Pune",
		State:     "Maharashtra",
		Pincode:   "411001",
	}
}

// seedCart writes lines straight through the repository, bypassing the cart
// service's write-path checks where a test needs a malformed line.
func seedCart(t *testing.T, st *stores, lines ...entity.CartLine) {
	t.Helper()

	ctx := context.Background()
	cart, err := st.cart.Load(ctx)
	require.NoError(t, err)
	cart.Items = append(cart.Items, lines...)
	require.NoError(t, st.cart.Save(ctx, cart))
}

func lineOf(t *testing.T, st *stores, productID string, qty int) entity.CartLine {
	t.Helper()

	product, err := st.catalog.FindByID(context.Background(), productID)
	require.NoError(t, err)

	return entity.CartLine{Product: *product, Quantity: qty, Size: "M", Color: "Blue"}
}

func TestCheckoutService_Submit_RejectsIncompleteAddress(t *testing.T) {
	fixture := createTestCheckoutService(t)
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))

	address := validAddress()
	address.Pincode = ""

	_, err := fixture.service.Submit(context.Background(), usecase.SubmitCheckoutInput{
		Address:       address,
		PaymentMethod: usecase.PaymentMethodGateway,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fixture.gateway.callCount(), "gateway must not be contacted on validation failure")
}

func TestCheckoutService_Submit_RejectsEmptyCart(t *testing.T) {
	fixture := createTestCheckoutService(t)

	_, err := fixture.service.Submit(context.Background(), usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodCOD,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Submit_RejectsLineWithoutVariant(t *testing.T) {
	fixture := createTestCheckoutService(t)

	line := lineOf(t, fixture.stores, "m1", 1)
	line.Size = ""
	seedCart(t, fixture.stores, line)

	_, err := fixture.service.Submit(context.Background(), usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCartLineInvalid)
	assert.Zero(t, fixture.gateway.callCount())
}

func TestCheckoutService_Submit_RejectsUnknownPaymentMethod(t *testing.T) {
	fixture := createTestCheckoutService(t)
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))

	_, err := fixture.service.Submit(context.Background(), usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: "wire-transfer",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_Submit_Pricing(t *testing.T) {
	// Shipping and discount thresholds are evaluated off the same
	// pre-adjustment subtotal, independently of each other.
	cases := []struct {
		name     string
		subtotal int64
		shipping int64
		discount int64
		total    int64
	}{
		{"below free shipping", 500, 99, 0, 599},
		{"at free shipping threshold", 999, 0, 0, 999},
		{"between thresholds", 1999, 0, 0, 1999},
		{"at discount threshold", 2000, 0, 200, 1800},
		{"above discount threshold", 2499, 0, 249, 2250},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := entity.ComputeQuote(tc.subtotal)

			assert.Equal(t, tc.shipping, quote.ShippingFee)
			assert.Equal(t, tc.discount, quote.Discount)
			assert.Equal(t, tc.total, quote.Total)
		})
	}
}

func TestCheckoutService_Submit_PayOnDelivery(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()

	// m1 at 1499: free shipping, no discount.
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))

	output, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodCOD,
	})
	require.NoError(t, err)

	require.NotNil(t, output.Order)
	assert.Nil(t, output.Payment)
	assert.True(t, strings.HasPrefix(output.Order.OrderID, "receipt_"))
	assert.Equal(t, entity.StatusOrdered, output.Order.Status)
	assert.Equal(t, int64(1499), output.Order.Total)
	assert.Empty(t, output.Order.PaymentID)

	// The order landed in the single last-order slot.
	saved, err := fixture.stores.order.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, output.Order.OrderID, saved.OrderID)

	// And the cart was finalized.
	cart, err := fixture.stores.cart.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutService_Submit_GatewayCreatesPaymentSession(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()

	// m3 at 2499: discount floor(249.9) applies, total 2250.
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m3", 1))

	output, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})
	require.NoError(t, err)

	require.NotNil(t, output.Payment)
	assert.Nil(t, output.Order)
	assert.Equal(t, "order_fake_1", output.Payment.GatewayOrderID)
	assert.Equal(t, int64(2250*100), output.Payment.Amount, "gateway amount is in minor currency units")
	assert.Equal(t, "INR", output.Payment.Currency)
	assert.Equal(t, "Asha Verma", output.Payment.Prefill.Name)
	assert.Equal(t, entity.DefaultShopMode.ThemeColor(), output.Payment.ThemeColor)

	// Nothing is persisted while the payment is pending.
	_, err = fixture.stores.order.Last(ctx)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	cart, err := fixture.stores.cart.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "cart stays intact until payment confirmation")
}

func TestCheckoutService_ConfirmPayment_PersistsOrderAndClearsCart(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m3", 1))

	output, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})
	require.NoError(t, err)

	order, err := fixture.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		ReceiptID:      output.Payment.ReceiptID,
		PaymentID:      "pay_123",
		GatewayOrderID: output.Payment.GatewayOrderID,
	})
	require.NoError(t, err)

	assert.Equal(t, "pay_123", order.PaymentID)
	assert.Equal(t, output.Payment.GatewayOrderID, order.GatewayOrderID)
	assert.Equal(t, entity.StatusOrdered, order.Status)

	saved, err := fixture.stores.order.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, saved.OrderID)

	cart, err := fixture.stores.cart.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutService_ConfirmPayment_UnknownReceipt(t *testing.T) {
	fixture := createTestCheckoutService(t)

	_, err := fixture.service.ConfirmPayment(context.Background(), usecase.ConfirmPaymentInput{
		ReceiptID:      "receipt_unknown",
		PaymentID:      "pay_123",
		GatewayOrderID: "order_fake_1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNoPendingCheckout)
}

func TestCheckoutService_ConfirmPayment_GatewayOrderMismatch(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))

	output, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})
	require.NoError(t, err)

	_, err = fixture.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		ReceiptID:      output.Payment.ReceiptID,
		PaymentID:      "pay_123",
		GatewayOrderID: "order_other",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNoPendingCheckout)
}

func TestCheckoutService_FailPayment_LeavesStateUntouched(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))

	output, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.FailPayment(ctx, output.Payment.ReceiptID, "card declined"))

	// No order record, cart intact, and the pending checkout is gone.
	_, err = fixture.stores.order.Last(ctx)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	cart, err := fixture.stores.cart.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	_, err = fixture.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		ReceiptID:      output.Payment.ReceiptID,
		PaymentID:      "pay_123",
		GatewayOrderID: output.Payment.GatewayOrderID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoPendingCheckout)
}

func TestCheckoutService_CancelPayment_LeavesStateUntouched(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))

	output, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.CancelPayment(ctx, output.Payment.ReceiptID))

	_, err = fixture.stores.order.Last(ctx)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	cart, err := fixture.stores.cart.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCheckoutService_Submit_GatewayFailure(t *testing.T) {
	st := newStores(t)
	gw := failingGateway()
	svc := NewCheckoutService(CheckoutServiceParams{
		CartRepo:  st.cart,
		OrderRepo: st.order,
		ModeRepo:  st.mode,
		Gateway:   gw,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	ctx := context.Background()
	seedCart(t, st, lineOf(t, st, "m1", 1))

	_, err := svc.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodGateway,
	})
	require.Error(t, err)

	cart, err := st.cart.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "failed gateway call leaves the cart intact")
}

func TestCheckoutService_Submit_OverwritesLastOrderSlot(t *testing.T) {
	fixture := createTestCheckoutService(t)
	ctx := context.Background()

	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m1", 1))
	_, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodCOD,
	})
	require.NoError(t, err)

	seedCart(t, fixture.stores, lineOf(t, fixture.stores, "m3", 1))
	second, err := fixture.service.Submit(ctx, usecase.SubmitCheckoutInput{
		Address:       validAddress(),
		PaymentMethod: usecase.PaymentMethodCOD,
	})
	require.NoError(t, err)

	saved, err := fixture.stores.order.Last(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Order.OrderID, saved.OrderID)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "m3", saved.Items[0].Product.ID)
}
