package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pawmart/pawmart/internal/adapter/payment"
	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
	testhelpers "github.com/pawmart/pawmart/internal/test"
)

func newOrderFixture(orders *testhelpers.OrderRepositoryStub, gateway *testhelpers.GatewayStub, verifier *testhelpers.VerifierStub) *OrderUseCase {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewOrderUseCase(orders, gateway, verifier, "https://shop.example/success", "https://shop.example/cancel", logger)
}

func cartFixture() []model.OrderItem {
	return []model.OrderItem{
		{ProductID: "prod-1", Name: "Chew Toy", Category: "toys", UnitPrice: 1500, Quantity: 2},
		{ProductID: "prod-2", Name: "Cat Tree", Category: "furniture", UnitPrice: 8000, Quantity: 1},
	}
}

func TestOrderUseCaseCheckout(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	gateway := &testhelpers.GatewayStub{}
	uc := newOrderFixture(orders, gateway, &testhelpers.VerifierStub{})

	url, err := uc.Checkout(context.Background(), "user-1", "dana@example.com", cartFixture(), 11000, 3)
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if url != "https://checkout.example/sess_test" {
		t.Fatalf("unexpected checkout URL %q", url)
	}

	if len(orders.Created) != 1 {
		t.Fatalf("expected one order persisted, got %d", len(orders.Created))
	}
	order := orders.Created[0]
	if order.Status != model.OrderStatusPending || order.IsPaid {
		t.Fatalf("order must start pending and unpaid, got %+v", order)
	}
	if order.PaymentRef == "" || order.ID == order.PaymentRef {
		t.Fatalf("expected distinct payment reference, got %q", order.PaymentRef)
	}

	if gateway.CallCount() != 1 {
		t.Fatalf("expected one gateway call, got %d", gateway.CallCount())
	}
	req := gateway.Calls[0]
	if req.Reference != order.PaymentRef {
		t.Fatalf("gateway reference %q does not match order %q", req.Reference, order.PaymentRef)
	}
	if req.CustomerEmail != "dana@example.com" || len(req.Items) != 2 {
		t.Fatalf("unexpected session request %+v", req)
	}
	if req.SuccessURL != "https://shop.example/success" || req.CancelURL != "https://shop.example/cancel" {
		t.Fatalf("unexpected redirect URLs %+v", req)
	}
}

func TestOrderUseCaseCheckoutEmptyCart(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	gateway := &testhelpers.GatewayStub{}
	uc := newOrderFixture(orders, gateway, &testhelpers.VerifierStub{})

	if _, err := uc.Checkout(context.Background(), "user-1", "a@b.com", nil, 0, 0); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(orders.Created) != 0 || gateway.CallCount() != 0 {
		t.Fatal("nothing may be persisted or sent for an empty cart")
	}
}

func TestOrderUseCaseCheckoutTotalsMismatch(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	gateway := &testhelpers.GatewayStub{}
	uc := newOrderFixture(orders, gateway, &testhelpers.VerifierStub{})

	cases := []struct {
		amount   int64
		quantity int
	}{
		{amount: 9999, quantity: 3},
		{amount: 11000, quantity: 4},
	}
	for _, tc := range cases {
		if _, err := uc.Checkout(context.Background(), "user-1", "a@b.com", cartFixture(), tc.amount, tc.quantity); !errors.Is(err, domainErrors.ErrTotalsMismatch) {
			t.Fatalf("expected ErrTotalsMismatch for %+v, got %v", tc, err)
		}
	}
	if len(orders.Created) != 0 || gateway.CallCount() != 0 {
		t.Fatal("claimed totals must be verified before any side effect")
	}
}

func TestOrderUseCaseCheckoutGatewayFailureCancelsOrder(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	gateway := &testhelpers.GatewayStub{CreateFn: func(context.Context, payment.SessionRequest) (*payment.Session, error) {
		return nil, errors.New("gateway down")
	}}
	uc := newOrderFixture(orders, gateway, &testhelpers.VerifierStub{})

	if _, err := uc.Checkout(context.Background(), "user-1", "a@b.com", cartFixture(), 11000, 3); err == nil {
		t.Fatal("expected gateway error to propagate")
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0].Status != model.OrderStatusCancelled {
		t.Fatalf("expected order cancelled after gateway failure, got %+v", orders.UpdateCalls)
	}
}

func TestOrderUseCaseProcessPaymentEvent(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{
		{ID: "order-1", UserID: "user-1", Status: model.OrderStatusPending, PaymentRef: "ref-1"},
	}}
	verifier := &testhelpers.VerifierStub{Event: &payment.Event{
		Type:       payment.EventCheckoutCompleted,
		Reference:  "ref-1",
		Paid:       true,
		ReceiptURL: "https://pay.example/receipt/1",
	}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, verifier)

	if err := uc.ProcessPaymentEvent(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("webhook returned error: %v", err)
	}
	if len(orders.MarkedPaid) != 1 || orders.MarkedPaid[0] != "ref-1" {
		t.Fatalf("expected ref-1 marked paid, got %v", orders.MarkedPaid)
	}
	if !orders.Orders[0].IsPaid || orders.Orders[0].Status != model.OrderStatusPaid {
		t.Fatalf("order not advanced: %+v", orders.Orders[0])
	}
	if orders.Orders[0].ReceiptURL == nil || *orders.Orders[0].ReceiptURL != "https://pay.example/receipt/1" {
		t.Fatal("expected receipt URL recorded")
	}
}

func TestOrderUseCaseProcessPaymentEventRedelivery(t *testing.T) {
	paidAt := time.Unix(1000, 0)
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{
		{ID: "order-1", Status: model.OrderStatusShipped, IsPaid: true, PaidAt: &paidAt, PaymentRef: "ref-1"},
	}}
	verifier := &testhelpers.VerifierStub{Event: &payment.Event{Type: payment.EventCheckoutCompleted, Reference: "ref-1", Paid: true}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, verifier)

	if err := uc.ProcessPaymentEvent(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("redelivered webhook returned error: %v", err)
	}
	order := orders.Orders[0]
	if order.Status != model.OrderStatusShipped {
		t.Fatalf("redelivery must not regress status, got %q", order.Status)
	}
	if order.PaidAt == nil || !order.PaidAt.Equal(paidAt) {
		t.Fatal("redelivery must keep the first paid timestamp")
	}
}

func TestOrderUseCaseProcessPaymentEventOrphaned(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	verifier := &testhelpers.VerifierStub{Event: &payment.Event{Type: payment.EventCheckoutCompleted, Reference: "ghost", Paid: true}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, verifier)

	// Unknown references are acknowledged so the gateway stops retrying.
	if err := uc.ProcessPaymentEvent(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("expected orphaned event to be swallowed, got %v", err)
	}
}

func TestOrderUseCaseProcessPaymentEventBadSignature(t *testing.T) {
	verifier := &testhelpers.VerifierStub{Err: payment.ErrBadSignature}
	orders := &testhelpers.OrderRepositoryStub{}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, verifier)

	if err := uc.ProcessPaymentEvent(context.Background(), []byte(`{}`), "sig"); !errors.Is(err, payment.ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
	if len(orders.MarkedPaid) != 0 {
		t.Fatal("unverified events must not touch orders")
	}
}

func TestOrderUseCaseProcessPaymentEventIgnoresOtherTypes(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	verifier := &testhelpers.VerifierStub{Event: &payment.Event{Type: "invoice.created", Reference: "ref-1"}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, verifier)

	if err := uc.ProcessPaymentEvent(context.Background(), []byte(`{}`), "sig"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders.MarkedPaid) != 0 {
		t.Fatal("non-checkout events must be ignored")
	}
}

func TestOrderUseCaseListFor(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{
		{ID: "order-1", UserID: "user-1"},
		{ID: "order-2", UserID: "user-2"},
	}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, &testhelpers.VerifierStub{})

	all, err := uc.ListFor(context.Background(), pkgAuth.Identity{UserID: "admin-1", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("admin list returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see every order, got %d", len(all))
	}

	own, err := uc.ListFor(context.Background(), pkgAuth.Identity{UserID: "user-1", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("user list returned error: %v", err)
	}
	if len(own) != 1 || own[0].ID != "order-1" {
		t.Fatalf("user should see only own orders, got %+v", own)
	}
}

func TestOrderUseCaseGetForOwnership(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "order-1", UserID: "user-1"}}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, &testhelpers.VerifierStub{})

	if _, err := uc.GetFor(context.Background(), pkgAuth.Identity{UserID: "user-2", Role: model.RoleUser}, "order-1"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := uc.GetFor(context.Background(), pkgAuth.Identity{UserID: "user-1", Role: model.RoleUser}, "order-1"); err != nil {
		t.Fatalf("owner read returned error: %v", err)
	}
	if _, err := uc.GetFor(context.Background(), pkgAuth.Identity{UserID: "admin-1", Role: model.RoleAdmin}, "order-1"); err != nil {
		t.Fatalf("admin read returned error: %v", err)
	}
	if _, err := uc.GetFor(context.Background(), pkgAuth.Identity{UserID: "user-1", Role: model.RoleUser}, "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderUseCaseUpdateStatus(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: "order-1", Status: model.OrderStatusPaid, IsPaid: true}}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, &testhelpers.VerifierStub{})

	if _, err := uc.UpdateStatus(context.Background(), "order-1", "Teleported", true); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(orders.UpdateCalls) != 0 {
		t.Fatal("invalid status must not reach the repository")
	}

	updated, err := uc.UpdateStatus(context.Background(), "order-1", model.OrderStatusShipped, true)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != model.OrderStatusShipped {
		t.Fatalf("unexpected status %q", updated.Status)
	}
}

func TestOrderUseCasePendingOlderThan(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{ListPendingOlderThanFn: func(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
		if time.Until(cutoff) > -50*time.Minute {
			t.Fatalf("cutoff should be about an hour in the past, got %s", cutoff)
		}
		return []model.Order{{ID: "order-1"}}, nil
	}}
	uc := newOrderFixture(orders, &testhelpers.GatewayStub{}, &testhelpers.VerifierStub{})

	stale, err := uc.PendingOlderThan(context.Background(), time.Hour)
	if err != nil {
		t.Fatalf("pending lookup returned error: %v", err)
	}
	if len(stale) != 1 {
		t.Fatalf("expected one stale order, got %d", len(stale))
	}
}
