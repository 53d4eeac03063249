package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawmart/pawmart/internal/adapter/payment"
	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/domain/repository"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

// OrderUseCase encapsulates checkout, webhook reconciliation and the rest
// of the order lifecycle.
type OrderUseCase struct {
	orders     repository.OrderRepository
	gateway    payment.Gateway
	verifier   payment.EventVerifier
	successURL string
	cancelURL  string
	logger     *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, gateway payment.Gateway, verifier payment.EventVerifier, successURL, cancelURL string, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:     orders,
		gateway:    gateway,
		verifier:   verifier,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// Checkout persists a Pending order snapshotted from the cart and opens a
// hosted checkout session for it. The order is written first, keyed by a
// locally generated payment reference, so a webhook can never arrive before
// the row it has to reconcile exists.
func (u *OrderUseCase) Checkout(ctx context.Context, userID, email string, items []model.OrderItem, totalAmount int64, totalQuantity int) (string, error) {
	if len(items) == 0 {
		return "", domainErrors.ErrEmptyCart
	}

	var sumAmount int64
	var sumQuantity int
	for _, item := range items {
		sumAmount += item.UnitPrice * int64(item.Quantity)
		sumQuantity += item.Quantity
	}
	if sumAmount != totalAmount || sumQuantity != totalQuantity {
		return "", domainErrors.ErrTotalsMismatch
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		TotalAmount:   totalAmount,
		TotalQuantity: totalQuantity,
		Status:        model.OrderStatusPending,
		PaymentRef:    uuid.NewString(),
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	req := payment.SessionRequest{
		Reference:     order.PaymentRef,
		CustomerEmail: email,
		SuccessURL:    u.successURL,
		CancelURL:     u.cancelURL,
		Items:         make([]payment.LineItem, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, payment.LineItem{
			Name:       item.Name,
			Category:   item.Category,
			ImageURL:   item.ImageURL,
			UnitAmount: item.UnitPrice,
			Quantity:   int64(item.Quantity),
		})
	}

	sess, err := u.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		// The order can never be paid without a session; retire it so the
		// pending monitor does not keep reporting it.
		if _, cancelErr := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled, false); cancelErr != nil {
			u.logger.Error("cancel order after gateway failure",
				slog.String("order_id", order.ID),
				slog.String("error", cancelErr.Error()),
			)
		}
		return "", err
	}

	u.logger.Info("checkout session created",
		slog.String("order_id", order.ID),
		slog.String("payment_ref", order.PaymentRef),
		slog.String("session_id", sess.ID),
	)
	return sess.URL, nil
}

// ProcessPaymentEvent verifies a raw webhook payload and advances the
// matching order. Redelivered events are harmless: MarkPaid keeps the first
// paid_at and never regresses status. Events matching no order are
// acknowledged but reported, so the gateway does not retry-storm while the
// orphaned payment still surfaces in logs.
func (u *OrderUseCase) ProcessPaymentEvent(ctx context.Context, body []byte, signature string) error {
	event, err := u.verifier.Verify(body, signature)
	if err != nil {
		return err
	}

	if event.Type != payment.EventCheckoutCompleted {
		u.logger.Info("ignoring webhook event", slog.String("type", event.Type))
		return nil
	}

	var receiptURL *string
	if event.ReceiptURL != "" {
		receiptURL = &event.ReceiptURL
	}

	order, err := u.orders.MarkPaid(ctx, event.Reference, time.Now(), receiptURL)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Warn("orphaned payment event: no order for reference",
				slog.String("payment_ref", event.Reference),
			)
			return nil
		}
		return err
	}

	u.logger.Info("order paid",
		slog.String("order_id", order.ID),
		slog.String("payment_ref", order.PaymentRef),
	)
	return nil
}

// ListFor returns all orders for admins and own orders for everyone else.
func (u *OrderUseCase) ListFor(ctx context.Context, ident pkgAuth.Identity) ([]model.Order, error) {
	if ident.IsAdmin() {
		return u.orders.ListAll(ctx)
	}
	return u.orders.ListByUser(ctx, ident.UserID)
}

// GetFor fetches one order; the owner and admins may view it, anyone else
// is forbidden.
func (u *OrderUseCase) GetFor(ctx context.Context, ident pkgAuth.Identity, id string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() && order.UserID != ident.UserID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// UpdateStatus applies an admin status mutation. Any enum member is
// accepted; the admin is trusted with transitions.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, id, status, isPaid)
}

// Delete hard-deletes the order record.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

// PendingOlderThan lists Pending orders created before now-age.
func (u *OrderUseCase) PendingOlderThan(ctx context.Context, age time.Duration) ([]model.Order, error) {
	return u.orders.ListPendingOlderThan(ctx, time.Now().Add(-age))
}
