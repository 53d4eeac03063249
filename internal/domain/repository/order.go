package repository

import (
	"context"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Create
// persists the order together with its line-item snapshot atomically.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	// MarkPaid advances the order matched by payment reference to Paid.
	// Re-applying it to an already paid order keeps PaidAt and a later
	// fulfilment status intact.
	MarkPaid(ctx context.Context, paymentRef string, paidAt time.Time, receiptURL *string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Order, error)
}
