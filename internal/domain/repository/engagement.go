package repository

import (
	"context"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// AppointmentRepository describes persistence operations for bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	ListAll(ctx context.Context) ([]model.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository describes persistence operations for product comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	// ListByProduct returns comments for a product; when approvedOnly is
	// set, pending and rejected ones are filtered out.
	ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]model.Comment, error)
	UpdateStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}

// ContactRepository describes persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	Delete(ctx context.Context, id string) error
}
