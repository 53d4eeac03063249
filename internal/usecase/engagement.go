package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/domain/repository"
)

// EngagementUseCase manages product comments and contact form messages.
type EngagementUseCase struct {
	comments repository.CommentRepository
	contacts repository.ContactRepository
	products repository.ProductRepository
}

// NewEngagementUseCase constructs EngagementUseCase.
func NewEngagementUseCase(comments repository.CommentRepository, contacts repository.ContactRepository, products repository.ProductRepository) *EngagementUseCase {
	return &EngagementUseCase{comments: comments, contacts: contacts, products: products}
}

// AddComment stores a new comment awaiting moderation. The product must exist.
func (u *EngagementUseCase) AddComment(ctx context.Context, userID, productID, body string, rating int) (*model.Comment, error) {
	if rating < 1 || rating > 5 {
		return nil, domainErrors.ErrInvalidStatus
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Body:      body,
		Rating:    rating,
		Status:    model.CommentStatusPending,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ProductComments lists a product's comments. Non-admin callers see only
// approved ones.
func (u *EngagementUseCase) ProductComments(ctx context.Context, productID string, includeUnmoderated bool) ([]model.Comment, error) {
	return u.comments.ListByProduct(ctx, productID, !includeUnmoderated)
}

// UpdateCommentStatus applies an admin moderation decision.
func (u *EngagementUseCase) UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error) {
	if !model.ValidCommentStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.comments.UpdateStatus(ctx, id, status)
}

// DeleteComment removes a comment.
func (u *EngagementUseCase) DeleteComment(ctx context.Context, id string) error {
	return u.comments.Delete(ctx, id)
}

// SubmitContact stores a contact form message.
func (u *EngagementUseCase) SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	contact := &model.Contact{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := u.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Contacts lists stored contact messages.
func (u *EngagementUseCase) Contacts(ctx context.Context) ([]model.Contact, error) {
	return u.contacts.List(ctx)
}

// DeleteContact removes a contact message.
func (u *EngagementUseCase) DeleteContact(ctx context.Context, id string) error {
	return u.contacts.Delete(ctx, id)
}
