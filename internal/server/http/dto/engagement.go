package dto

import (
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// CommentRequest describes the review payload.
type CommentRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
}

// CommentStatusRequest describes the moderation payload.
type CommentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CommentResponse is the public view of a product review.
type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRequest describes the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse is the stored contact form message.
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCommentResponse maps a domain comment to its public view.
func ToCommentResponse(comment model.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		ProductID: comment.ProductID,
		Body:      comment.Body,
		Rating:    comment.Rating,
		Status:    string(comment.Status),
		CreatedAt: comment.CreatedAt,
	}
}

// ToContactResponse maps a domain contact message to its public view.
func ToContactResponse(contact model.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
}
