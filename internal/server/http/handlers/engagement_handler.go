package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/server/http/dto"
)

// CommentHandler manages product review endpoints.
type CommentHandler struct {
	facade EngagementFacade
}

// NewCommentHandler constructs CommentHandler.
func NewCommentHandler(facade EngagementFacade) *CommentHandler {
	return &CommentHandler{facade: facade}
}

// Create handles POST /api/comment.
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	ident := CurrentIdentity(c)
	comment, err := h.facade.AddComment(c.Request.Context(), ident.UserID, req.ProductID, req.Body, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"productId does not reference a known product"}})
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"rating must be between 1 and 5"}})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(*comment))
}

// ListByProduct handles GET /api/comment/product/:id. Admins also see
// pending and rejected comments.
func (h *CommentHandler) ListByProduct(c *gin.Context) {
	ident := CurrentIdentity(c)
	comments, err := h.facade.ProductComments(c.Request.Context(), c.Param("id"), ident.IsAdmin())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, dto.ToCommentResponse(comment))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PATCH /api/comment/:id/status (admin).
func (h *CommentHandler) UpdateStatus(c *gin.Context) {
	var req dto.CommentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.facade.UpdateCommentStatus(c.Request.Context(), c.Param("id"), model.CommentStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"status is not a valid comment status"}})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(*comment))
}

// Delete handles DELETE /api/comment/:id (admin).
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ContactHandler manages contact form endpoints.
type ContactHandler struct {
	facade EngagementFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade EngagementFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Create handles POST /api/contact. The endpoint is public.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.facade.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(*contact))
}

// List handles GET /api/contact (admin).
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.facade.Contacts(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		response = append(response, dto.ToContactResponse(contact))
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/contact/:id (admin).
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
