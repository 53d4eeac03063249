package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/server/http/dto"
)

// OrderHandler manages order read and admin mutation endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/order. Admins see every order, users their own.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentIdentity(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentIdentity(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/order/:id/status (admin).
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), req.IsPaid)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"status is not a valid order status"}})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// Delete handles DELETE /api/order/:id (admin).
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
