package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawmart/pawmart/internal/adapter/payment"
	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/server/http/dto"
)

const signatureHeader = "Stripe-Signature"

// PaymentHandler manages checkout session creation and the payment webhook.
type PaymentHandler struct {
	auth   AuthFacade
	orders OrderFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(auth AuthFacade, orders OrderFacade) *PaymentHandler {
	return &PaymentHandler{auth: auth, orders: orders}
}

// CreateCheckoutSession handles POST /api/payment/create-checkout-session.
// The payload is validated in full before any order row is written or the
// gateway is contacted.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	ident := CurrentIdentity(c)
	user, err := h.auth.CurrentUser(c.Request.Context(), ident.UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	url, err := h.orders.Checkout(c.Request.Context(), ident.UserID, user.Email, dto.ToOrderItems(req.Cart), req.TotalAmount, req.TotalQuantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart), errors.Is(err, domainErrors.ErrTotalsMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionURL: url})
}

// Webhook handles POST /api/webhook. The raw body is needed for signature
// verification, so no JSON binding happens here.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.orders.ProcessPaymentEvent(c.Request.Context(), body, c.GetHeader(signatureHeader)); err != nil {
		if errors.Is(err, payment.ErrBadSignature) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
