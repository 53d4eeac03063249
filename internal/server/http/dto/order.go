package dto

import (
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// CartItemRequest is one cart line submitted at checkout. Prices are the
// client's claim and are re-verified server side.
type CartItemRequest struct {
	ProductID string `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
	UnitPrice int64  `json:"price" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	ImageURL  string `json:"image" binding:"required,url"`
}

// CheckoutRequest describes POST /api/payment/create-checkout-session.
type CheckoutRequest struct {
	Cart          []CartItemRequest `json:"cart" binding:"required,min=1,dive"`
	TotalAmount   int64             `json:"totalAmount" binding:"required,gt=0"`
	TotalQuantity int               `json:"totalQuantity" binding:"required,gt=0"`
}

// CheckoutResponse carries the hosted checkout URL.
type CheckoutResponse struct {
	SessionURL string `json:"sessionUrl"`
}

// OrderStatusRequest describes the admin status mutation payload.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	IsPaid bool   `json:"isPaid"`
}

// OrderItemResponse is one snapshotted line item.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"imageUrl"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   int64               `json:"totalAmount"`
	TotalQuantity int                 `json:"totalQuantity"`
	Status        string              `json:"status"`
	IsPaid        bool                `json:"isPaid"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	ReceiptURL    *string             `json:"receiptUrl,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToOrderItems maps cart lines to domain line items.
func ToOrderItems(items []CartItemRequest) []model.OrderItem {
	result := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}
	return result
}

// ToOrderResponse maps a domain order to its public view.
func ToOrderResponse(order model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		})
	}
	return OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		TotalQuantity: order.TotalQuantity,
		Status:        string(order.Status),
		IsPaid:        order.IsPaid,
		PaidAt:        order.PaidAt,
		ReceiptURL:    order.ReceiptURL,
		CreatedAt:     order.CreatedAt,
	}
}
