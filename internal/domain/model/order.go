package model

import "time"

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a line item snapshotted from the catalog at checkout time.
// Later product edits or deletes do not alter it.
type OrderItem struct {
	ProductID string
	Name      string
	Category  string
	UnitPrice int64
	Quantity  int
	ImageURL  string
}

// Order describes a purchase placed by a user. PaymentRef is the locally
// generated correlation id handed to the payment gateway; the webhook uses
// it as the sole lookup key, so it must be unique per order.
type Order struct {
	ID            string
	UserID        string
	Items         []OrderItem
	TotalAmount   int64
	TotalQuantity int
	Status        OrderStatus
	IsPaid        bool
	PaidAt        *time.Time
	PaymentRef    string
	ReceiptURL    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
