package handlers

import (
	"context"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Identity, error)
	CurrentUser(ctx context.Context, id string) (*model.User, error)
}

// CatalogFacade encapsulates product and service catalog operations.
type CatalogFacade interface {
	Products(ctx context.Context, category string) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Services(ctx context.Context) ([]model.Service, error)
	Service(ctx context.Context, id string) (*model.Service, error)
	CreateService(ctx context.Context, service model.Service) (*model.Service, error)
	UpdateService(ctx context.Context, service model.Service) (*model.Service, error)
	DeleteService(ctx context.Context, id string) error
}

// OrderFacade encapsulates checkout, webhook reconciliation and order reads.
type OrderFacade interface {
	Checkout(ctx context.Context, userID, email string, items []model.OrderItem, totalAmount int64, totalQuantity int) (string, error)
	ProcessPaymentEvent(ctx context.Context, body []byte, signature string) error
	Orders(ctx context.Context, ident pkgAuth.Identity) ([]model.Order, error)
	Order(ctx context.Context, ident pkgAuth.Identity, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// AppointmentFacade encapsulates service booking operations.
type AppointmentFacade interface {
	Book(ctx context.Context, userID, serviceID string, scheduledAt time.Time, note string) (*model.Appointment, error)
	Appointments(ctx context.Context, ident pkgAuth.Identity) ([]model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error)
	CancelAppointment(ctx context.Context, ident pkgAuth.Identity, id string) error
}

// EngagementFacade encapsulates comments and contact form operations.
type EngagementFacade interface {
	AddComment(ctx context.Context, userID, productID, body string, rating int) (*model.Comment, error)
	ProductComments(ctx context.Context, productID string, includeUnmoderated bool) ([]model.Comment, error)
	UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error)
	Contacts(ctx context.Context) ([]model.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	AppointmentFacade
	EngagementFacade
}
