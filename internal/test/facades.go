package test

import (
	"context"
	"sync"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (pkgAuth.Identity, error)
	CurrentUserFn  func(context.Context, string) (*model.User, error)
}

// Register returns user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: "user-1", Name: name, Email: email, Role: model.RoleUser}, "token", nil
}

// Authenticate returns user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email, Role: model.RoleUser}, "token", nil
}

// ParseToken returns stored identity for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: "user-1", Role: model.RoleUser}, nil
}

// CurrentUser fetches the profile behind an identity.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "Test", Email: "test@example.com", Role: model.RoleUser}, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context, string) ([]model.Product, error)
	ProductFn       func(context.Context, string) (*model.Product, error)
	CreateProductFn func(context.Context, model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, model.Product) (*model.Product, error)
	DeleteProductFn func(context.Context, string) error
	ServicesFn      func(context.Context) ([]model.Service, error)
	ServiceFn       func(context.Context, string) (*model.Service, error)
	CreateServiceFn func(context.Context, model.Service) (*model.Service, error)
	UpdateServiceFn func(context.Context, model.Service) (*model.Service, error)
	DeleteServiceFn func(context.Context, string) error
}

// Products returns the configured product list.
func (s CatalogFacadeStub) Products(ctx context.Context, category string) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, category)
	}
	return []model.Product{{ID: "prod-1", Name: "Chew Toy"}}, nil
}

// Product returns one configured product.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Chew Toy"}, nil
}

// CreateProduct echoes the product back with an identifier.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = "prod-1"
	return &product, nil
}

// UpdateProduct echoes the updated product back.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return &product, nil
}

// DeleteProduct executes the configured removal handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// Services returns the configured service list.
func (s CatalogFacadeStub) Services(ctx context.Context) ([]model.Service, error) {
	if s.ServicesFn != nil {
		return s.ServicesFn(ctx)
	}
	return []model.Service{{ID: "svc-1", Name: "Grooming"}}, nil
}

// Service returns one configured service.
func (s CatalogFacadeStub) Service(ctx context.Context, id string) (*model.Service, error) {
	if s.ServiceFn != nil {
		return s.ServiceFn(ctx, id)
	}
	return &model.Service{ID: id, Name: "Grooming"}, nil
}

// CreateService echoes the service back with an identifier.
func (s CatalogFacadeStub) CreateService(ctx context.Context, service model.Service) (*model.Service, error) {
	if s.CreateServiceFn != nil {
		return s.CreateServiceFn(ctx, service)
	}
	service.ID = "svc-1"
	return &service, nil
}

// UpdateService echoes the updated service back.
func (s CatalogFacadeStub) UpdateService(ctx context.Context, service model.Service) (*model.Service, error) {
	if s.UpdateServiceFn != nil {
		return s.UpdateServiceFn(ctx, service)
	}
	return &service, nil
}

// DeleteService executes the configured removal handler.
func (s CatalogFacadeStub) DeleteService(ctx context.Context, id string) error {
	if s.DeleteServiceFn != nil {
		return s.DeleteServiceFn(ctx, id)
	}
	return nil
}

// CheckoutCall stores information about Checkout invocations.
type CheckoutCall struct {
	UserID        string
	Email         string
	Items         []model.OrderItem
	TotalAmount   int64
	TotalQuantity int
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, string, string, []model.OrderItem, int64, int) (string, error)
	ProcessEventFn func(context.Context, []byte, string) error
	OrdersFn       func(context.Context, pkgAuth.Identity) ([]model.Order, error)
	OrderFn        func(context.Context, pkgAuth.Identity, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus, bool) (*model.Order, error)
	DeleteFn       func(context.Context, string) error
	StalePendingFn func(context.Context, time.Duration) ([]model.Order, error)

	mu        sync.Mutex
	Checkouts []CheckoutCall
	Webhooks  []string
}

// Checkout records the call and returns a canned checkout URL.
func (s *OrderFacadeStub) Checkout(ctx context.Context, userID, email string, items []model.OrderItem, totalAmount int64, totalQuantity int) (string, error) {
	s.mu.Lock()
	s.Checkouts = append(s.Checkouts, CheckoutCall{UserID: userID, Email: email, Items: items, TotalAmount: totalAmount, TotalQuantity: totalQuantity})
	s.mu.Unlock()
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, email, items, totalAmount, totalQuantity)
	}
	return "https://checkout.example/sess_test", nil
}

// ProcessPaymentEvent records the signature and delegates to the override.
func (s *OrderFacadeStub) ProcessPaymentEvent(ctx context.Context, body []byte, signature string) error {
	s.mu.Lock()
	s.Webhooks = append(s.Webhooks, signature)
	s.mu.Unlock()
	if s.ProcessEventFn != nil {
		return s.ProcessEventFn(ctx, body, signature)
	}
	return nil
}

// Orders returns predefined orders for the given identity.
func (s *OrderFacadeStub) Orders(ctx context.Context, ident pkgAuth.Identity) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, ident)
	}
	return []model.Order{{ID: "order-1", UserID: ident.UserID}}, nil
}

// Order returns one predefined order.
func (s *OrderFacadeStub) Order(ctx context.Context, ident pkgAuth.Identity, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, ident, id)
	}
	return &model.Order{ID: id, UserID: ident.UserID}, nil
}

// UpdateOrderStatus executes the configured mutation handler.
func (s *OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, isPaid)
	}
	return &model.Order{ID: id, Status: status, IsPaid: isPaid}, nil
}

// DeleteOrder executes the configured removal handler.
func (s *OrderFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// StalePendingOrders returns pending orders older than the supplied age.
func (s *OrderFacadeStub) StalePendingOrders(ctx context.Context, age time.Duration) ([]model.Order, error) {
	if s.StalePendingFn != nil {
		return s.StalePendingFn(ctx, age)
	}
	return nil, nil
}

// AppointmentFacadeStub provides controllable behaviour for booking endpoints.
type AppointmentFacadeStub struct {
	BookFn         func(context.Context, string, string, time.Time, string) (*model.Appointment, error)
	AppointmentsFn func(context.Context, pkgAuth.Identity) ([]model.Appointment, error)
	UpdateStatusFn func(context.Context, string, model.AppointmentStatus) (*model.Appointment, error)
	CancelFn       func(context.Context, pkgAuth.Identity, string) error
}

// Book returns a requested appointment.
func (s AppointmentFacadeStub) Book(ctx context.Context, userID, serviceID string, scheduledAt time.Time, note string) (*model.Appointment, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, userID, serviceID, scheduledAt, note)
	}
	return &model.Appointment{ID: "appt-1", UserID: userID, ServiceID: serviceID, ScheduledAt: scheduledAt, Note: note, Status: model.AppointmentStatusRequested}, nil
}

// Appointments returns predefined bookings for the identity.
func (s AppointmentFacadeStub) Appointments(ctx context.Context, ident pkgAuth.Identity) ([]model.Appointment, error) {
	if s.AppointmentsFn != nil {
		return s.AppointmentsFn(ctx, ident)
	}
	return []model.Appointment{{ID: "appt-1", UserID: ident.UserID}}, nil
}

// UpdateAppointmentStatus executes the configured mutation handler.
func (s AppointmentFacadeStub) UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Appointment{ID: id, Status: status}, nil
}

// CancelAppointment executes the configured removal handler.
func (s AppointmentFacadeStub) CancelAppointment(ctx context.Context, ident pkgAuth.Identity, id string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, ident, id)
	}
	return nil
}

// EngagementFacadeStub provides controllable behaviour for comments and contacts.
type EngagementFacadeStub struct {
	AddCommentFn      func(context.Context, string, string, string, int) (*model.Comment, error)
	ProductCommentsFn func(context.Context, string, bool) ([]model.Comment, error)
	UpdateCommentFn   func(context.Context, string, model.CommentStatus) (*model.Comment, error)
	DeleteCommentFn   func(context.Context, string) error
	SubmitContactFn   func(context.Context, string, string, string, string) (*model.Contact, error)
	ContactsFn        func(context.Context) ([]model.Contact, error)
	DeleteContactFn   func(context.Context, string) error
}

// AddComment returns a pending comment.
func (s EngagementFacadeStub) AddComment(ctx context.Context, userID, productID, body string, rating int) (*model.Comment, error) {
	if s.AddCommentFn != nil {
		return s.AddCommentFn(ctx, userID, productID, body, rating)
	}
	return &model.Comment{ID: "comment-1", UserID: userID, ProductID: productID, Body: body, Rating: rating, Status: model.CommentStatusPending}, nil
}

// ProductComments returns predefined comments for the product.
func (s EngagementFacadeStub) ProductComments(ctx context.Context, productID string, includeUnmoderated bool) ([]model.Comment, error) {
	if s.ProductCommentsFn != nil {
		return s.ProductCommentsFn(ctx, productID, includeUnmoderated)
	}
	return []model.Comment{{ID: "comment-1", ProductID: productID, Status: model.CommentStatusApproved}}, nil
}

// UpdateCommentStatus executes the configured moderation handler.
func (s EngagementFacadeStub) UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error) {
	if s.UpdateCommentFn != nil {
		return s.UpdateCommentFn(ctx, id, status)
	}
	return &model.Comment{ID: id, Status: status}, nil
}

// DeleteComment executes the configured removal handler.
func (s EngagementFacadeStub) DeleteComment(ctx context.Context, id string) error {
	if s.DeleteCommentFn != nil {
		return s.DeleteCommentFn(ctx, id)
	}
	return nil
}

// SubmitContact returns the stored contact message.
func (s EngagementFacadeStub) SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, name, email, subject, message)
	}
	return &model.Contact{ID: "contact-1", Name: name, Email: email, Subject: subject, Message: message}, nil
}

// Contacts returns predefined contact messages.
func (s EngagementFacadeStub) Contacts(ctx context.Context) ([]model.Contact, error) {
	if s.ContactsFn != nil {
		return s.ContactsFn(ctx)
	}
	return []model.Contact{{ID: "contact-1"}}, nil
}

// DeleteContact executes the configured removal handler.
func (s EngagementFacadeStub) DeleteContact(ctx context.Context, id string) error {
	if s.DeleteContactFn != nil {
		return s.DeleteContactFn(ctx, id)
	}
	return nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	AppointmentFacadeStub
	EngagementFacadeStub
}
