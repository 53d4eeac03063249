package app

import (
	"context"
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
	"github.com/pawmart/pawmart/internal/usecase"
)

// StoreFacade aggregates the use cases behind one surface consumed by the
// HTTP layer and the pending monitor.
type StoreFacade struct {
	auth         *usecase.AuthUseCase
	catalog      *usecase.CatalogUseCase
	orders       *usecase.OrderUseCase
	appointments *usecase.AppointmentUseCase
	engagement   *usecase.EngagementUseCase
}

func NewStoreFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	appointments *usecase.AppointmentUseCase,
	engagement *usecase.EngagementUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:         auth,
		catalog:      catalog,
		orders:       orders,
		appointments: appointments,
		engagement:   engagement,
	}
}

func (f *StoreFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) CurrentUser(ctx context.Context, id string) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context, category string) ([]model.Product, error) {
	return f.catalog.Products(ctx, category)
}

func (f *StoreFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StoreFacade) Services(ctx context.Context) ([]model.Service, error) {
	return f.catalog.Services(ctx)
}

func (f *StoreFacade) Service(ctx context.Context, id string) (*model.Service, error) {
	return f.catalog.Service(ctx, id)
}

func (f *StoreFacade) CreateService(ctx context.Context, service model.Service) (*model.Service, error) {
	return f.catalog.CreateService(ctx, service)
}

func (f *StoreFacade) UpdateService(ctx context.Context, service model.Service) (*model.Service, error) {
	return f.catalog.UpdateService(ctx, service)
}

func (f *StoreFacade) DeleteService(ctx context.Context, id string) error {
	return f.catalog.DeleteService(ctx, id)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID, email string, items []model.OrderItem, totalAmount int64, totalQuantity int) (string, error) {
	return f.orders.Checkout(ctx, userID, email, items, totalAmount, totalQuantity)
}

func (f *StoreFacade) ProcessPaymentEvent(ctx context.Context, body []byte, signature string) error {
	return f.orders.ProcessPaymentEvent(ctx, body, signature)
}

func (f *StoreFacade) Orders(ctx context.Context, ident pkgAuth.Identity) ([]model.Order, error) {
	return f.orders.ListFor(ctx, ident)
}

func (f *StoreFacade) Order(ctx context.Context, ident pkgAuth.Identity, id string) (*model.Order, error) {
	return f.orders.GetFor(ctx, ident, id)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status, isPaid)
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *StoreFacade) StalePendingOrders(ctx context.Context, age time.Duration) ([]model.Order, error) {
	return f.orders.PendingOlderThan(ctx, age)
}

func (f *StoreFacade) Book(ctx context.Context, userID, serviceID string, scheduledAt time.Time, note string) (*model.Appointment, error) {
	return f.appointments.Book(ctx, userID, serviceID, scheduledAt, note)
}

func (f *StoreFacade) Appointments(ctx context.Context, ident pkgAuth.Identity) ([]model.Appointment, error) {
	return f.appointments.ListFor(ctx, ident)
}

func (f *StoreFacade) UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	return f.appointments.UpdateStatus(ctx, id, status)
}

func (f *StoreFacade) CancelAppointment(ctx context.Context, ident pkgAuth.Identity, id string) error {
	return f.appointments.Cancel(ctx, ident, id)
}

func (f *StoreFacade) AddComment(ctx context.Context, userID, productID, body string, rating int) (*model.Comment, error) {
	return f.engagement.AddComment(ctx, userID, productID, body, rating)
}

func (f *StoreFacade) ProductComments(ctx context.Context, productID string, includeUnmoderated bool) ([]model.Comment, error) {
	return f.engagement.ProductComments(ctx, productID, includeUnmoderated)
}

func (f *StoreFacade) UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error) {
	return f.engagement.UpdateCommentStatus(ctx, id, status)
}

func (f *StoreFacade) DeleteComment(ctx context.Context, id string) error {
	return f.engagement.DeleteComment(ctx, id)
}

func (f *StoreFacade) SubmitContact(ctx context.Context, name, email, subject, message string) (*model.Contact, error) {
	return f.engagement.SubmitContact(ctx, name, email, subject, message)
}

func (f *StoreFacade) Contacts(ctx context.Context) ([]model.Contact, error) {
	return f.engagement.Contacts(ctx)
}

func (f *StoreFacade) DeleteContact(ctx context.Context, id string) error {
	return f.engagement.DeleteContact(ctx, id)
}
