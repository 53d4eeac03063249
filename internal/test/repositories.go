package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[string]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[string]*model.User),
	}
}

// Create registers user unless an email collision or explicit error occurs.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *user
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	ID     string
	Status model.OrderStatus
	IsPaid bool
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	CreateFn               func(context.Context, *model.Order) error
	GetByIDFn              func(context.Context, string) (*model.Order, error)
	ListAllFn              func(context.Context) ([]model.Order, error)
	ListByUserFn           func(context.Context, string) ([]model.Order, error)
	MarkPaidFn             func(context.Context, string, time.Time, *string) (*model.Order, error)
	UpdateStatusFn         func(context.Context, string, model.OrderStatus, bool) (*model.Order, error)
	DeleteFn               func(context.Context, string) error
	ListPendingOlderThanFn func(context.Context, time.Time) ([]model.Order, error)

	mu          sync.Mutex
	Created     []model.Order
	Orders      []model.Order
	MarkedPaid  []string
	UpdateCalls []OrderStatusCall
	Deleted     []string
}

// Create tracks the persisted order and consults the override.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	s.Created = append(s.Created, *order)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns the configured slice.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// ListByUser filters the configured slice by owner.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// MarkPaid records the reference and either delegates or flips the stored order.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, paymentRef string, paidAt time.Time, receiptURL *string) (*model.Order, error) {
	s.mu.Lock()
	s.MarkedPaid = append(s.MarkedPaid, paymentRef)
	s.mu.Unlock()
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, paymentRef, paidAt, receiptURL)
	}
	for i := range s.Orders {
		if s.Orders[i].PaymentRef == paymentRef {
			if !s.Orders[i].IsPaid {
				s.Orders[i].IsPaid = true
				s.Orders[i].Status = model.OrderStatusPaid
				at := paidAt
				s.Orders[i].PaidAt = &at
				s.Orders[i].ReceiptURL = receiptURL
			}
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus records update requests.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error) {
	s.mu.Lock()
	s.UpdateCalls = append(s.UpdateCalls, OrderStatusCall{ID: id, Status: status, IsPaid: isPaid})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, isPaid)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			s.Orders[i].IsPaid = isPaid
			order := s.Orders[i]
			return &order, nil
		}
	}
	return &model.Order{ID: id, Status: status, IsPaid: isPaid}, nil
}

// Delete records the removal request.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.Deleted = append(s.Deleted, id)
	s.mu.Unlock()
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ListPendingOlderThan returns pending orders created before the cutoff.
func (s *OrderRepositoryStub) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	if s.ListPendingOlderThanFn != nil {
		return s.ListPendingOlderThanFn(ctx, cutoff)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending && o.CreatedAt.Before(cutoff) {
			result = append(result, o)
		}
	}
	return result, nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[string]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[string]*model.Product)}
}

// Create stores product under its identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Products == nil {
		s.Products = make(map[string]*model.Product)
	}
	stored := *product
	s.Products[stored.ID] = &stored
	return nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products, optionally filtered by category.
func (s *ProductRepositoryStub) List(ctx context.Context, category string) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if category == "" || p.Category == category {
			result = append(result, *p)
		}
	}
	return result, nil
}

// Update replaces stored product or returns not found.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *product
	s.Products[stored.ID] = &stored
	return nil
}

// Delete removes product or returns not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// ServiceRepositoryStub stores services in-memory for tests.
type ServiceRepositoryStub struct {
	Services map[string]*model.Service
	Err      error
}

// NewServiceRepositoryStub constructs stub repository with initialized map.
func NewServiceRepositoryStub() *ServiceRepositoryStub {
	return &ServiceRepositoryStub{Services: make(map[string]*model.Service)}
}

// Create stores service under its identifier.
func (s *ServiceRepositoryStub) Create(ctx context.Context, service *model.Service) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Services == nil {
		s.Services = make(map[string]*model.Service)
	}
	stored := *service
	s.Services[stored.ID] = &stored
	return nil
}

// GetByID fetches service by identifier or returns not found.
func (s *ServiceRepositoryStub) GetByID(ctx context.Context, id string) (*model.Service, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if service, ok := s.Services[id]; ok {
		return service, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored services.
func (s *ServiceRepositoryStub) List(ctx context.Context) ([]model.Service, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Service
	for _, svc := range s.Services {
		result = append(result, *svc)
	}
	return result, nil
}

// Update replaces stored service or returns not found.
func (s *ServiceRepositoryStub) Update(ctx context.Context, service *model.Service) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Services[service.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *service
	s.Services[stored.ID] = &stored
	return nil
}

// Delete removes service or returns not found.
func (s *ServiceRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Services[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Services, id)
	return nil
}

// AppointmentRepositoryStub stores appointments in-memory for tests.
type AppointmentRepositoryStub struct {
	Appointments map[string]*model.Appointment
	Err          error
}

// NewAppointmentRepositoryStub constructs stub repository with initialized map.
func NewAppointmentRepositoryStub() *AppointmentRepositoryStub {
	return &AppointmentRepositoryStub{Appointments: make(map[string]*model.Appointment)}
}

// Create stores appointment under its identifier.
func (s *AppointmentRepositoryStub) Create(ctx context.Context, appointment *model.Appointment) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Appointments == nil {
		s.Appointments = make(map[string]*model.Appointment)
	}
	stored := *appointment
	s.Appointments[stored.ID] = &stored
	return nil
}

// GetByID fetches appointment by identifier or returns not found.
func (s *AppointmentRepositoryStub) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if appointment, ok := s.Appointments[id]; ok {
		return appointment, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListAll returns every stored appointment.
func (s *AppointmentRepositoryStub) ListAll(ctx context.Context) ([]model.Appointment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Appointment
	for _, a := range s.Appointments {
		result = append(result, *a)
	}
	return result, nil
}

// ListByUser filters stored appointments by owner.
func (s *AppointmentRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Appointment
	for _, a := range s.Appointments {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	return result, nil
}

// UpdateStatus mutates stored appointment or returns not found.
func (s *AppointmentRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	appointment, ok := s.Appointments[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	appointment.Status = status
	result := *appointment
	return &result, nil
}

// Delete removes appointment or returns not found.
func (s *AppointmentRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Appointments[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Appointments, id)
	return nil
}

// CommentRepositoryStub stores comments in-memory for tests.
type CommentRepositoryStub struct {
	Comments map[string]*model.Comment
	Err      error
}

// NewCommentRepositoryStub constructs stub repository with initialized map.
func NewCommentRepositoryStub() *CommentRepositoryStub {
	return &CommentRepositoryStub{Comments: make(map[string]*model.Comment)}
}

// Create stores comment under its identifier.
func (s *CommentRepositoryStub) Create(ctx context.Context, comment *model.Comment) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Comments == nil {
		s.Comments = make(map[string]*model.Comment)
	}
	stored := *comment
	s.Comments[stored.ID] = &stored
	return nil
}

// GetByID fetches comment by identifier or returns not found.
func (s *CommentRepositoryStub) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if comment, ok := s.Comments[id]; ok {
		return comment, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByProduct filters stored comments by product and moderation state.
func (s *CommentRepositoryStub) ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]model.Comment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Comment
	for _, c := range s.Comments {
		if c.ProductID != productID {
			continue
		}
		if approvedOnly && c.Status != model.CommentStatusApproved {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

// UpdateStatus mutates stored comment or returns not found.
func (s *CommentRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	comment, ok := s.Comments[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	comment.Status = status
	result := *comment
	return &result, nil
}

// Delete removes comment or returns not found.
func (s *CommentRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Comments[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Comments, id)
	return nil
}

// ContactRepositoryStub stores contact messages in-memory for tests.
type ContactRepositoryStub struct {
	Contacts map[string]*model.Contact
	Err      error
}

// NewContactRepositoryStub constructs stub repository with initialized map.
func NewContactRepositoryStub() *ContactRepositoryStub {
	return &ContactRepositoryStub{Contacts: make(map[string]*model.Contact)}
}

// Create stores contact message under its identifier.
func (s *ContactRepositoryStub) Create(ctx context.Context, contact *model.Contact) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Contacts == nil {
		s.Contacts = make(map[string]*model.Contact)
	}
	stored := *contact
	s.Contacts[stored.ID] = &stored
	return nil
}

// List returns all stored contact messages.
func (s *ContactRepositoryStub) List(ctx context.Context) ([]model.Contact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Contact
	for _, c := range s.Contacts {
		result = append(result, *c)
	}
	return result, nil
}

// Delete removes contact message or returns not found.
func (s *ContactRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Contacts[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Contacts, id)
	return nil
}
