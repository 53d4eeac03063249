package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawmart/pawmart/internal/domain/model"
	"github.com/pawmart/pawmart/internal/domain/repository"
)

// CatalogUseCase manages products and bookable services.
type CatalogUseCase struct {
	products repository.ProductRepository
	services repository.ServiceRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, services repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, services: services}
}

// Products lists catalog products, optionally filtered by category.
func (u *CatalogUseCase) Products(ctx context.Context, category string) ([]model.Product, error) {
	return u.products.List(ctx, category)
}

// Product fetches one product.
func (u *CatalogUseCase) Product(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// CreateProduct persists a new product.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	product.ID = uuid.NewString()
	if err := u.products.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct persists changes to an existing product.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := u.products.Update(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product from the catalog. Existing orders keep
// their snapshotted line items.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}

// Services lists bookable services.
func (u *CatalogUseCase) Services(ctx context.Context) ([]model.Service, error) {
	return u.services.List(ctx)
}

// Service fetches one service.
func (u *CatalogUseCase) Service(ctx context.Context, id string) (*model.Service, error) {
	return u.services.GetByID(ctx, id)
}

// CreateService persists a new service.
func (u *CatalogUseCase) CreateService(ctx context.Context, service model.Service) (*model.Service, error) {
	service.ID = uuid.NewString()
	if err := u.services.Create(ctx, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService persists changes to an existing service.
func (u *CatalogUseCase) UpdateService(ctx context.Context, service model.Service) (*model.Service, error) {
	if err := u.services.Update(ctx, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService removes a service.
func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	return u.services.Delete(ctx, id)
}
