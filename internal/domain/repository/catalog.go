package repository

import (
	"context"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	// List returns products, optionally filtered by category.
	List(ctx context.Context, category string) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository describes persistence operations for bookable services.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	GetByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id string) error
}
