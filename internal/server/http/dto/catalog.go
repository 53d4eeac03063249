package dto

import (
	"time"

	"github.com/pawmart/pawmart/internal/domain/model"
)

// ProductRequest describes create/update payload for catalog products.
// Price is integer cents.
type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	Stock       int    `json:"stock" binding:"gte=0"`
}

// ProductResponse is the public view of a catalog product.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceRequest describes create/update payload for bookable services.
type ServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           int64  `json:"price" binding:"required,gt=0"`
	DurationMinutes int    `json:"durationMinutes" binding:"gte=0"`
}

// ServiceResponse is the public view of a bookable service.
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           int64     `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToProduct maps the payload to a domain product.
func (r ProductRequest) ToProduct() model.Product {
	return model.Product{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Stock:       r.Stock,
	}
}

// ToProductResponse maps a domain product to its public view.
func ToProductResponse(product model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

// ToService maps the payload to a domain service.
func (r ServiceRequest) ToService() model.Service {
	return model.Service{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
	}
}

// ToServiceResponse maps a domain service to its public view.
func ToServiceResponse(service model.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID,
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		CreatedAt:       service.CreatedAt,
	}
}
