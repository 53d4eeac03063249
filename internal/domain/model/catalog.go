package model

import "time"

// Product is a catalog item. Prices are integer cents.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       int64
	ImageURL    string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Service is a bookable grooming/vet service offered by the shop.
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           int64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
