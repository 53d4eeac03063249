package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

type serviceRepository struct {
	storage *Storage
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	const query = `INSERT INTO products (id, name, description, category, price, image_url, stock)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at`
	return r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, product.ImageURL, product.Stock,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT id, name, description, category, price, image_url, stock, created_at, updated_at
                   FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	query := `SELECT id, name, description, category, price, image_url, stock, created_at, updated_at
              FROM products ORDER BY created_at DESC`
	args := []any{}
	if category != "" {
		query = `SELECT id, name, description, category, price, image_url, stock, created_at, updated_at
                 FROM products WHERE category=$1 ORDER BY created_at DESC`
		args = append(args, category)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	const query = `UPDATE products SET name=$2, description=$3, category=$4, price=$5, image_url=$6, stock=$7, updated_at=NOW()
                   WHERE id=$1 RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, product.ImageURL, product.Stock,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ServiceRepository implementation ---

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	const query = `INSERT INTO services (id, name, description, price, duration_minutes)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	return r.storage.pool.QueryRow(ctx, query,
		service.ID, service.Name, service.Description, service.Price, service.DurationMinutes,
	).Scan(&service.CreatedAt, &service.UpdatedAt)
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	const query = `SELECT id, name, description, price, duration_minutes, created_at, updated_at
                   FROM services WHERE id=$1`
	var s model.Service
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]model.Service, error) {
	const query = `SELECT id, name, description, price, duration_minutes, created_at, updated_at
                   FROM services ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	const query = `UPDATE services SET name=$2, description=$3, price=$4, duration_minutes=$5, updated_at=NOW()
                   WHERE id=$1 RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		service.ID, service.Name, service.Description, service.Price, service.DurationMinutes,
	).Scan(&service.CreatedAt, &service.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
