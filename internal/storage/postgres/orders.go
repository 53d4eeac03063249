package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, total_amount, total_quantity, status, is_paid, paid_at, payment_ref, receipt_url, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, user_id, total_amount, total_quantity, status, payment_ref)
                             VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.ID, order.UserID, order.TotalAmount, order.TotalQuantity, order.Status, order.PaymentRef,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, position, product_id, name, category, unit_price, quantity, image_url)
                            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		for i, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem,
				order.ID, i, item.ProductID, item.Name, item.Category, item.UnitPrice, item.Quantity, item.ImageURL,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// MarkPaid is deliberately idempotent: redelivered webhook events keep the
// original paid_at and never regress a fulfilment status set by an admin.
func (r *orderRepository) MarkPaid(ctx context.Context, paymentRef string, paidAt time.Time, receiptURL *string) (*model.Order, error) {
	const query = `UPDATE orders
                   SET is_paid = TRUE,
                       paid_at = COALESCE(paid_at, $2),
                       status = CASE WHEN is_paid THEN status ELSE 'Paid' END,
                       receipt_url = COALESCE(receipt_url, $3),
                       updated_at = NOW()
                   WHERE payment_ref = $1
                   RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, paymentRef, paidAt, receiptURL))
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, isPaid bool) (*model.Order, error) {
	const query = `UPDATE orders SET status=$2, is_paid=$3, updated_at=NOW() WHERE id=$1
                   RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id, status, isPaid))
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE status=$1 AND created_at < $2 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, model.OrderStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	orders, err := func() ([]model.Order, error) {
		defer rows.Close()
		return collectOrders(rows)
	}()
	if err != nil {
		return nil, err
	}

	refs := make([]*model.Order, len(orders))
	for i := range orders {
		refs[i] = &orders[i]
	}
	if err := r.attachItems(ctx, refs); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*model.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	const query = `SELECT order_id, product_id, name, category, unit_price, quantity, image_url
                   FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item model.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.Name, &item.Category, &item.UnitPrice, &item.Quantity, &item.ImageURL); err != nil {
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.TotalQuantity, &o.Status, &o.IsPaid, &o.PaidAt, &o.PaymentRef, &o.ReceiptURL, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.TotalQuantity, &o.Status, &o.IsPaid, &o.PaidAt, &o.PaymentRef, &o.ReceiptURL, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
