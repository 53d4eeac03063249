package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/pawmart/pawmart/internal/domain/errors"
	"github.com/pawmart/pawmart/internal/domain/model"
)

type appointmentRepository struct {
	storage *Storage
}

type commentRepository struct {
	storage *Storage
}

type contactRepository struct {
	storage *Storage
}

// --- AppointmentRepository implementation ---

const appointmentColumns = `id, user_id, service_id, scheduled_at, note, status, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	const query = `INSERT INTO appointments (id, user_id, service_id, scheduled_at, note, status)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
	return r.storage.pool.QueryRow(ctx, query,
		appointment.ID, appointment.UserID, appointment.ServiceID,
		appointment.ScheduledAt, appointment.Note, appointment.Status,
	).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`
	return scanAppointment(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]model.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY scheduled_at DESC`
	return r.list(ctx, query)
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments WHERE user_id=$1 ORDER BY scheduled_at DESC`
	return r.list(ctx, query, userID)
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	const query = `UPDATE appointments SET status=$2, updated_at=NOW() WHERE id=$1
                   RETURNING ` + appointmentColumns
	return scanAppointment(r.storage.pool.QueryRow(ctx, query, id, status))
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) list(ctx context.Context, query string, args ...any) ([]model.Appointment, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.ServiceID, &a.ScheduledAt, &a.Note, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(&a.ID, &a.UserID, &a.ServiceID, &a.ScheduledAt, &a.Note, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- CommentRepository implementation ---

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `INSERT INTO comments (id, user_id, product_id, body, rating, status)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	return r.storage.pool.QueryRow(ctx, query,
		comment.ID, comment.UserID, comment.ProductID, comment.Body, comment.Rating, comment.Status,
	).Scan(&comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	const query = `SELECT id, user_id, product_id, body, rating, status, created_at FROM comments WHERE id=$1`
	return scanComment(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *commentRepository) ListByProduct(ctx context.Context, productID string, approvedOnly bool) ([]model.Comment, error) {
	query := `SELECT id, user_id, product_id, body, rating, status, created_at
              FROM comments WHERE product_id=$1 ORDER BY created_at DESC`
	args := []any{productID}
	if approvedOnly {
		query = `SELECT id, user_id, product_id, body, rating, status, created_at
                 FROM comments WHERE product_id=$1 AND status=$2 ORDER BY created_at DESC`
		args = append(args, model.CommentStatusApproved)
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.ProductID, &c.Body, &c.Rating, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *commentRepository) UpdateStatus(ctx context.Context, id string, status model.CommentStatus) (*model.Comment, error) {
	const query = `UPDATE comments SET status=$2 WHERE id=$1
                   RETURNING id, user_id, product_id, body, rating, status, created_at`
	return scanComment(r.storage.pool.QueryRow(ctx, query, id, status))
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.UserID, &c.ProductID, &c.Body, &c.Rating, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- ContactRepository implementation ---

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	const query = `INSERT INTO contacts (id, name, email, subject, message)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	return r.storage.pool.QueryRow(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message,
	).Scan(&contact.CreatedAt)
}

func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	const query = `SELECT id, name, email, subject, message, created_at FROM contacts ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
