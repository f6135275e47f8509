package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/adroitdesign/studio-api/internal/model"
)

const defaultListLimit = 20

// InquiryRepository is the local store for inquiries. A row exists here only
// when the CRM could not be reached at submission time, so this table is the
// fallback copy, never a mirror.
type InquiryRepository interface {
	Create(ctx context.Context, i *model.Inquiry) error
	FindByID(ctx context.Context, id int) (*model.Inquiry, error)
	FindAll(ctx context.Context, filter model.InquiryFilter) ([]model.Inquiry, error)
	FindUnsynced(ctx context.Context, window time.Duration) ([]model.Inquiry, error)
	SetLeadID(ctx context.Context, id int, leadID int) error
	UpdateStatus(ctx context.Context, id int, status string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type postgresInquiryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresInquiryRepository(p *pgxpool.Pool) InquiryRepository {
	return &postgresInquiryRepository{pool: p}
}

const inquiryColumns = "id, name, email, phone, subject, message, type, company, status, odoo_lead_id, created_at"

func scanInquiry(row pgx.Row) (model.Inquiry, error) {
	var i model.Inquiry
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Subject, &i.Message, &i.Type, &i.Company, &i.Status, &i.OdooLeadID, &i.CreatedAt)
	return i, err
}

// Create inserts the fallback row and populates i.ID and i.CreatedAt from
// the RETURNING clause.
func (r *postgresInquiryRepository) Create(ctx context.Context, i *model.Inquiry) error {
	q := `INSERT INTO inquiries(name, email, phone, subject, message, type, company, status)
	      VALUES($1, $2, $3, $4, $5, $6, $7, $8)
	      RETURNING id, created_at`
	return withRetry(ctx, func() error {
		return r.pool.QueryRow(ctx, q, i.Name, i.Email, i.Phone, i.Subject, i.Message, i.Type, i.Company, i.Status).
			Scan(&i.ID, &i.CreatedAt)
	})
}

func (r *postgresInquiryRepository) FindByID(ctx context.Context, id int) (*model.Inquiry, error) {
	q := fmt.Sprintf("SELECT %s FROM inquiries WHERE id = $1", inquiryColumns)

	var i model.Inquiry
	err := withRetry(ctx, func() error {
		var scanErr error
		i, scanErr = scanInquiry(r.pool.QueryRow(ctx, q, id))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *postgresInquiryRepository) FindAll(ctx context.Context, filter model.InquiryFilter) ([]model.Inquiry, error) {
	var conditions []string
	var args []any

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	q := fmt.Sprintf("SELECT %s FROM inquiries", inquiryColumns)
	if len(conditions) > 0 {
		q += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, (page-1)*limit)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	return r.queryMany(ctx, q, args...)
}

// FindUnsynced returns rows with no CRM link created within the trailing
// window, oldest first so a partial batch drains in submission order.
func (r *postgresInquiryRepository) FindUnsynced(ctx context.Context, window time.Duration) ([]model.Inquiry, error) {
	q := fmt.Sprintf(`SELECT %s FROM inquiries
	      WHERE odoo_lead_id IS NULL AND created_at > $1
	      ORDER BY created_at`, inquiryColumns)
	return r.queryMany(ctx, q, time.Now().Add(-window))
}

func (r *postgresInquiryRepository) queryMany(ctx context.Context, q string, args ...any) ([]model.Inquiry, error) {
	inquiries := make([]model.Inquiry, 0)

	err := withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		inquiries = inquiries[:0]
		for rows.Next() {
			i, err := scanInquiry(rows)
			if err != nil {
				return err
			}
			inquiries = append(inquiries, i)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *postgresInquiryRepository) SetLeadID(ctx context.Context, id int, leadID int) error {
	q := "UPDATE inquiries SET odoo_lead_id = $1 WHERE id = $2"
	return withRetry(ctx, func() error {
		_, err := r.pool.Exec(ctx, q, leadID, id)
		return err
	})
}

func (r *postgresInquiryRepository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	q := "UPDATE inquiries SET status = $1 WHERE id = $2"

	var updated bool
	err := withRetry(ctx, func() error {
		comm, err := r.pool.Exec(ctx, q, status, id)
		if err != nil {
			return err
		}
		updated = comm.RowsAffected() > 0
		return nil
	})
	return updated, err
}

func (r *postgresInquiryRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := "DELETE FROM inquiries WHERE id = $1"

	var deleted bool
	err := withRetry(ctx, func() error {
		comm, err := r.pool.Exec(ctx, q, id)
		if err != nil {
			return err
		}
		deleted = comm.RowsAffected() > 0
		return nil
	})
	return deleted, err
}
