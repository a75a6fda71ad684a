package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

// BunInvoiceRepository implements InvoiceRepository using Bun ORM, scoped to
// the owning user like the client repository.
type BunInvoiceRepository struct {
	db *bun.DB
}

// NewBunInvoiceRepository creates a new Bun-based invoice repository
func NewBunInvoiceRepository(db *bun.DB) *BunInvoiceRepository {
	return &BunInvoiceRepository{db: db}
}

// Create inserts a new invoice
func (r *BunInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	now := time.Now()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(invoice).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice owned by ownerID
func (r *BunInvoiceRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Invoice, error) {
	invoice := new(models.Invoice)
	err := r.db.NewSelect().
		Model(invoice).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice by ID: %w", err)
	}
	return invoice, nil
}

// UpdateStatus moves an invoice to a new lifecycle status
func (r *BunInvoiceRepository) UpdateStatus(ctx context.Context, ownerID, id, status string) (*models.Invoice, error) {
	result, err := r.db.NewUpdate().
		Model((*models.Invoice)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, ownerID, id)
}

// Delete removes an invoice owned by ownerID
func (r *BunInvoiceRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.NewDelete().
		Model((*models.Invoice)(nil)).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves one page of invoices owned by ownerID, newest first
func (r *BunInvoiceRepository) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Invoice, int, error) {
	var invoices []models.Invoice
	q := r.db.NewSelect().
		Model(&invoices).
		Where("owner_id = ?", ownerID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("number LIKE ? OR status LIKE ?", pattern, pattern)
	}

	total, err := q.Order("created_at DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, total, nil
}
