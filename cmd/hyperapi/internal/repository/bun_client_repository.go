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

// BunClientRepository implements ClientRepository using Bun ORM.
// All queries are scoped to the owning user; a record belonging to another
// owner behaves exactly like a missing record.
type BunClientRepository struct {
	db *bun.DB
}

// NewBunClientRepository creates a new Bun-based client repository
func NewBunClientRepository(db *bun.DB) *BunClientRepository {
	return &BunClientRepository{db: db}
}

// Create inserts a new client record
func (r *BunClientRepository) Create(ctx context.Context, client *models.Client) error {
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(client).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client owned by ownerID
func (r *BunClientRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Client, error) {
	client := new(models.Client)
	err := r.db.NewSelect().
		Model(client).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client by ID: %w", err)
	}
	return client, nil
}

// Update replaces the mutable fields of a client record
func (r *BunClientRepository) Update(ctx context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now()
	result, err := r.db.NewUpdate().
		Model(client).
		Column("name", "email", "phone", "company", "address", "updated_at").
		WherePK().
		Where("owner_id = ?", client.OwnerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
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

// Delete removes a client owned by ownerID
func (r *BunClientRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.NewDelete().
		Model((*models.Client)(nil)).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
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

// List retrieves one page of clients owned by ownerID, newest first
func (r *BunClientRepository) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Client, int, error) {
	var clients []models.Client
	q := r.db.NewSelect().
		Model(&clients).
		Where("owner_id = ?", ownerID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", pattern, pattern, pattern)
	}

	total, err := q.Order("created_at DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	return clients, total, nil
}
