package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

// BunFollowUpRepository implements FollowUpRepository using Bun ORM
type BunFollowUpRepository struct {
	db *bun.DB
}

// NewBunFollowUpRepository creates a new Bun-based follow-up repository
func NewBunFollowUpRepository(db *bun.DB) *BunFollowUpRepository {
	return &BunFollowUpRepository{db: db}
}

// Create inserts a new follow-up reminder
func (r *BunFollowUpRepository) Create(ctx context.Context, followUp *models.FollowUp) error {
	followUp.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(followUp).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create follow-up: %w", err)
	}
	return nil
}

// MarkDone marks a follow-up as completed. Already-completed follow-ups keep
// their original completion time.
func (r *BunFollowUpRepository) MarkDone(ctx context.Context, ownerID, id string) (*models.FollowUp, error) {
	result, err := r.db.NewUpdate().
		Model((*models.FollowUp)(nil)).
		Set("done_at = ?", time.Now()).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Where("done_at IS NULL").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark follow-up done: %w", err)
	}
	if _, err := result.RowsAffected(); err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}

	followUp := new(models.FollowUp)
	err = r.db.NewSelect().
		Model(followUp).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		return nil, ErrNotFound
	}
	return followUp, nil
}

// List retrieves one page of follow-ups owned by ownerID, soonest due first
func (r *BunFollowUpRepository) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.FollowUp, int, error) {
	var followUps []models.FollowUp
	q := r.db.NewSelect().
		Model(&followUps).
		Where("owner_id = ?", ownerID)
	if filter.Search != "" {
		q = q.Where("note LIKE ?", "%"+filter.Search+"%")
	}

	total, err := q.Order("due_at ASC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list follow-ups: %w", err)
	}
	return followUps, total, nil
}
