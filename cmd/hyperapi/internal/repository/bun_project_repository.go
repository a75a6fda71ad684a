package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

// BunProjectRepository implements ProjectRepository using Bun ORM
type BunProjectRepository struct {
	db *bun.DB
}

// NewBunProjectRepository creates a new Bun-based project repository
func NewBunProjectRepository(db *bun.DB) *BunProjectRepository {
	return &BunProjectRepository{db: db}
}

// Create inserts a new project
func (r *BunProjectRepository) Create(ctx context.Context, project *models.Project) error {
	project.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(project).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// Delete removes a project owned by ownerID
func (r *BunProjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.NewDelete().
		Model((*models.Project)(nil)).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
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

// List retrieves one page of projects owned by ownerID, newest first
func (r *BunProjectRepository) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Project, int, error) {
	var projects []models.Project
	q := r.db.NewSelect().
		Model(&projects).
		Where("owner_id = ?", ownerID)
	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	total, err := q.Order("created_at DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	return projects, total, nil
}
