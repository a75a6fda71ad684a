package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

// BunPlanRepository implements PlanRepository using Bun ORM
type BunPlanRepository struct {
	db *bun.DB
}

// NewBunPlanRepository creates a new Bun-based plan repository
func NewBunPlanRepository(db *bun.DB) *BunPlanRepository {
	return &BunPlanRepository{db: db}
}

// Create inserts a new subscription plan
func (r *BunPlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	plan.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(plan).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

// List retrieves one page of plans, cheapest first
func (r *BunPlanRepository) List(ctx context.Context, filter ListFilter) ([]models.Plan, int, error) {
	var plans []models.Plan
	q := r.db.NewSelect().Model(&plans)
	if filter.Search != "" {
		q = q.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	total, err := q.Order("price_cents ASC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list plans: %w", err)
	}
	return plans, total, nil
}
