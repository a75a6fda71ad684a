package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

// BunExpenseRepository implements ExpenseRepository using Bun ORM
type BunExpenseRepository struct {
	db *bun.DB
}

// NewBunExpenseRepository creates a new Bun-based expense repository
func NewBunExpenseRepository(db *bun.DB) *BunExpenseRepository {
	return &BunExpenseRepository{db: db}
}

// Create inserts a new expense entry
func (r *BunExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	expense.CreatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(expense).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

// Delete removes an expense owned by ownerID
func (r *BunExpenseRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.NewDelete().
		Model((*models.Expense)(nil)).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
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

// List retrieves one page of expenses owned by ownerID, newest first
func (r *BunExpenseRepository) List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Expense, int, error) {
	var expenses []models.Expense
	q := r.db.NewSelect().
		Model(&expenses).
		Where("owner_id = ?", ownerID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("category LIKE ? OR note LIKE ?", pattern, pattern)
	}

	total, err := q.Order("incurred_at DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, total, nil
}
