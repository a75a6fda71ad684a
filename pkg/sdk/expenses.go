package sdk

import (
	"context"
	"time"
)

// Expense is a cost recorded against the business, optionally tied to a
// project.
type Expense struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id,omitempty"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note,omitempty"`
	IncurredAt time.Time `json:"incurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateExpenseInput holds the fields accepted when recording an expense.
type CreateExpenseInput struct {
	ProjectID  string    `json:"project_id,omitempty"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note,omitempty"`
	IncurredAt time.Time `json:"incurred_at"`
}

// ListExpenses returns one page of expenses.
func (c *Client) ListExpenses(ctx context.Context, opts ListOptions) (Page[Expense], error) {
	var page Page[Expense]
	if err := c.get(ctx, "/api/expenses", opts.query(), &page); err != nil {
		return Page[Expense]{}, err
	}
	return page, nil
}

// CreateExpense records a new expense.
func (c *Client) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	var expense Expense
	if err := c.post(ctx, "/api/expenses", input, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/expenses/"+id)
}
