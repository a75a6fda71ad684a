package repository

import (
	"context"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

const defaultPageSize = 50

// ListFilter holds pagination and search parameters shared by list queries.
// Page is 1-based; a zero Page or PageSize falls back to the first page with
// the default size.
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// Limit returns the effective page size.
func (f ListFilter) Limit() int {
	if f.PageSize <= 0 {
		return defaultPageSize
	}
	return f.PageSize
}

// Offset returns the row offset for the requested page.
func (f ListFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// UserRepository manages account records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id string) error
	SetDisabled(ctx context.Context, id string, disabled bool) (*models.User, error)
	ListByRole(ctx context.Context, role string, filter ListFilter) ([]models.User, int, error)
}

// ClientRepository manages customer records.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, ownerID, id string) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Client, int, error)
}

// InvoiceRepository manages invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, ownerID, id string) (*models.Invoice, error)
	UpdateStatus(ctx context.Context, ownerID, id, status string) (*models.Invoice, error)
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Invoice, int, error)
}

// ProjectRepository manages projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Project, int, error)
}

// ExpenseRepository manages expense entries.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, ownerID, id string) error
	List(ctx context.Context, ownerID string, filter ListFilter) ([]models.Expense, int, error)
}

// FollowUpRepository manages client follow-up reminders.
type FollowUpRepository interface {
	Create(ctx context.Context, followUp *models.FollowUp) error
	MarkDone(ctx context.Context, ownerID, id string) (*models.FollowUp, error)
	List(ctx context.Context, ownerID string, filter ListFilter) ([]models.FollowUp, int, error)
}

// PlanRepository manages subscription plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	List(ctx context.Context, filter ListFilter) ([]models.Plan, int, error)
}
