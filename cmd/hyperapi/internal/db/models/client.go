package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Client is a customer record owned by a tenant admin.
type Client struct {
	bun.BaseModel `bun:"table:clients,alias:c"`

	ID        string    `bun:"id,pk,type:uuid"`
	OwnerID   string    `bun:"owner_id,notnull,type:uuid"` // FK to users(id)
	Name      string    `bun:"name,notnull"`
	Email     string    `bun:"email"`
	Phone     string    `bun:"phone"`
	Company   string    `bun:"company"`
	Address   string    `bun:"address"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Project groups work done for a client.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:pr"`

	ID        string    `bun:"id,pk,type:uuid"`
	OwnerID   string    `bun:"owner_id,notnull,type:uuid"`
	ClientID  string    `bun:"client_id,notnull,type:uuid"` // FK to clients(id)
	Name      string    `bun:"name,notnull"`
	Notes     string    `bun:"notes"`
	Status    string    `bun:"status,notnull,default:'active'"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Expense is a cost entry, optionally tied to a project.
type Expense struct {
	bun.BaseModel `bun:"table:expenses,alias:e"`

	ID          string    `bun:"id,pk,type:uuid"`
	OwnerID     string    `bun:"owner_id,notnull,type:uuid"`
	ProjectID   *string   `bun:"project_id,type:uuid"` // FK to projects(id), nullable
	Category    string    `bun:"category,notnull"`
	AmountCents int       `bun:"amount_cents,notnull"`
	Note        string    `bun:"note"`
	IncurredAt  time.Time `bun:"incurred_at,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// FollowUp is a reminder to contact a client.
type FollowUp struct {
	bun.BaseModel `bun:"table:followups,alias:f"`

	ID        string     `bun:"id,pk,type:uuid"`
	OwnerID   string     `bun:"owner_id,notnull,type:uuid"`
	ClientID  string     `bun:"client_id,notnull,type:uuid"`
	Note      string     `bun:"note,notnull"`
	DueAt     time.Time  `bun:"due_at"`
	DoneAt    *time.Time `bun:"done_at"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}
