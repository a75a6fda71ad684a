package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an authenticated account. Role is a flat tag: "admin" for regular
// tenant admins, "superadmin" for platform operators. There is no hierarchy
// between the two.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string     `bun:"id,pk,type:uuid"`
	Email        string     `bun:"email,notnull,unique"`
	Name         string     `bun:"name"`
	Role         string     `bun:"role,notnull"`
	PasswordHash string     `bun:"password_hash,notnull"` // bcrypt
	PlanID       *string    `bun:"plan_id,type:uuid"`     // FK to plans(id), nullable
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
	LastLoginAt  *time.Time `bun:"last_login_at"`
	DisabledAt   *time.Time `bun:"disabled_at"`
}

// Disabled reports whether the account has been disabled by an operator.
func (u *User) Disabled() bool {
	return u != nil && u.DisabledAt != nil
}

// Plan is a subscription tier assignable to tenant admins.
type Plan struct {
	bun.BaseModel `bun:"table:plans,alias:p"`

	ID         string    `bun:"id,pk,type:uuid"`
	Name       string    `bun:"name,notnull,unique"`
	PriceCents int       `bun:"price_cents,notnull,default:0"`
	MaxClients int       `bun:"max_clients,notnull,default:0"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
