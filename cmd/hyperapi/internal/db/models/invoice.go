package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Invoice statuses form a flat lifecycle; transitions are not enforced at the
// storage layer.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceLine is a single billable entry stored inside the invoice's lines
// JSON column.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// InvoiceLines is stored as a JSON array column.
type InvoiceLines []InvoiceLine

// Scan implements sql.Scanner for reading from database
func (l *InvoiceLines) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to scan InvoiceLines: expected []byte or string, got %T", value)
	}
	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for writing to database
func (l InvoiceLines) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Invoice is a bill issued to a client. TaxRate is a percentage (20 = 20%).
type Invoice struct {
	bun.BaseModel `bun:"table:invoices,alias:i"`

	ID        string       `bun:"id,pk,type:uuid"`
	OwnerID   string       `bun:"owner_id,notnull,type:uuid"`  // FK to users(id)
	ClientID  string       `bun:"client_id,notnull,type:uuid"` // FK to clients(id)
	Number    string       `bun:"number,notnull"`
	Lines     InvoiceLines `bun:"lines,type:jsonb,notnull,default:'[]'"`
	TaxRate   float64      `bun:"tax_rate,notnull,default:0"`
	Status    string       `bun:"status,notnull,default:'draft'"`
	IssuedAt  time.Time    `bun:"issued_at"`
	DueAt     time.Time    `bun:"due_at"`
	CreatedAt time.Time    `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time    `bun:"updated_at,notnull,default:current_timestamp"`
}
