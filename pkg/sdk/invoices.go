package sdk

import (
	"context"
	"fmt"
	"math"
	"time"
)

// InvoiceStatus tracks an invoice through its lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// InvoiceLine is a single billable line on an invoice.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount returns the line amount rounded to cents.
func (l InvoiceLine) Amount() float64 {
	return roundCents(l.Quantity * l.UnitPrice)
}

// Invoice is a bill issued to a client.
type Invoice struct {
	ID       string        `json:"id"`
	ClientID string        `json:"client_id"`
	Number   string        `json:"number"`
	Lines    []InvoiceLine `json:"lines"`
	// TaxRate is a percentage, e.g. 20 for 20% tax.
	TaxRate   float64       `json:"tax_rate"`
	Status    InvoiceStatus `json:"status"`
	IssuedAt  time.Time     `json:"issued_at"`
	DueAt     time.Time     `json:"due_at"`
	CreatedAt time.Time     `json:"created_at"`
}

// Totals holds the computed monetary summary of an invoice.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Totals computes the invoice's subtotal, tax amount, and total, each rounded
// to cents.
func (inv Invoice) Totals() Totals {
	var subtotal float64
	for _, line := range inv.Lines {
		subtotal += line.Amount()
	}
	subtotal = roundCents(subtotal)
	tax := roundCents(subtotal * inv.TaxRate / 100)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateInvoiceInput holds the fields accepted when creating an invoice.
type CreateInvoiceInput struct {
	ClientID string        `json:"client_id"`
	Number   string        `json:"number"`
	Lines    []InvoiceLine `json:"lines"`
	TaxRate  float64       `json:"tax_rate"`
	DueAt    time.Time     `json:"due_at"`
}

// ListInvoices returns one page of invoices.
func (c *Client) ListInvoices(ctx context.Context, opts ListOptions) (Page[Invoice], error) {
	var page Page[Invoice]
	if err := c.get(ctx, "/api/invoices", opts.query(), &page); err != nil {
		return Page[Invoice]{}, err
	}
	return page, nil
}

// GetInvoice fetches a single invoice by ID.
func (c *Client) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	var invoice Invoice
	if err := c.get(ctx, "/api/invoices/"+id, nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// CreateInvoice creates a new invoice for a client.
func (c *Client) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*Invoice, error) {
	if input.ClientID == "" {
		return nil, fmt.Errorf("invoice client ID is required")
	}
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("invoice requires at least one line")
	}
	var invoice Invoice
	if err := c.post(ctx, "/api/invoices", input, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoiceStatus moves an invoice to a new lifecycle status.
func (c *Client) UpdateInvoiceStatus(ctx context.Context, id string, status InvoiceStatus) (*Invoice, error) {
	var invoice Invoice
	body := struct {
		Status InvoiceStatus `json:"status"`
	}{Status: status}
	if err := c.put(ctx, "/api/invoices/"+id+"/status", body, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// DeleteInvoice removes an invoice.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/invoices/"+id)
}
