package server

import (
	"time"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
)

// Wire shapes returned to SDK and browser clients. Field names are part of
// the client contract; change them only together with the SDK.

type clientDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toClientDTO(m *models.Client) clientDTO {
	return clientDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Company:   m.Company,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
}

type invoiceLineDTO struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type invoiceDTO struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"client_id"`
	Number    string           `json:"number"`
	Lines     []invoiceLineDTO `json:"lines"`
	TaxRate   float64          `json:"tax_rate"`
	Status    string           `json:"status"`
	IssuedAt  time.Time        `json:"issued_at"`
	DueAt     time.Time        `json:"due_at"`
	CreatedAt time.Time        `json:"created_at"`
}

func toInvoiceDTO(m *models.Invoice) invoiceDTO {
	lines := make([]invoiceLineDTO, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, invoiceLineDTO{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return invoiceDTO{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Number:    m.Number,
		Lines:     lines,
		TaxRate:   m.TaxRate,
		Status:    m.Status,
		IssuedAt:  m.IssuedAt,
		DueAt:     m.DueAt,
		CreatedAt: m.CreatedAt,
	}
}

type projectDTO struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProjectDTO(m *models.Project) projectDTO {
	return projectDTO{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Name:        m.Name,
		Description: m.Notes,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

type expenseDTO struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id,omitempty"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Note       string    `json:"note,omitempty"`
	IncurredAt time.Time `json:"incurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func toExpenseDTO(m *models.Expense) expenseDTO {
	projectID := ""
	if m.ProjectID != nil {
		projectID = *m.ProjectID
	}
	return expenseDTO{
		ID:         m.ID,
		ProjectID:  projectID,
		Category:   m.Category,
		Amount:     float64(m.AmountCents) / 100,
		Note:       m.Note,
		IncurredAt: m.IncurredAt,
		CreatedAt:  m.CreatedAt,
	}
}

type followUpDTO struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Note      string    `json:"note"`
	DueAt     time.Time `json:"due_at"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

func toFollowUpDTO(m *models.FollowUp) followUpDTO {
	return followUpDTO{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Note:      m.Note,
		DueAt:     m.DueAt,
		Done:      m.DoneAt != nil,
		CreatedAt: m.CreatedAt,
	}
}

type adminDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PlanID    string    `json:"plan_id,omitempty"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
}

func toAdminDTO(m *models.User) adminDTO {
	planID := ""
	if m.PlanID != nil {
		planID = *m.PlanID
	}
	return adminDTO{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		PlanID:    planID,
		Disabled:  m.Disabled(),
		CreatedAt: m.CreatedAt,
	}
}

type planDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int       `json:"price_cents"`
	MaxClients int       `json:"max_clients"`
	CreatedAt  time.Time `json:"created_at"`
}

func toPlanDTO(m *models.Plan) planDTO {
	return planDTO{
		ID:         m.ID,
		Name:       m.Name,
		PriceCents: m.PriceCents,
		MaxClients: m.MaxClients,
		CreatedAt:  m.CreatedAt,
	}
}
