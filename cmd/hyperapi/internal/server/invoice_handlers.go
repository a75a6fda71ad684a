package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

type invoiceInput struct {
	ClientID string           `json:"client_id"`
	Number   string           `json:"number"`
	Lines    []invoiceLineDTO `json:"lines"`
	TaxRate  float64          `json:"tax_rate"`
	DueAt    time.Time        `json:"due_at"`
}

type invoiceStatusInput struct {
	Status string `json:"status"`
}

func validInvoiceStatus(status string) bool {
	switch status {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent,
		models.InvoiceStatusPaid, models.InvoiceStatusOverdue:
		return true
	}
	return false
}

// MountInvoiceRoutes registers the invoice endpoints under /api/invoices.
func MountInvoiceRoutes(r chi.Router, invoices repository.InvoiceRepository, clients repository.ClientRepository) {
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", handleListInvoices(invoices))
		r.Post("/", handleCreateInvoice(invoices, clients))
		r.Get("/{id}", handleGetInvoice(invoices))
		r.Put("/{id}/status", handleUpdateInvoiceStatus(invoices))
		r.Delete("/{id}", handleDeleteInvoice(invoices))
	})
}

func handleListInvoices(invoices repository.InvoiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())
		filter := parseListFilter(r)

		records, total, err := invoices.List(r.Context(), identity.UserID, filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]invoiceDTO, 0, len(records))
		for i := range records {
			items = append(items, toInvoiceDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleGetInvoice(invoices repository.InvoiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		record, err := invoices.GetByID(r.Context(), identity.UserID, chi.URLParam(r, "id"))
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInvoiceDTO(record))
	}
}

func handleCreateInvoice(invoices repository.InvoiceRepository, clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input invoiceInput
		if !decodeBody(w, r, &input) {
			return
		}
		if input.ClientID == "" {
			writeError(w, http.StatusBadRequest, "client_id is required")
			return
		}
		if len(input.Lines) == 0 {
			writeError(w, http.StatusBadRequest, "at least one invoice line is required")
			return
		}

		// The client must exist and belong to the caller.
		if _, err := clients.GetByID(r.Context(), identity.UserID, input.ClientID); err != nil {
			writeRepoError(w, r, err)
			return
		}

		lines := make(models.InvoiceLines, 0, len(input.Lines))
		for _, l := range input.Lines {
			lines = append(lines, models.InvoiceLine{
				Description: l.Description,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
			})
		}

		dueAt := input.DueAt
		if dueAt.IsZero() {
			dueAt = time.Now().AddDate(0, 1, 0)
		}

		record := &models.Invoice{
			ID:       bunx.NewUUIDv7(),
			OwnerID:  identity.UserID,
			ClientID: input.ClientID,
			Number:   input.Number,
			Lines:    lines,
			TaxRate:  input.TaxRate,
			Status:   models.InvoiceStatusDraft,
			IssuedAt: time.Now(),
			DueAt:    dueAt,
		}
		if err := invoices.Create(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toInvoiceDTO(record))
	}
}

func handleUpdateInvoiceStatus(invoices repository.InvoiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input invoiceStatusInput
		if !decodeBody(w, r, &input) {
			return
		}
		if !validInvoiceStatus(input.Status) {
			writeError(w, http.StatusBadRequest, "invalid invoice status")
			return
		}

		record, err := invoices.UpdateStatus(r.Context(), identity.UserID, chi.URLParam(r, "id"), input.Status)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInvoiceDTO(record))
	}
}

func handleDeleteInvoice(invoices repository.InvoiceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		if err := invoices.Delete(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
			writeRepoError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
