package server

import (
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

// MountProjectRoutes registers the project endpoints under /api/projects.
func MountProjectRoutes(r chi.Router, projects repository.ProjectRepository, clients repository.ClientRepository) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", handleListProjects(projects))
		r.Post("/", handleCreateProject(projects, clients))
		r.Delete("/{id}", handleDeleteProject(projects))
	})
}

func handleListProjects(projects repository.ProjectRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())
		filter := parseListFilter(r)

		records, total, err := projects.List(r.Context(), identity.UserID, filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]projectDTO, 0, len(records))
		for i := range records {
			items = append(items, toProjectDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleCreateProject(projects repository.ProjectRepository, clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input struct {
			ClientID    string `json:"client_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if !decodeBody(w, r, &input) {
			return
		}
		if input.ClientID == "" || input.Name == "" {
			writeError(w, http.StatusBadRequest, "client_id and name are required")
			return
		}
		if _, err := clients.GetByID(r.Context(), identity.UserID, input.ClientID); err != nil {
			writeRepoError(w, r, err)
			return
		}

		record := &models.Project{
			ID:       bunx.NewUUIDv7(),
			OwnerID:  identity.UserID,
			ClientID: input.ClientID,
			Name:     input.Name,
			Notes:    input.Description,
			Status:   "active",
		}
		if err := projects.Create(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toProjectDTO(record))
	}
}

func handleDeleteProject(projects repository.ProjectRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		if err := projects.Delete(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
			writeRepoError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// MountExpenseRoutes registers the expense endpoints under /api/expenses.
func MountExpenseRoutes(r chi.Router, expenses repository.ExpenseRepository) {
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", handleListExpenses(expenses))
		r.Post("/", handleCreateExpense(expenses))
		r.Delete("/{id}", handleDeleteExpense(expenses))
	})
}

func handleListExpenses(expenses repository.ExpenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())
		filter := parseListFilter(r)

		records, total, err := expenses.List(r.Context(), identity.UserID, filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]expenseDTO, 0, len(records))
		for i := range records {
			items = append(items, toExpenseDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleCreateExpense(expenses repository.ExpenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input struct {
			ProjectID  string    `json:"project_id"`
			Category   string    `json:"category"`
			Amount     float64   `json:"amount"`
			Note       string    `json:"note"`
			IncurredAt time.Time `json:"incurred_at"`
		}
		if !decodeBody(w, r, &input) {
			return
		}
		if input.Category == "" {
			writeError(w, http.StatusBadRequest, "category is required")
			return
		}
		if input.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "amount must be positive")
			return
		}

		var projectID *string
		if input.ProjectID != "" {
			projectID = &input.ProjectID
		}
		incurredAt := input.IncurredAt
		if incurredAt.IsZero() {
			incurredAt = time.Now()
		}

		record := &models.Expense{
			ID:          bunx.NewUUIDv7(),
			OwnerID:     identity.UserID,
			ProjectID:   projectID,
			Category:    input.Category,
			AmountCents: int(math.Round(input.Amount * 100)),
			Note:        input.Note,
			IncurredAt:  incurredAt,
		}
		if err := expenses.Create(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toExpenseDTO(record))
	}
}

func handleDeleteExpense(expenses repository.ExpenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		if err := expenses.Delete(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
			writeRepoError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// MountFollowUpRoutes registers the follow-up endpoints under /api/followups.
func MountFollowUpRoutes(r chi.Router, followUps repository.FollowUpRepository, clients repository.ClientRepository) {
	r.Route("/followups", func(r chi.Router) {
		r.Get("/", handleListFollowUps(followUps))
		r.Post("/", handleCreateFollowUp(followUps, clients))
		r.Put("/{id}/done", handleCompleteFollowUp(followUps))
	})
}

func handleListFollowUps(followUps repository.FollowUpRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())
		filter := parseListFilter(r)

		records, total, err := followUps.List(r.Context(), identity.UserID, filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]followUpDTO, 0, len(records))
		for i := range records {
			items = append(items, toFollowUpDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleCreateFollowUp(followUps repository.FollowUpRepository, clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input struct {
			ClientID string    `json:"client_id"`
			Note     string    `json:"note"`
			DueAt    time.Time `json:"due_at"`
		}
		if !decodeBody(w, r, &input) {
			return
		}
		if input.ClientID == "" || input.Note == "" {
			writeError(w, http.StatusBadRequest, "client_id and note are required")
			return
		}
		if _, err := clients.GetByID(r.Context(), identity.UserID, input.ClientID); err != nil {
			writeRepoError(w, r, err)
			return
		}

		record := &models.FollowUp{
			ID:       bunx.NewUUIDv7(),
			OwnerID:  identity.UserID,
			ClientID: input.ClientID,
			Note:     input.Note,
			DueAt:    input.DueAt,
		}
		if err := followUps.Create(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toFollowUpDTO(record))
	}
}

func handleCompleteFollowUp(followUps repository.FollowUpRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		record, err := followUps.MarkDone(r.Context(), identity.UserID, chi.URLParam(r, "id"))
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toFollowUpDTO(record))
	}
}
