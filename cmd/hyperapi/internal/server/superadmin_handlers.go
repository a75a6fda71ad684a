package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

// RoleAdmin and RoleSuperadmin are the two flat role tags the platform knows.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// MountSuperadminRoutes registers the platform-operator endpoints under
// /api/superadmin. The caller must wrap them in RequireRole(RoleSuperadmin).
func MountSuperadminRoutes(r chi.Router, users repository.UserRepository, plans repository.PlanRepository) {
	r.Route("/superadmin", func(r chi.Router) {
		r.Get("/admins", handleListAdmins(users))
		r.Post("/admins", handleCreateAdmin(users))
		r.Put("/admins/{id}/disabled", handleSetAdminDisabled(users))
		r.Get("/plans", handleListPlans(plans))
		r.Post("/plans", handleCreatePlan(plans))
	})
}

func handleListAdmins(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseListFilter(r)

		records, total, err := users.ListByRole(r.Context(), RoleAdmin, filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]adminDTO, 0, len(records))
		for i := range records {
			items = append(items, toAdminDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleCreateAdmin(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Email    string `json:"email"`
			Name     string `json:"name"`
			Password string `json:"password"`
			PlanID   string `json:"plan_id"`
		}
		if !decodeBody(w, r, &input) {
			return
		}
		if input.Email == "" || input.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("error hashing password: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		var planID *string
		if input.PlanID != "" {
			planID = &input.PlanID
		}

		record := &models.User{
			ID:           bunx.NewUUIDv7(),
			Email:        input.Email,
			Name:         input.Name,
			Role:         RoleAdmin,
			PasswordHash: string(hash),
			PlanID:       planID,
		}
		if err := users.Create(r.Context(), record); err != nil {
			if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
				writeError(w, http.StatusConflict, "email already registered")
				return
			}
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAdminDTO(record))
	}
}

func handleSetAdminDisabled(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Disabled bool `json:"disabled"`
		}
		if !decodeBody(w, r, &input) {
			return
		}

		record, err := users.SetDisabled(r.Context(), chi.URLParam(r, "id"), input.Disabled)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdminDTO(record))
	}
}

func handleListPlans(plans repository.PlanRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseListFilter(r)

		records, total, err := plans.List(r.Context(), filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]planDTO, 0, len(records))
		for i := range records {
			items = append(items, toPlanDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleCreatePlan(plans repository.PlanRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Name       string `json:"name"`
			PriceCents int    `json:"price_cents"`
			MaxClients int    `json:"max_clients"`
		}
		if !decodeBody(w, r, &input) {
			return
		}
		if input.Name == "" {
			writeError(w, http.StatusBadRequest, "plan name is required")
			return
		}

		record := &models.Plan{
			ID:         bunx.NewUUIDv7(),
			Name:       input.Name,
			PriceCents: input.PriceCents,
			MaxClients: input.MaxClients,
		}
		if err := plans.Create(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPlanDTO(record))
	}
}
