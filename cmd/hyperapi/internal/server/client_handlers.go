package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/bunx"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

type clientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
}

// MountClientRoutes registers the client CRUD endpoints under /api/clients.
func MountClientRoutes(r chi.Router, clients repository.ClientRepository) {
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", handleListClients(clients))
		r.Post("/", handleCreateClient(clients))
		r.Get("/{id}", handleGetClient(clients))
		r.Put("/{id}", handleUpdateClient(clients))
		r.Delete("/{id}", handleDeleteClient(clients))
	})
}

func handleListClients(clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())
		filter := parseListFilter(r)

		records, total, err := clients.List(r.Context(), identity.UserID, filter)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}

		items := make([]clientDTO, 0, len(records))
		for i := range records {
			items = append(items, toClientDTO(&records[i]))
		}
		writeJSON(w, http.StatusOK, newPageResponse(items, total, filter))
	}
}

func handleGetClient(clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		record, err := clients.GetByID(r.Context(), identity.UserID, chi.URLParam(r, "id"))
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientDTO(record))
	}
}

func handleCreateClient(clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input clientInput
		if !decodeBody(w, r, &input) {
			return
		}
		if input.Name == "" {
			writeError(w, http.StatusBadRequest, "client name is required")
			return
		}

		record := &models.Client{
			ID:      bunx.NewUUIDv7(),
			OwnerID: identity.UserID,
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Company: input.Company,
			Address: input.Address,
		}
		if err := clients.Create(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toClientDTO(record))
	}
}

func handleUpdateClient(clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		var input clientInput
		if !decodeBody(w, r, &input) {
			return
		}
		if input.Name == "" {
			writeError(w, http.StatusBadRequest, "client name is required")
			return
		}

		record := &models.Client{
			ID:      chi.URLParam(r, "id"),
			OwnerID: identity.UserID,
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Company: input.Company,
			Address: input.Address,
		}
		if err := clients.Update(r.Context(), record); err != nil {
			writeRepoError(w, r, err)
			return
		}

		updated, err := clients.GetByID(r.Context(), identity.UserID, record.ID)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientDTO(updated))
	}
}

func handleDeleteClient(clients repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := auth.IdentityFromContext(r.Context())

		if err := clients.Delete(r.Context(), identity.UserID, chi.URLParam(r, "id")); err != nil {
			writeRepoError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
