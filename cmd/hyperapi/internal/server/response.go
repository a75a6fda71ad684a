package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response body: %v", err)
	}
}

// writeError writes a {"message": ...} error body. Clients surface the
// message to users, so it must stay human-readable.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeRepoError maps a repository failure onto the wire: missing records
// become 404, everything else is a logged 500.
func writeRepoError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	log.Printf("storage error for %s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeBody decodes the JSON request body into v, answering 400 itself on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// parseListFilter reads page, page_size, and search query parameters.
func parseListFilter(r *http.Request) repository.ListFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	return repository.ListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   q.Get("search"),
	}
}

// pageResponse is the envelope every list endpoint returns.
type pageResponse[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func newPageResponse[T any](items []T, total int, filter repository.ListFilter) pageResponse[T] {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: filter.Limit(),
	}
}
