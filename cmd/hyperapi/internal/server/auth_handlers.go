package server

import (
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user"`
}

// profileRecord is the user shape shared by login and whoami. "_id" is the
// key the web client's profile shape has always used.
func profileRecord(id, email, name, role string) map[string]any {
	return map[string]any{
		"_id":   id,
		"email": email,
		"name":  name,
		"role":  role,
	}
}

// HandleLogin verifies email/password credentials and answers with a signed
// access token. Invalid email and invalid password are indistinguishable on
// the wire.
func HandleLogin(users repository.UserRepository, issuer *auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		user, err := users.GetByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "invalid email or password")
				return
			}
			log.Printf("error loading account for login: %v", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		if user.Disabled() {
			writeError(w, http.StatusUnauthorized, "account disabled")
			return
		}

		token, err := issuer.Issue(user.ID, user.Role)
		if err != nil {
			log.Printf("error issuing token for %s: %v", user.ID, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := users.UpdateLastLogin(r.Context(), user.ID); err != nil {
			// Login still succeeds; the timestamp is bookkeeping.
			log.Printf("error recording last login for %s: %v", user.ID, err)
		}

		writeJSON(w, http.StatusOK, loginResponse{
			Token: token,
			User:  profileRecord(user.ID, user.Email, user.Name, user.Role),
		})
	}
}

// HandleWhoami returns the backend's view of the authenticated user.
func HandleWhoami(users repository.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		user, err := users.GetByID(r.Context(), identity.UserID)
		if err != nil {
			writeRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profileRecord(user.ID, user.Email, user.Name, user.Role))
	}
}

// HandleLogout acknowledges a logout. Tokens are stateless; invalidation is
// the client discarding its credential, bounded by the token TTL.
func HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}
