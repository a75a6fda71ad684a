package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

// identityCacheTTL bounds how long a verified token skips re-verification.
// Disabling an account takes effect within this window at the latest.
const identityCacheTTL = time.Minute

const defaultIdentityCacheSize = 1024

// AuthnDependencies bundles collaborators required by the authentication middleware.
type AuthnDependencies struct {
	Issuer *auth.TokenIssuer
	Users  repository.UserRepository
}

// NewAuthnMiddleware verifies the bearer token on every request, checks that
// the account still exists and is not disabled, and attaches the caller's
// identity to the request context. Verified tokens are cached so repeated
// requests skip signature verification and the account lookup.
func NewAuthnMiddleware(deps AuthnDependencies, cacheSize int) (func(http.Handler) http.Handler, error) {
	if deps.Issuer == nil {
		return nil, errors.New("authn middleware requires a token issuer")
	}
	if deps.Users == nil {
		return nil, errors.New("authn middleware requires a user repository")
	}
	if cacheSize <= 0 {
		cacheSize = defaultIdentityCacheSize
	}

	cache := expirable.NewLRU[string, auth.Identity](cacheSize, nil, identityCacheTTL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			if identity, ok := cache.Get(token); ok {
				next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
				return
			}

			claims, err := deps.Issuer.Verify(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			user, err := deps.Users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					writeJSONError(w, http.StatusUnauthorized, "unknown account")
					return
				}
				log.Printf("error loading account %s for %s %s: %v", claims.UserID, r.Method, r.URL.Path, err)
				writeJSONError(w, http.StatusInternalServerError, "authentication error")
				return
			}
			if user.Disabled() {
				writeJSONError(w, http.StatusUnauthorized, "account disabled")
				return
			}

			identity := auth.Identity{UserID: user.ID, Role: user.Role}
			cache.Add(token, identity)

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}, nil
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

// writeJSONError writes a {"message": ...} error body. Clients surface this
// message directly, so it must stay human-readable.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
