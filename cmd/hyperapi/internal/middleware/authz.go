package middleware

import (
	"net/http"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
)

// RequireRole guards a route subtree behind an exact role match. Roles are
// flat tags; a superadmin is not a superset of an admin.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			if identity.Role != role {
				writeJSONError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
