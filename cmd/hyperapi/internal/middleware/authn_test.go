package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypertool/hypertool/cmd/hyperapi/internal/auth"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/db/models"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/repository"
)

// stubUserRepo serves canned users and counts lookups so tests can observe
// the identity cache.
type stubUserRepo struct {
	users   map[string]*models.User
	lookups int
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	s.lookups++
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (s *stubUserRepo) Create(context.Context, *models.User) error        { return nil }
func (s *stubUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) Update(context.Context, *models.User) error      { return nil }
func (s *stubUserRepo) UpdateLastLogin(context.Context, string) error   { return nil }
func (s *stubUserRepo) SetDisabled(context.Context, string, bool) (*models.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) ListByRole(context.Context, string, repository.ListFilter) ([]models.User, int, error) {
	return nil, 0, nil
}

func newTestStack(t *testing.T, users *stubUserRepo) (*auth.TokenIssuer, http.Handler) {
	t.Helper()

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	mw, err := NewAuthnMiddleware(AuthnDependencies{Issuer: issuer, Users: users}, 16)
	require.NoError(t, err)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(identity)
	}))
	return issuer, handler
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthnAttachesIdentity(t *testing.T) {
	users := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Email: "a@example.com", Role: "admin"},
	}}
	issuer, handler := newTestStack(t, users)

	token, err := issuer.Issue("u1", "admin")
	require.NoError(t, err)

	rec := doRequest(handler, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var identity auth.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "admin", identity.Role)
}

func TestAuthnCachesVerifiedTokens(t *testing.T) {
	users := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: "admin"},
	}}
	issuer, handler := newTestStack(t, users)

	token, err := issuer.Issue("u1", "admin")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rec := doRequest(handler, token)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 1, users.lookups, "repeat requests with the same token should hit the cache")
}

func TestAuthnRejectsMissingToken(t *testing.T) {
	_, handler := newTestStack(t, &stubUserRepo{})

	rec := doRequest(handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestAuthnRejectsForgedToken(t *testing.T) {
	users := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: "admin"},
	}}
	_, handler := newTestStack(t, users)

	forged, err := auth.NewTokenIssuer("other-secret", time.Hour).Issue("u1", "admin")
	require.NoError(t, err)

	rec := doRequest(handler, forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, users.lookups)
}

func TestAuthnRejectsDisabledAccount(t *testing.T) {
	now := time.Now()
	users := &stubUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Role: "admin", DisabledAt: &now},
	}}
	issuer, handler := newTestStack(t, users)

	token, err := issuer.Issue("u1", "admin")
	require.NoError(t, err)

	rec := doRequest(handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "account disabled")
}

func TestAuthnRejectsUnknownAccount(t *testing.T) {
	issuer, handler := newTestStack(t, &stubUserRepo{users: map[string]*models.User{}})

	token, err := issuer.Issue("ghost", "admin")
	require.NoError(t, err)

	rec := doRequest(handler, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleExactMatch(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := RequireRole("superadmin")(next)

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/superadmin/admins", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: "u1", Role: "superadmin"}))
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/superadmin/admins", nil)
		req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: "u2", Role: "admin"}))
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no identity is unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/superadmin/admins", nil)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
