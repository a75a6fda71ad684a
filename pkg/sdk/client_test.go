package sdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hypertool/hypertool/pkg/sdk"
)

func newLoggedInSession(t *testing.T, token string, role sdk.Role) *sdk.Session {
	t.Helper()
	session := sdk.NewSession(&memoryStore{})
	session.Restore()
	session.Login(sdk.Profile{"_id": "u1"}, token, role)
	return session
}

func TestClientAttachesBearerCredential(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(sdk.Page[sdk.ClientRecord]{})
	}))
	defer server.Close()

	session := newLoggedInSession(t, "tok-abc", sdk.RoleAdmin)
	client := sdk.NewClient(server.URL, session)

	if _, err := client.ListClients(context.Background(), sdk.ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientOmitsHeaderWhenAnonymous(t *testing.T) {
	var sawAuthHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(sdk.Page[sdk.ClientRecord]{})
	}))
	defer server.Close()

	session := sdk.NewSession(&memoryStore{})
	session.Restore()
	client := sdk.NewClient(server.URL, session)

	if _, err := client.ListClients(context.Background(), sdk.ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawAuthHeader {
		t.Fatal("anonymous request must not carry an Authorization header")
	}
}

func TestClientClassifiesStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   sdk.ErrorKind
	}{
		{http.StatusUnauthorized, sdk.KindSessionExpired},
		{http.StatusForbidden, sdk.KindForbidden},
		{http.StatusNotFound, sdk.KindNotFound},
		{http.StatusTooManyRequests, sdk.KindRateLimited},
		{http.StatusInternalServerError, sdk.KindServerError},
		{http.StatusBadGateway, sdk.KindServerError},
		{http.StatusTeapot, sdk.KindRequestFailed},
		{http.StatusBadRequest, sdk.KindRequestFailed},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		session := newLoggedInSession(t, "tok", sdk.RoleAdmin)
		client := sdk.NewClient(server.URL, session)

		_, err := client.ListClients(context.Background(), sdk.ListOptions{})
		if !sdk.IsKind(err, tt.want) {
			t.Fatalf("status %d: expected %v, got %v", tt.status, tt.want, err)
		}
		server.Close()
	}
}

func TestClientCarriesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "name already taken"})
	}))
	defer server.Close()

	session := newLoggedInSession(t, "tok", sdk.RoleAdmin)
	client := sdk.NewClient(server.URL, session)

	_, err := client.CreateClient(context.Background(), sdk.CreateClientInput{Name: "Acme"})
	var apiErr *sdk.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected API error, got %v", err)
	}
	if apiErr.Message != "name already taken" {
		t.Fatalf("expected backend message, got %q", apiErr.Message)
	}

	// Without a JSON message, the status text is used.
	server2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text", http.StatusBadRequest)
	}))
	defer server2.Close()

	client2 := sdk.NewClient(server2.URL, newLoggedInSession(t, "tok", sdk.RoleAdmin))
	_, err = client2.CreateClient(context.Background(), sdk.CreateClientInput{Name: "Acme"})
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected API error, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("expected status text fallback, got %q", apiErr.Message)
	}
}

func TestUnauthorizedResponseInvalidatesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session := newLoggedInSession(t, "tok-old", sdk.RoleAdmin)

	expired := false
	client := sdk.NewClient(server.URL, session, sdk.WithSessionExpiredHandler(func() {
		expired = true
	}))

	_, err := client.ListClients(context.Background(), sdk.ListOptions{})
	if !sdk.IsKind(err, sdk.KindSessionExpired) {
		t.Fatalf("expected session expired, got %v", err)
	}
	if session.Authenticated() {
		t.Fatal("session must be cleared after a 401")
	}
	if !expired {
		t.Fatal("expiry handler must run")
	}
}

func TestForbiddenLeavesSessionIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	session := newLoggedInSession(t, "tok", sdk.RoleAdmin)
	client := sdk.NewClient(server.URL, session)

	_, err := client.ListAdmins(context.Background(), sdk.ListOptions{})
	if !sdk.IsKind(err, sdk.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if !session.Authenticated() {
		t.Fatal("a 403 must not clear the session")
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the request never reaches a server

	session := newLoggedInSession(t, "tok", sdk.RoleAdmin)
	client := sdk.NewClient(server.URL, session)

	_, err := client.ListClients(context.Background(), sdk.ListOptions{})
	if !sdk.IsKind(err, sdk.KindNetworkError) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestUploadLetsTransportSetContentType(t *testing.T) {
	var contentType, auth, fileBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		auth = r.Header.Get("Authorization")
		file, _, err := r.FormFile("logo")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		body, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fileBody = string(body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	session := newLoggedInSession(t, "tok-up", sdk.RoleAdmin)
	client := sdk.NewClient(server.URL, session)

	err := client.Upload(context.Background(), "/api/company/logo", "logo", "logo.png",
		strings.NewReader("png-bytes"), map[string]string{"kind": "logo"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		t.Fatalf("expected multipart content type with boundary, got %q", contentType)
	}
	if auth != "Bearer tok-up" {
		t.Fatalf("expected bearer header on upload, got %q", auth)
	}
	if fileBody != "png-bytes" {
		t.Fatalf("expected file body to round-trip, got %q", fileBody)
	}
}

func TestLoginEndToEnd(t *testing.T) {
	tokenClaims := jwt.MapClaims{"userId": "u1", "role": "admin"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	signed, err := token.SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": signed})
	}))
	defer server.Close()

	store := &memoryStore{}
	session := sdk.NewSession(store)
	session.Restore()
	client := sdk.NewClient(server.URL, session)

	snap, err := client.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Credential != signed || snap.Role != sdk.RoleAdmin {
		t.Fatalf("session not populated from login: %#v", snap)
	}
	if snap.Profile.ID() != "u1" || snap.Profile["email"] != "a@b.com" {
		t.Fatalf("profile mismatch: %#v", snap.Profile)
	}
	if store.creds == nil || store.creds.Token != signed {
		t.Fatal("login must persist the credentials")
	}

	// A route with no role requirement renders; a superadmin-only route
	// redirects to the default landing, not to login.
	if got := sdk.EvaluateRoute(snap, ""); got != sdk.DecisionRender {
		t.Fatalf("expected render, got %s", got)
	}
	if got := sdk.EvaluateRoute(snap, sdk.RoleSuperadmin); got != sdk.DecisionRedirectHome {
		t.Fatalf("expected redirect home, got %s", got)
	}
}

func TestLoginWithUndecodableTokenCreatesNoSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "not-a-real-token"})
	}))
	defer server.Close()

	session := sdk.NewSession(&memoryStore{})
	session.Restore()
	client := sdk.NewClient(server.URL, session)

	if _, err := client.Login(context.Background(), "a@b.com", "x"); err == nil {
		t.Fatal("expected login to fail on an undecodable token")
	}
	if session.Authenticated() {
		t.Fatal("no partial session may be created on a failed login")
	}
}
