package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client provides a high-level interface to the HyperTool REST API.
// It attaches the session's bearer credential to every outbound request,
// classifies failures into the Error taxonomy, and invalidates the session
// when the backend answers 401.
type Client struct {
	baseURL   string
	http      *http.Client
	session   *Session
	onExpired func()
}

// ClientOptions configures client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	// OnSessionExpired runs after a 401 has cleared the session, so the host
	// application can redirect to its login entry point.
	OnSessionExpired func()
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithSessionExpiredHandler registers a hook invoked after 401-triggered
// session invalidation.
func WithSessionExpiredHandler(fn func()) ClientOption {
	return func(opts *ClientOptions) {
		opts.OnSessionExpired = fn
	}
}

// NewClient creates a client bound to the API server at baseURL and the
// given session. An http.Client with a sensible timeout is created when one
// is not supplied.
func NewClient(baseURL string, session *Session, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      opts.HTTPClient,
		session:   session,
		onExpired: opts.OnSessionExpired,
	}
}

// Session returns the session the client was constructed with.
func (c *Client) Session() *Session {
	return c.session
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates with email and password. On success the returned token
// payload is decoded (unverified) to extract the user ID and role, and the
// session is replaced and persisted. A token that cannot be decoded fails the
// whole attempt: no partial session is created.
func (c *Client) Login(ctx context.Context, email, password string) (Snapshot, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return Snapshot{}, err
	}
	if resp.Token == "" {
		return Snapshot{}, fmt.Errorf("login response missing token")
	}

	claims, err := decodeTokenClaims(resp.Token)
	if err != nil {
		return Snapshot{}, fmt.Errorf("login failed: %w", err)
	}

	profile := Profile{"_id": claims.UserID, "email": email}
	c.session.Login(profile, resp.Token, Role(claims.Role))
	return c.session.Snapshot(), nil
}

// Logout clears the session. The backend is notified best-effort; a failed
// call does not keep the local session alive.
func (c *Client) Logout(ctx context.Context) {
	if c.session.Authenticated() {
		_ = c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	}
	c.session.Logout()
}

// Whoami fetches the backend's view of the current user.
func (c *Client) Whoami(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := c.get(ctx, "/api/auth/whoami", nil, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Upload sends a file as multipart/form-data. The bearer credential rule is
// the same as for every other request; the Content-Type header is left to the
// multipart writer so the transport controls the boundary.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, fields map[string]string, out any) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy file contents: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalise multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out)
}

// --- request plumbing ---

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs a JSON request against the API and decodes the response into
// out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send attaches the bearer credential when one is held, executes the request,
// and classifies the response. A 401 clears the session before the error is
// returned; every other failure leaves the session untouched.
func (c *Client) send(req *http.Request, out any) error {
	if snap := c.session.Snapshot(); snap.Credential != "" {
		req.Header.Set("Authorization", "Bearer "+snap.Credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetworkError, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := classifyStatus(resp.StatusCode, readErrorMessage(resp.Body))
		if apiErr.Kind == KindSessionExpired {
			c.session.Logout()
			if c.onExpired != nil {
				c.onExpired()
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// readErrorMessage pulls the backend-provided message out of an error body,
// returning "" when the body is not the expected JSON shape.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64*1024))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
