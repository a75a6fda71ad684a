package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies API failures into the categories callers branch on.
type ErrorKind int

const (
	// KindRequestFailed covers non-2xx responses with no more specific kind.
	KindRequestFailed ErrorKind = iota
	// KindSessionExpired is raised on HTTP 401. It is the only kind that
	// mutates the session: the client clears it before returning the error.
	KindSessionExpired
	// KindForbidden is raised on HTTP 403. The session stays valid; the
	// specific action is not permitted.
	KindForbidden
	// KindNotFound is raised on HTTP 404.
	KindNotFound
	// KindRateLimited is raised on HTTP 429.
	KindRateLimited
	// KindServerError is raised on any 5xx status.
	KindServerError
	// KindNetworkError means the request never reached the server.
	KindNetworkError
)

func (k ErrorKind) String() string {
	switch k {
	case KindSessionExpired:
		return "session expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	case KindServerError:
		return "server error"
	case KindNetworkError:
		return "network error"
	case KindRequestFailed:
		return "request failed"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by every API call. Callers branch on
// Kind via errors.As or the KindOf helper.
type Error struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 for network errors
	Message string // backend-provided message or HTTP status text
	Err     error  // underlying transport error, when any
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether retrying the request could possibly succeed
// without re-authenticating. Auth failures are never retryable.
func (e *Error) Retryable() bool {
	return e.Kind != KindSessionExpired && e.Kind != KindForbidden
}

// KindOf extracts the ErrorKind from err. The second return is false when err
// is not an API error.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an API error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// classifyStatus maps a non-2xx HTTP status to an API error. message is the
// backend-provided message when the body carried one; when empty the HTTP
// status text is used.
func classifyStatus(status int, message string) *Error {
	if message == "" {
		message = http.StatusText(status)
	}
	kind := KindRequestFailed
	switch {
	case status == http.StatusUnauthorized:
		kind = KindSessionExpired
	case status == http.StatusForbidden:
		kind = KindForbidden
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	case status >= 500:
		kind = KindServerError
	}
	return &Error{Kind: kind, Status: status, Message: message}
}
