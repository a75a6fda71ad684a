package sdk

import (
	"encoding/json"
	"errors"
)

// Role is the coarse authorization tag carried by a session. Roles are flat:
// a superadmin does not implicitly satisfy an admin requirement.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Profile is the loosely-typed record describing the signed-in user.
// The backend owns its shape; the client only relies on a couple of
// well-known keys for display.
type Profile map[string]any

// ID returns the user identifier, or "" when absent.
func (p Profile) ID() string {
	id, _ := p["_id"].(string)
	return id
}

// DisplayName returns the best available display name for the user.
func (p Profile) DisplayName() string {
	if name, ok := p["name"].(string); ok && name != "" {
		return name
	}
	email, _ := p["email"].(string)
	return email
}

// Credentials is the persisted form of a session. The JSON field names are
// the durable storage keys: token, role, user. The user record is kept as raw
// JSON so a malformed profile never poisons the token and role next to it.
type Credentials struct {
	Token string          `json:"token"`
	Role  Role            `json:"role,omitempty"`
	User  json.RawMessage `json:"user,omitempty"`
}

// ErrNotLoggedIn is returned by CredentialStore.LoadCredentials when no
// credentials have been persisted.
var ErrNotLoggedIn = errors.New("not logged in")

// CredentialStore persists credentials across process restarts.
// Implementations live with the host application (the CLI stores a JSON file
// under the user's home directory); the SDK only depends on this contract.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
