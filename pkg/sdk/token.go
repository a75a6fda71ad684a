package sdk

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/mapstructure"
)

// tokenClaims is the subset of the token payload the client reads locally.
type tokenClaims struct {
	UserID string `mapstructure:"userId"`
	Role   string `mapstructure:"role"`
}

// decodeTokenClaims base64url-decodes the payload segment of a three-segment
// signed token and extracts the user ID and role.
//
// The signature is deliberately NOT verified: the claims are used only for
// display and authorization hinting on this side of the wire. The backend's
// own 401 responses remain the authoritative authorization check for every
// sensitive action.
func decodeTokenClaims(token string) (tokenClaims, error) {
	var tc tokenClaims

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tc, fmt.Errorf("decode token payload: %w", err)
	}

	if err := mapstructure.Decode(map[string]any(claims), &tc); err != nil {
		return tc, fmt.Errorf("extract token claims: %w", err)
	}
	if tc.UserID == "" {
		return tc, fmt.Errorf("token payload missing userId claim")
	}
	if tc.Role == "" {
		return tc, fmt.Errorf("token payload missing role claim")
	}
	return tc, nil
}
