package sdk

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDecodeTokenClaims(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"userId": "u1", "role": "admin"})

	claims, err := decodeTokenClaims(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("expected userId u1, got %q", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
}

func TestDecodeTokenClaimsIgnoresSignature(t *testing.T) {
	// The payload is trusted without verification; a token signed with an
	// unknown key still decodes. The backend's 401 remains the real check.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "u2", "role": "superadmin"})
	signed, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := decodeTokenClaims(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Role != "superadmin" {
		t.Fatalf("expected role superadmin, got %q", claims.Role)
	}
}

func TestDecodeTokenClaimsRejectsMissingClaims(t *testing.T) {
	missingRole := signTestToken(t, jwt.MapClaims{"userId": "u1"})
	if _, err := decodeTokenClaims(missingRole); err == nil {
		t.Fatal("expected error for missing role claim")
	}

	missingUser := signTestToken(t, jwt.MapClaims{"role": "admin"})
	if _, err := decodeTokenClaims(missingUser); err == nil {
		t.Fatal("expected error for missing userId claim")
	}
}

func TestDecodeTokenClaimsRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b", "not.a.token"} {
		if _, err := decodeTokenClaims(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}
