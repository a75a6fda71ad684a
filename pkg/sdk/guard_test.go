package sdk_test

import (
	"testing"

	"github.com/hypertool/hypertool/pkg/sdk"
)

func TestEvaluateRoute(t *testing.T) {
	pending := sdk.Snapshot{Restoration: sdk.RestorationPending}
	anonymous := sdk.Snapshot{Restoration: sdk.RestorationResolved}
	admin := sdk.Snapshot{
		Restoration: sdk.RestorationResolved,
		Credential:  "tok",
		Role:        sdk.RoleAdmin,
	}
	superadmin := sdk.Snapshot{
		Restoration: sdk.RestorationResolved,
		Credential:  "tok",
		Role:        sdk.RoleSuperadmin,
	}

	tests := []struct {
		name     string
		snap     sdk.Snapshot
		required sdk.Role
		want     sdk.Decision
	}{
		{"pending no requirement", pending, "", sdk.DecisionLoading},
		{"pending admin requirement", pending, sdk.RoleAdmin, sdk.DecisionLoading},
		{"pending superadmin requirement", pending, sdk.RoleSuperadmin, sdk.DecisionLoading},
		{"anonymous no requirement", anonymous, "", sdk.DecisionRedirectLogin},
		{"anonymous admin requirement", anonymous, sdk.RoleAdmin, sdk.DecisionRedirectLogin},
		{"admin no requirement", admin, "", sdk.DecisionRender},
		{"admin matching requirement", admin, sdk.RoleAdmin, sdk.DecisionRender},
		{"admin lacking superadmin", admin, sdk.RoleSuperadmin, sdk.DecisionRedirectHome},
		{"superadmin matching requirement", superadmin, sdk.RoleSuperadmin, sdk.DecisionRender},
		// Roles are flat: superadmin does not satisfy an admin requirement.
		{"superadmin lacking admin", superadmin, sdk.RoleAdmin, sdk.DecisionRedirectHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sdk.EvaluateRoute(tt.snap, tt.required)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestUnderPrivilegedIsNeverSentToLogin(t *testing.T) {
	admin := sdk.Snapshot{
		Restoration: sdk.RestorationResolved,
		Credential:  "tok",
		Role:        sdk.RoleAdmin,
	}
	if got := sdk.EvaluateRoute(admin, sdk.RoleSuperadmin); got == sdk.DecisionRedirectLogin {
		t.Fatal("an authenticated caller must not be redirected to login")
	}
}
