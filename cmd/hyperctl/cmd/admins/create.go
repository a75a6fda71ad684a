package admins

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var createInput sdk.CreateAdminInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision a tenant admin account",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		admin, err := hyperClient.CreateAdmin(cobraCmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		pterm.Success.Printf("Created admin %s (%s)\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Account email (required)")
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Display name")
	createCmd.Flags().StringVar(&createInput.Password, "password", "", "Initial password (required)")
	createCmd.Flags().StringVar(&createInput.PlanID, "plan", "", "Subscription plan ID")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")
}
