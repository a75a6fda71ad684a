package admins

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
	"github.com/hypertool/hypertool/pkg/sdk"
)

// AdminsCmd is the parent command for platform operator actions. Every
// subcommand requires the superadmin role; a regular admin is stopped
// locally before any request is made.
var AdminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage tenant admin accounts (superadmin only)",
	Long:  `Commands for provisioning tenant admins and subscription plans.`,
}

func init() {
	AdminsCmd.AddCommand(listCmd)
	AdminsCmd.AddCommand(createCmd)
	AdminsCmd.AddCommand(disableCmd)
	AdminsCmd.AddCommand(plansCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	if err := cfg.ClientProvider.Authorize(sdk.RoleSuperadmin); err != nil {
		return nil, err
	}
	return cfg.ClientProvider.SDKClient()
}
