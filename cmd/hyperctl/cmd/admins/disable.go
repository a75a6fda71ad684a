package admins

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var disableEnable bool

var disableCmd = &cobra.Command{
	Use:   "disable <admin-id>",
	Short: "Disable (or re-enable) a tenant admin account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		admin, err := hyperClient.SetAdminDisabled(cobraCmd.Context(), args[0], !disableEnable)
		if err != nil {
			return fmt.Errorf("failed to update admin: %w", err)
		}

		if admin.Disabled {
			pterm.Success.Printf("Disabled admin %s\n", admin.Email)
		} else {
			pterm.Success.Printf("Re-enabled admin %s\n", admin.Email)
		}
		return nil
	},
}

func init() {
	disableCmd.Flags().BoolVar(&disableEnable, "undo", false, "Re-enable the account instead of disabling it")
}
