package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from HyperTool",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		hyperClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		hyperClient.Logout(cmd.Context())
		fmt.Println("Logged out successfully")
		return nil
	},
}
