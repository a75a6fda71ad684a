package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.ClientProvider.Session()
		if err != nil {
			return err
		}

		snap := session.Snapshot()
		if !snap.Authenticated() {
			return fmt.Errorf("not logged in")
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printf("Logged in as: %s\n", snap.Profile.DisplayName())
		pterm.Info.Printf("Role: %s\n", snap.Role)

		// Cross-check the stored credential against the server.
		hyperClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}
		profile, err := hyperClient.Whoami(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to verify session with server: %w", err)
		}
		pterm.Success.Printf("Server confirms session for %s\n", profile.DisplayName())
		return nil
	},
}
