package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with HyperTool",
	Long: `Authenticates with the HyperTool server using email and password.

Credentials are persisted under ~/.hypertool so subsequent commands run
authenticated until you log out or the session expires.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email, password := loginEmail, loginPassword
		if email == "" || password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--email and --password are required in non-interactive mode")
			}
			var err error
			if email == "" {
				email, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return err
				}
			}
		}

		hyperClient, err := cfg.ClientProvider.SDKClient()
		if err != nil {
			return err
		}

		snap, err := hyperClient.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", snap.Profile.DisplayName(), snap.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
