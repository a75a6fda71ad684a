package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/cmd/admins"
	"github.com/hypertool/hypertool/cmd/hyperctl/cmd/auth"
	"github.com/hypertool/hypertool/cmd/hyperctl/cmd/clients"
	"github.com/hypertool/hypertool/cmd/hyperctl/cmd/invoices"
	"github.com/hypertool/hypertool/cmd/hyperctl/internal/client"
	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "hyperctl",
	Short: "HyperTool CLI - invoicing and client management",
	Long: `hyperctl is the command-line interface for HyperTool, a small-business
invoicing and client management service. Use it to log in, manage clients,
and issue invoices.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("HYPERTOOL_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}
		if env := os.Getenv("HYPERTOOL_SERVER"); env != "" && !cmd.Flags().Changed("server") {
			serverURL = env
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			ClientProvider: client.NewProvider(serverURL),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "HyperTool API server URL (also set via HYPERTOOL_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via HYPERTOOL_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(clients.ClientsCmd)
	rootCmd.AddCommand(invoices.InvoicesCmd)
	rootCmd.AddCommand(admins.AdminsCmd)
}
