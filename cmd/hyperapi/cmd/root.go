package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperapi/cmd/users"
	"github.com/hypertool/hypertool/cmd/hyperapi/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hyperapi",
	Short: "HyperTool API server",
	Long: `HyperTool API server provides authentication and resource endpoints for
the HyperTool invoicing and CRM clients.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(users.UsersCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
