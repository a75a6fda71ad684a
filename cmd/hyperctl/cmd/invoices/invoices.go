package invoices

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
	"github.com/hypertool/hypertool/pkg/sdk"
)

// InvoicesCmd is the parent command for invoice operations
var InvoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	Long:  `Commands for listing, creating, and updating invoices.`,
}

func init() {
	InvoicesCmd.AddCommand(listCmd)
	InvoicesCmd.AddCommand(getCmd)
	InvoicesCmd.AddCommand(createCmd)
	InvoicesCmd.AddCommand(setStatusCmd)
}

func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	if err := cfg.ClientProvider.Authorize(""); err != nil {
		return nil, err
	}
	return cfg.ClientProvider.SDKClient()
}
