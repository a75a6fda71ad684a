package clients

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/cmd/hyperctl/internal/config"
	"github.com/hypertool/hypertool/pkg/sdk"
)

// ClientsCmd is the parent command for client record operations
var ClientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage client records",
	Long:  `Commands for listing, creating, and removing the business clients you invoice.`,
}

func init() {
	ClientsCmd.AddCommand(listCmd)
	ClientsCmd.AddCommand(getCmd)
	ClientsCmd.AddCommand(createCmd)
	ClientsCmd.AddCommand(removeCmd)
}

// sdkClient authorizes the session for regular admin access and returns the
// shared SDK client.
func sdkClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	if err := cfg.ClientProvider.Authorize(""); err != nil {
		return nil, err
	}
	return cfg.ClientProvider.SDKClient()
}
