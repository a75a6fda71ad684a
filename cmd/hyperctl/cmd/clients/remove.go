package clients

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <client-id>",
	Short: "Delete a client record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		if err := hyperClient.DeleteClient(cobraCmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		fmt.Printf("Deleted client %s\n", args[0])
		return nil
	},
}
