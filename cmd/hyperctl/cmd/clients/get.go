package clients

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <client-id>",
	Short: "Show a single client record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		record, err := hyperClient.GetClient(cobraCmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get client: %w", err)
		}

		pterm.DefaultSection.Println(record.Name)
		pterm.Info.Printf("ID: %s\n", record.ID)
		pterm.Info.Printf("Email: %s\n", record.Email)
		if record.Phone != "" {
			pterm.Info.Printf("Phone: %s\n", record.Phone)
		}
		if record.Company != "" {
			pterm.Info.Printf("Company: %s\n", record.Company)
		}
		if record.Address != "" {
			pterm.Info.Printf("Address: %s\n", record.Address)
		}
		return nil
	},
}
