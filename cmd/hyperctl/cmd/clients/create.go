package clients

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var createInput sdk.CreateClientInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client record",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		record, err := hyperClient.CreateClient(cobraCmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		pterm.Success.Printf("Created client %s (%s)\n", record.Name, record.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Client name (required)")
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Contact email")
	createCmd.Flags().StringVar(&createInput.Phone, "phone", "", "Contact phone number")
	createCmd.Flags().StringVar(&createInput.Company, "company", "", "Company name")
	createCmd.Flags().StringVar(&createInput.Address, "address", "", "Billing address")
	_ = createCmd.MarkFlagRequired("name")
}
