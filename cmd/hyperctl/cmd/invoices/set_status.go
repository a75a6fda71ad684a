package invoices

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var setStatusCmd = &cobra.Command{
	Use:   "set-status <invoice-id> <draft|sent|paid|overdue>",
	Short: "Move an invoice to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		status := sdk.InvoiceStatus(args[1])
		switch status {
		case sdk.InvoiceDraft, sdk.InvoiceSent, sdk.InvoicePaid, sdk.InvoiceOverdue:
		default:
			return fmt.Errorf("unknown status %q", args[1])
		}

		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		invoice, err := hyperClient.UpdateInvoiceStatus(cobraCmd.Context(), args[0], status)
		if err != nil {
			return fmt.Errorf("failed to update invoice status: %w", err)
		}

		pterm.Success.Printf("Invoice %s is now %s\n", invoice.Number, invoice.Status)
		return nil
	},
}
