package invoices

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <invoice-id>",
	Short: "Show a single invoice with its totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		invoice, err := hyperClient.GetInvoice(cobraCmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		pterm.DefaultSection.Printf("Invoice %s (%s)\n", invoice.Number, invoice.Status)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DESCRIPTION\tQTY\tUNIT PRICE\tAMOUNT")
		for _, line := range invoice.Lines {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n",
				line.Description, line.Quantity, line.UnitPrice, line.Amount())
		}
		w.Flush()

		totals := invoice.Totals()
		fmt.Printf("\nSubtotal: %.2f\n", totals.Subtotal)
		fmt.Printf("Tax (%.1f%%): %.2f\n", invoice.TaxRate, totals.Tax)
		fmt.Printf("Total: %.2f\n", totals.Total)
		return nil
	},
}
