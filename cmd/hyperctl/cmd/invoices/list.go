package invoices

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var (
	listSearch string
	listPage   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		page, err := hyperClient.ListInvoices(ctx, sdk.ListOptions{
			Page:   listPage,
			Search: listSearch,
		})
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNUMBER\tCLIENT\tSTATUS\tTOTAL\tDUE")
		for _, invoice := range page.Items {
			totals := invoice.Totals()
			due := "-"
			if !invoice.DueAt.IsZero() {
				due = invoice.DueAt.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n",
				invoice.ID, invoice.Number, invoice.ClientID, invoice.Status, totals.Total, due)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter invoices by number or client")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number to fetch")
}
