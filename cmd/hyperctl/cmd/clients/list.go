package clients

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
	Short: "List client records",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		page, err := hyperClient.ListClients(ctx, sdk.ListOptions{
			Page:   listPage,
			Search: listSearch,
		})
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
		for _, record := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", record.ID, record.Name, record.Email, record.Phone)
		}
		w.Flush()

		if page.Total > len(page.Items) {
			fmt.Printf("Showing %d of %d clients\n", len(page.Items), page.Total)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter clients by name or email")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number to fetch")
}
