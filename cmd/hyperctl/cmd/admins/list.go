package admins

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenant admin accounts",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		page, err := hyperClient.ListAdmins(ctx, sdk.ListOptions{})
		if err != nil {
			return fmt.Errorf("failed to list admins: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tNAME\tPLAN\tDISABLED")
		for _, admin := range page.Items {
			plan := "-"
			if admin.PlanID != "" {
				plan = admin.PlanID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", admin.ID, admin.Email, admin.Name, plan, admin.Disabled)
		}
		w.Flush()
		return nil
	},
}
