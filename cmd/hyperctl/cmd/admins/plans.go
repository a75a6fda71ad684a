package admins

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var planInput sdk.CreatePlanInput

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage subscription plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription plans",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		page, err := hyperClient.ListPlans(cobraCmd.Context(), sdk.ListOptions{})
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPRICE\tMAX CLIENTS")
		for _, plan := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", plan.ID, plan.Name, float64(plan.PriceCents)/100, plan.MaxClients)
		}
		w.Flush()
		return nil
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subscription plan",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		plan, err := hyperClient.CreatePlan(cobraCmd.Context(), planInput)
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		pterm.Success.Printf("Created plan %s (%s)\n", plan.Name, plan.ID)
		return nil
	},
}

func init() {
	plansCreateCmd.Flags().StringVar(&planInput.Name, "name", "", "Plan name (required)")
	plansCreateCmd.Flags().IntVar(&planInput.PriceCents, "price-cents", 0, "Monthly price in cents")
	plansCreateCmd.Flags().IntVar(&planInput.MaxClients, "max-clients", 0, "Maximum client records allowed (0 = unlimited)")
	_ = plansCreateCmd.MarkFlagRequired("name")

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansCreateCmd)
}
