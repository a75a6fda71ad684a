package invoices

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertool/hypertool/pkg/sdk"
)

var (
	createClientID string
	createNumber   string
	createTaxRate  float64
	createDue      string
	createLines    []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice",
	Long: `Creates a draft invoice for a client. Lines are given as
description:quantity:unit_price triples, repeatable:

  hyperctl invoices create --client c1 --line "Design work:10:85" --line "Hosting:1:25.50"`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		hyperClient, err := sdkClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		lines, err := parseLineArgs(createLines)
		if err != nil {
			return err
		}

		input := sdk.CreateInvoiceInput{
			ClientID: createClientID,
			Number:   createNumber,
			Lines:    lines,
			TaxRate:  createTaxRate,
		}
		if createDue != "" {
			due, err := time.Parse("2006-01-02", createDue)
			if err != nil {
				return fmt.Errorf("invalid --due date %q (want YYYY-MM-DD)", createDue)
			}
			input.DueAt = due
		}

		invoice, err := hyperClient.CreateInvoice(cobraCmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		totals := invoice.Totals()
		pterm.Success.Printf("Created invoice %s (%s), total %.2f\n", invoice.Number, invoice.ID, totals.Total)
		return nil
	},
}

// parseLineArgs converts description:quantity:unit_price strings into
// invoice lines.
func parseLineArgs(args []string) ([]sdk.InvoiceLine, error) {
	lines := make([]sdk.InvoiceLine, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid --line %q (want description:quantity:unit_price)", arg)
		}
		quantity, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in --line %q: %w", arg, err)
		}
		unitPrice, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price in --line %q: %w", arg, err)
		}
		lines = append(lines, sdk.InvoiceLine{
			Description: parts[0],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}
	return lines, nil
}

func init() {
	createCmd.Flags().StringVar(&createClientID, "client", "", "Client ID to bill (required)")
	createCmd.Flags().StringVar(&createNumber, "number", "", "Invoice number")
	createCmd.Flags().Float64Var(&createTaxRate, "tax-rate", 0, "Tax rate percentage, e.g. 20 for 20%")
	createCmd.Flags().StringVar(&createDue, "due", "", "Due date (YYYY-MM-DD)")
	createCmd.Flags().StringArrayVar(&createLines, "line", nil, "Invoice line as description:quantity:unit_price (repeatable)")
	_ = createCmd.MarkFlagRequired("client")
	_ = createCmd.MarkFlagRequired("line")
}
