package sdk_test

import (
	"testing"

	"github.com/hypertool/hypertool/pkg/sdk"
)

func TestInvoiceTotals(t *testing.T) {
	tests := []struct {
		name    string
		invoice sdk.Invoice
		want    sdk.Totals
	}{
		{
			name: "single line with tax",
			invoice: sdk.Invoice{
				Lines:   []sdk.InvoiceLine{{Quantity: 2, UnitPrice: 50}},
				TaxRate: 20,
			},
			want: sdk.Totals{Subtotal: 100, Tax: 20, Total: 120},
		},
		{
			name: "fractional quantities round to cents",
			invoice: sdk.Invoice{
				Lines: []sdk.InvoiceLine{
					{Quantity: 1.5, UnitPrice: 33.34},
					{Quantity: 3, UnitPrice: 0.10},
				},
				TaxRate: 19,
			},
			// 1.5*33.34 = 50.01, plus 0.30 = 50.31;
			// tax 19% of 50.31 = 9.5589 -> 9.56
			want: sdk.Totals{Subtotal: 50.31, Tax: 9.56, Total: 59.87},
		},
		{
			name: "zero tax rate",
			invoice: sdk.Invoice{
				Lines: []sdk.InvoiceLine{{Quantity: 4, UnitPrice: 12.25}},
			},
			want: sdk.Totals{Subtotal: 49, Tax: 0, Total: 49},
		},
		{
			name:    "no lines",
			invoice: sdk.Invoice{TaxRate: 20},
			want:    sdk.Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.invoice.Totals(); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInvoiceLineAmount(t *testing.T) {
	line := sdk.InvoiceLine{Quantity: 3, UnitPrice: 9.999}
	if got := line.Amount(); got != 30.00 {
		t.Fatalf("got %v, want 30.00", got)
	}
}
