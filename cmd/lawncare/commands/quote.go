package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/format"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

func quoteCmd(loadRates func() (invoice.RateTable, error)) *cobra.Command {
	var (
		area   float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a property from its square footage",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := loadRates()
			if err != nil {
				return err
			}

			result, err := invoice.Compute(area, rates)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(w, "Property\t%s\t\n", format.Area(area))
			fmt.Fprintf(w, "Border\t%s\t\n", format.Currency(result.BorderCost))
			fmt.Fprintf(w, "Mowing\t%s\t\n", format.Currency(result.MowingCost))
			fmt.Fprintf(w, "Fertilizer\t%s\t\n", format.Currency(result.FertilizerCost))
			fmt.Fprintf(w, "Subtotal\t%s\t\n", format.Currency(result.Subtotal))
			fmt.Fprintf(w, "Tax (%s)\t%s\t\n", format.Rate(rates.TaxRatePrimary), format.Currency(result.TaxPrimary))
			fmt.Fprintf(w, "Levy (%s)\t%s\t\n", format.Rate(rates.TaxRateSecondary), format.Currency(result.TaxSecondary))
			fmt.Fprintf(w, "Total\t%s\t\n", format.Currency(result.Total))
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&area, "area", 0, "property size in square feet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print unrounded amounts as JSON")
	_ = cmd.MarkFlagRequired("area")
	return cmd
}
