package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/format"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

func ratesCmd(loadRates func() (invoice.RateTable, error)) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the active rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := loadRates()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYAML {
				data, err := config.MarshalRateSchedule(rates)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			fmt.Fprintf(out, "Schedule: %s\n", rates.Name)
			fmt.Fprintf(out, "Border:     %s of area at %s per sq ft\n", format.Rate(rates.BorderAreaFraction), format.UnitPrice(rates.BorderCostPerArea))
			fmt.Fprintf(out, "Mowing:     %s of area at %s per sq ft\n", format.Rate(rates.MowingAreaFraction), format.UnitPrice(rates.MowingCostPerArea))
			fmt.Fprintf(out, "Fertilizer: full area at %s per sq ft\n", format.UnitPrice(rates.FertilizerCostPerArea))
			fmt.Fprintf(out, "Tax:        %s + %s levy\n", format.Rate(rates.TaxRatePrimary), format.Rate(rates.TaxRateSecondary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as a rate schedule file")
	return cmd
}
