package commands

import (
	"github.com/spf13/cobra"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var ratesFile string

	root := &cobra.Command{
		Use:          "lawncare",
		Short:        "Lawncare invoice calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&ratesFile, "rates", "", "YAML rate schedule (default: standard rates)")

	loadRates := func() (invoice.RateTable, error) {
		if ratesFile == "" {
			return invoice.DefaultRates(), nil
		}
		return config.LoadRateSchedule(ratesFile)
	}

	root.AddCommand(quoteCmd(loadRates), ratesCmd(loadRates))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
