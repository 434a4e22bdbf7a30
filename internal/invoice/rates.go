package invoice

import (
	"fmt"
	"math"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
)

// RateTable holds the service fractions, per-area prices and tax rates used to
// price a property. Values are passed by copy so a table in use cannot change.
type RateTable struct {
	Name string `json:"name" yaml:"name"`

	BorderAreaFraction    float64 `json:"border_area_fraction" yaml:"border_area_fraction"`
	MowingAreaFraction    float64 `json:"mowing_area_fraction" yaml:"mowing_area_fraction"`
	BorderCostPerArea     float64 `json:"border_cost_per_area" yaml:"border_cost_per_area"`
	MowingCostPerArea     float64 `json:"mowing_cost_per_area" yaml:"mowing_cost_per_area"`
	FertilizerCostPerArea float64 `json:"fertilizer_cost_per_area" yaml:"fertilizer_cost_per_area"`
	TaxRatePrimary        float64 `json:"tax_rate_primary" yaml:"tax_rate_primary"`
	TaxRateSecondary      float64 `json:"tax_rate_secondary" yaml:"tax_rate_secondary"`
}

const DefaultScheduleName = "standard"

// DefaultRates returns the standard residential rate table.
//
// Border and mowing together cover 99% of the property while fertilizer is
// charged on the whole area. Keep the constants as they are. Border work is
// priced so that border cost is 0.14% of the property area.
func DefaultRates() RateTable {
	return RateTable{
		Name:                  DefaultScheduleName,
		BorderAreaFraction:    0.04,
		MowingAreaFraction:    0.95,
		BorderCostPerArea:     0.035,
		MowingCostPerArea:     0.07,
		FertilizerCostPerArea: 0.05,
		TaxRatePrimary:        0.15,
		TaxRateSecondary:      0.014,
	}
}

// Validate checks that every rate is finite and non-negative.
func (r RateTable) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"border_area_fraction", r.BorderAreaFraction},
		{"mowing_area_fraction", r.MowingAreaFraction},
		{"border_cost_per_area", r.BorderCostPerArea},
		{"mowing_cost_per_area", r.MowingCostPerArea},
		{"fertilizer_cost_per_area", r.FertilizerCostPerArea},
		{"tax_rate_primary", r.TaxRatePrimary},
		{"tax_rate_secondary", r.TaxRateSecondary},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("rate %s = %v: %w", f.name, f.value, errors.ErrInvalidInput)
		}
	}
	return nil
}
