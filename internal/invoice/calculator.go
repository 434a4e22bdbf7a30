// Package invoice prices lawncare services for a property.
//
// Compute is pure: it reads nothing but its arguments and never rounds.
// Rounding to cents is a display concern handled by package format.
package invoice

import (
	"fmt"
	"math"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
)

// Result is the full-precision breakdown of an invoice.
type Result struct {
	BorderCost     float64 `json:"border_cost"`
	MowingCost     float64 `json:"mowing_cost"`
	FertilizerCost float64 `json:"fertilizer_cost"`
	Subtotal       float64 `json:"subtotal"`
	TaxPrimary     float64 `json:"tax_primary"`
	TaxSecondary   float64 `json:"tax_secondary"`
	Total          float64 `json:"total"`
}

// ValidateArea reports ErrInvalidInput unless area is finite and positive.
func ValidateArea(area float64) error {
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return fmt.Errorf("property area %v must be finite and greater than zero: %w", area, errors.ErrInvalidInput)
	}
	return nil
}

// Compute prices a property of the given area with the given rates.
func Compute(propertyArea float64, rates RateTable) (Result, error) {
	if err := ValidateArea(propertyArea); err != nil {
		return Result{}, err
	}
	if err := rates.Validate(); err != nil {
		return Result{}, err
	}

	var r Result
	r.BorderCost = propertyArea * rates.BorderAreaFraction * rates.BorderCostPerArea
	r.MowingCost = propertyArea * rates.MowingAreaFraction * rates.MowingCostPerArea
	r.FertilizerCost = propertyArea * rates.FertilizerCostPerArea
	r.Subtotal = r.BorderCost + r.MowingCost + r.FertilizerCost
	r.TaxPrimary = r.Subtotal * rates.TaxRatePrimary
	r.TaxSecondary = r.Subtotal * rates.TaxRateSecondary
	r.Total = r.Subtotal + r.TaxPrimary + r.TaxSecondary
	return r, nil
}

// Calculator binds a rate table to Compute.
type Calculator struct {
	rates RateTable
}

// NewCalculator validates rates and returns a calculator using them.
func NewCalculator(rates RateTable) (*Calculator, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rates: rates}, nil
}

// Rates returns a copy of the calculator's rate table.
func (c *Calculator) Rates() RateTable {
	return c.rates
}

func (c *Calculator) Compute(propertyArea float64) (Result, error) {
	return Compute(propertyArea, c.rates)
}
