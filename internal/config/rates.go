package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

// LoadRateSchedule reads a YAML rate schedule. Keys missing from the file keep
// their standard values.
func LoadRateSchedule(path string) (invoice.RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return invoice.RateTable{}, fmt.Errorf("failed to read rate schedule: %w", err)
	}

	rates := invoice.DefaultRates()
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return invoice.RateTable{}, fmt.Errorf("failed to parse rate schedule: %w", err)
	}
	if err := rates.Validate(); err != nil {
		return invoice.RateTable{}, fmt.Errorf("invalid rate schedule %s: %w", path, err)
	}
	return rates, nil
}

// MarshalRateSchedule renders a rate table in the schedule file format.
func MarshalRateSchedule(rates invoice.RateTable) ([]byte, error) {
	data, err := yaml.Marshal(rates)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rate schedule: %w", err)
	}
	return data, nil
}
