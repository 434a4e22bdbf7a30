package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8090 {
		t.Errorf("expected port 8090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected shutdown timeout 30s, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Features.EnableInvoiceStore || cfg.Features.EnableInvoiceCaching || cfg.Features.EnableInvoiceEvents {
		t.Error("expected optional adapters to be disabled by default")
	}
	if cfg.Rates != invoice.DefaultRates() {
		t.Errorf("expected default rates, got %+v", cfg.Rates)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("FEATURE_INVOICE_CACHING", "true")
	t.Setenv("RATE_TAX_PRIMARY", "0.13")
	t.Setenv("RATE_SCHEDULE_NAME", "ontario")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Server.Port)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Errorf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
	if !cfg.Features.EnableInvoiceCaching {
		t.Error("expected caching enabled")
	}
	if cfg.Rates.TaxRatePrimary != 0.13 {
		t.Errorf("expected primary tax 0.13, got %v", cfg.Rates.TaxRatePrimary)
	}
	if cfg.Rates.Name != "ontario" {
		t.Errorf("expected schedule name ontario, got %s", cfg.Rates.Name)
	}
	if cfg.Rates.FertilizerCostPerArea != 0.05 {
		t.Errorf("expected untouched fertilizer rate, got %v", cfg.Rates.FertilizerCostPerArea)
	}
}

func TestLoad_RejectsNegativeRate(t *testing.T) {
	t.Setenv("RATE_MOWING_COST_PER_AREA", "-0.07")

	_, err := Load()
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadRateSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "premium.yaml")
	content := `
name: premium
fertilizer_cost_per_area: 0.08
tax_rate_secondary: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	rates, err := LoadRateSchedule(path)
	if err != nil {
		t.Fatalf("LoadRateSchedule() error = %v", err)
	}

	if rates.Name != "premium" {
		t.Errorf("expected name premium, got %s", rates.Name)
	}
	if rates.FertilizerCostPerArea != 0.08 {
		t.Errorf("expected fertilizer 0.08, got %v", rates.FertilizerCostPerArea)
	}
	if rates.TaxRateSecondary != 0 {
		t.Errorf("expected secondary tax 0, got %v", rates.TaxRateSecondary)
	}
	if rates.BorderAreaFraction != 0.04 {
		t.Errorf("expected default border fraction, got %v", rates.BorderAreaFraction)
	}
}

func TestLoadRateSchedule_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRateSchedule(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tax_rate_primary: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}
	if _, err := LoadRateSchedule(bad); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("name: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}
	if _, err := LoadRateSchedule(garbage); err == nil {
		t.Error("expected parse error")
	}
}

func TestMarshalRateSchedule_RoundTrip(t *testing.T) {
	data, err := MarshalRateSchedule(invoice.DefaultRates())
	if err != nil {
		t.Fatalf("MarshalRateSchedule() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "standard.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	rates, err := LoadRateSchedule(path)
	if err != nil {
		t.Fatalf("LoadRateSchedule() error = %v", err)
	}
	if rates != invoice.DefaultRates() {
		t.Errorf("round trip mismatch: %+v", rates)
	}
}
