package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Features FeatureFlags
	Rates    invoice.RateTable
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

func (d DatabaseConfig) ConnectionString() string {
	return "host=" + d.Host +
		" port=" + strconv.Itoa(d.Port) +
		" user=" + d.User +
		" password=" + d.Password +
		" dbname=" + d.Name +
		" sslmode=" + d.SSLMode
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type KafkaConfig struct {
	Brokers       []string
	InvoicesTopic string
}

// FeatureFlags switch the optional service adapters. The calculator itself
// never depends on them.
type FeatureFlags struct {
	EnableInvoiceStore   bool
	EnableInvoiceCaching bool
	EnableInvoiceEvents  bool
}

// Load reads configuration from the environment. The rate table starts from
// RATE_SCHEDULE_FILE when set, then individual RATE_* variables override it.
func Load() (*Config, error) {
	rates := invoice.DefaultRates()
	if path := os.Getenv("RATE_SCHEDULE_FILE"); path != "" {
		schedule, err := LoadRateSchedule(path)
		if err != nil {
			return nil, err
		}
		rates = schedule
	}
	rates = applyRateOverrides(rates)
	if err := rates.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnvInt("SERVER_PORT", 8090),
			ReadTimeout:     time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout:    time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
			ShutdownTimeout: time.Duration(getEnvInt("SERVER_SHUTDOWN_TIMEOUT", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:         getEnvString("DB_HOST", "localhost"),
			Port:         getEnvInt("DB_PORT", 5432),
			User:         getEnvString("DB_USER", "acme"),
			Password:     getEnvString("DB_PASSWORD", "acme"),
			Name:         getEnvString("DB_NAME", "acme_lawncare"),
			SSLMode:      getEnvString("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnvString("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("REDIS_TTL_SECONDS", 300)) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:       getEnvList("KAFKA_BROKERS", []string{"localhost:9092"}),
			InvoicesTopic: getEnvString("KAFKA_INVOICES_TOPIC", "lawncare.invoices"),
		},
		Features: FeatureFlags{
			EnableInvoiceStore:   getEnvBool("FEATURE_INVOICE_STORE", false),
			EnableInvoiceCaching: getEnvBool("FEATURE_INVOICE_CACHING", false),
			EnableInvoiceEvents:  getEnvBool("FEATURE_INVOICE_EVENTS", false),
		},
		Rates: rates,
	}, nil
}

func applyRateOverrides(r invoice.RateTable) invoice.RateTable {
	r.Name = getEnvString("RATE_SCHEDULE_NAME", r.Name)
	r.BorderAreaFraction = getEnvFloat("RATE_BORDER_AREA_FRACTION", r.BorderAreaFraction)
	r.MowingAreaFraction = getEnvFloat("RATE_MOWING_AREA_FRACTION", r.MowingAreaFraction)
	r.BorderCostPerArea = getEnvFloat("RATE_BORDER_COST_PER_AREA", r.BorderCostPerArea)
	r.MowingCostPerArea = getEnvFloat("RATE_MOWING_COST_PER_AREA", r.MowingCostPerArea)
	r.FertilizerCostPerArea = getEnvFloat("RATE_FERTILIZER_COST_PER_AREA", r.FertilizerCostPerArea)
	r.TaxRatePrimary = getEnvFloat("RATE_TAX_PRIMARY", r.TaxRatePrimary)
	r.TaxRateSecondary = getEnvFloat("RATE_TAX_SECONDARY", r.TaxRateSecondary)
	return r
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
