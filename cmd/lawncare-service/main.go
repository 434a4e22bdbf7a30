package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/handlers"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/repository"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/server"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	logger := logging.NewLoggerV2("lawncare-service")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", logging.Fields{"error": err.Error()})
	}

	logging.Infof("Starting lawncare-service on port %d", cfg.Server.Port)

	calculator, err := invoice.NewCalculator(cfg.Rates)
	if err != nil {
		logger.Fatal("Invalid rate table", logging.Fields{"error": err.Error()})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	readiness := map[string]handlers.ReadinessCheck{}

	var invoiceRepo repository.InvoiceRepository = repository.NewMemoryInvoiceRepository()
	if cfg.Features.EnableInvoiceStore {
		db, err := initDatabase(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", logging.Fields{"error": err.Error()})
		}
		defer db.Close()

		pgRepo := repository.NewPostgresInvoiceRepository(db, logger)
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			logger.Fatal("Failed to apply schema", logging.Fields{"error": err.Error()})
		}
		invoiceRepo = pgRepo
		readiness["postgres"] = db.PingContext
	}

	var invoiceCache repository.InvoiceCache
	if cfg.Features.EnableInvoiceCaching {
		redisCache := repository.NewRedisInvoiceCache(cfg.Redis)
		invoiceCache = redisCache
		readiness["redis"] = redisCache.Ping
	}

	var publisher events.Publisher
	if cfg.Features.EnableInvoiceEvents {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	invoiceService := service.NewInvoiceService(
		calculator,
		invoiceRepo,
		invoiceCache,
		publisher,
		m,
		cfg,
	)

	h := handlers.NewHandlers(invoiceService, cfg)
	for name, check := range readiness {
		h.AddReadinessCheck(name, check)
	}

	srv := server.New(h, cfg, reg)

	go func() {
		logger.Info("Server starting", logging.Fields{
			"port":                   cfg.Server.Port,
			"rate_schedule":          cfg.Rates.Name,
			"enable_invoice_store":   cfg.Features.EnableInvoiceStore,
			"enable_invoice_caching": cfg.Features.EnableInvoiceCaching,
			"enable_invoice_events":  cfg.Features.EnableInvoiceEvents,
		})
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", logging.Fields{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logging.Fields{"error": err.Error()})
	}

	logger.Info("Server exited")
}

func initDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	logging.Info("Database connected", logging.Fields{
		"host": cfg.Database.Host,
		"name": cfg.Database.Name,
	})

	return db, nil
}
