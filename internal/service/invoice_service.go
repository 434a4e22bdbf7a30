package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/metrics"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/repository"
)

// InvoiceService turns customer submissions into priced invoices.
type InvoiceService struct {
	calculator *invoice.Calculator
	repo       repository.InvoiceRepository
	cache      repository.InvoiceCache
	publisher  events.Publisher
	metrics    *metrics.Metrics
	config     *config.Config
	logger     *logging.LoggerV2
	now        func() time.Time
}

// NewInvoiceService creates a new invoice service. cache and publisher may be
// nil when the corresponding feature is disabled.
func NewInvoiceService(
	calculator *invoice.Calculator,
	repo repository.InvoiceRepository,
	cache repository.InvoiceCache,
	publisher events.Publisher,
	m *metrics.Metrics,
	cfg *config.Config,
) *InvoiceService {
	return &InvoiceService{
		calculator: calculator,
		repo:       repo,
		cache:      cache,
		publisher:  publisher,
		metrics:    m,
		config:     cfg,
		logger:     logging.NewLoggerV2("invoice-service"),
		now:        time.Now,
	}
}

// Rates returns the rate table used for every invoice.
func (s *InvoiceService) Rates() invoice.RateTable {
	return s.calculator.Rates()
}

// Quote prices a property without customer details or side effects.
func (s *InvoiceService) Quote(ctx context.Context, propertyArea float64) (invoice.Result, error) {
	if err := ValidatePropertyArea(propertyArea); err != nil {
		s.recordValidationFailure(err)
		return invoice.Result{}, err
	}

	result, err := s.calculator.Compute(propertyArea)
	if err != nil {
		return invoice.Result{}, err
	}

	s.metrics.QuotesComputed.Inc()
	return result, nil
}

// CreateInvoice normalizes and validates the request, prices it and stores
// the resulting invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	normalized := &models.CreateInvoiceRequest{
		Customer:     NormalizeCustomer(req.Customer),
		PropertyArea: req.PropertyArea,
	}

	if err := ValidateCreateInvoiceRequest(normalized); err != nil {
		s.recordValidationFailure(err)
		s.logger.Info("Invoice request rejected", logging.Fields{"error": err.Error()})
		return nil, err
	}

	lines, err := s.calculator.Compute(normalized.PropertyArea)
	if err != nil {
		return nil, err
	}

	rates := s.calculator.Rates()
	inv := &models.Invoice{
		ID:           generateInvoiceID(),
		Customer:     normalized.Customer,
		PropertyArea: normalized.PropertyArea,
		RateSchedule: rates.Name,
		Lines:        lines,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Save(ctx, inv); err != nil {
		s.logger.Error("Failed to save invoice", logging.Fields{
			"invoice_id": inv.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	if s.config.Features.EnableInvoiceCaching && s.cache != nil {
		if err := s.cache.Set(ctx, inv); err != nil {
			s.logger.Warn("Failed to cache invoice", logging.Fields{
				"invoice_id": inv.ID,
				"error":      err.Error(),
			})
		}
	}

	if s.config.Features.EnableInvoiceEvents && s.publisher != nil {
		if err := s.publisher.PublishInvoiceCreated(ctx, inv); err != nil {
			s.logger.Warn("Failed to publish invoice created event", logging.Fields{
				"invoice_id": inv.ID,
				"error":      err.Error(),
			})
		}
	}

	s.metrics.InvoicesCreated.WithLabelValues(inv.RateSchedule).Inc()
	s.metrics.InvoiceTotal.Observe(inv.Lines.Total)

	s.logger.Info("Invoice created", logging.Fields{
		"invoice_id":    inv.ID,
		"property_area": inv.PropertyArea,
		"total":         inv.Lines.Total,
	})

	return inv, nil
}

// GetInvoice retrieves an invoice by ID, consulting the cache first.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	useCache := s.config.Features.EnableInvoiceCaching && s.cache != nil

	if useCache {
		if inv, err := s.cache.Get(ctx, id); err == nil && inv != nil {
			return inv, nil
		}
	}

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, errors.ErrNotFound
	}

	if useCache {
		if err := s.cache.Set(ctx, inv); err != nil {
			s.logger.Warn("Failed to cache invoice", logging.Fields{
				"invoice_id": id,
				"error":      err.Error(),
			})
		}
	}

	return inv, nil
}

// ListInvoices returns stored invoices matching the filter and the total count.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter *models.InvoiceListFilter) ([]*models.Invoice, int, error) {
	if err := ValidateInvoiceListFilter(filter); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

func (s *InvoiceService) recordValidationFailure(err error) {
	field := "unknown"
	var vErr *errors.ValidationError
	if errors.As(err, &vErr) {
		field = vErr.Field
	}
	s.metrics.ValidationFailures.WithLabelValues(field).Inc()
}

func generateInvoiceID() string {
	return "inv_" + uuid.NewString()
}
