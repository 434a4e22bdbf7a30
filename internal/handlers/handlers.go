package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/service"
)

const serviceName = "lawncare-service"

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// Handlers holds all HTTP handlers for the lawncare service.
type Handlers struct {
	invoiceService *service.InvoiceService
	config         *config.Config
	logger         *logging.LoggerV2
	checks         map[string]ReadinessCheck
}

// NewHandlers creates a new handlers instance.
func NewHandlers(invoiceService *service.InvoiceService, cfg *config.Config) *Handlers {
	return &Handlers{
		invoiceService: invoiceService,
		config:         cfg,
		logger:         logging.NewLoggerV2("handlers"),
		checks:         make(map[string]ReadinessCheck),
	}
}

// AddReadinessCheck registers a dependency probed by GET /ready.
func (h *Handlers) AddReadinessCheck(name string, check ReadinessCheck) {
	h.checks[name] = check
}

func handleError(c *gin.Context, err error) {
	var validationErr *errors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.Is(err, errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
