package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/format"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

// displayLines rounds each amount to cents for presentation.
func displayLines(r invoice.Result) gin.H {
	return gin.H{
		"border_cost":     format.Currency(r.BorderCost),
		"mowing_cost":     format.Currency(r.MowingCost),
		"fertilizer_cost": format.Currency(r.FertilizerCost),
		"subtotal":        format.Currency(r.Subtotal),
		"tax_primary":     format.Currency(r.TaxPrimary),
		"tax_secondary":   format.Currency(r.TaxSecondary),
		"total":           format.Currency(r.Total),
	}
}

// CreateQuote handles POST /api/v1/quotes
func (h *Handlers) CreateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.invoiceService.Quote(c.Request.Context(), req.PropertyArea)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property_area": req.PropertyArea,
		"rate_schedule": h.invoiceService.Rates().Name,
		"lines":         result,
		"display":       displayLines(result),
	})
}

// CreateInvoice handles POST /api/v1/invoices
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed to bind request", logging.Fields{"error": err.Error()})
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"invoice": inv,
		"display": displayLines(inv.Lines),
	})
}

// GetInvoice handles GET /api/v1/invoices/:id
func (h *Handlers) GetInvoice(c *gin.Context) {
	inv, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice": inv,
		"display": displayLines(inv.Lines),
	})
}

// ListInvoices handles GET /api/v1/invoices
func (h *Handlers) ListInvoices(c *gin.Context) {
	filter := &models.InvoiceListFilter{
		PostalCode: c.Query("postal_code"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filter.Offset = offset
	}

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices,
		"total":    total,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})
}

// GetRates handles GET /api/v1/rates
func (h *Handlers) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, h.invoiceService.Rates())
}
