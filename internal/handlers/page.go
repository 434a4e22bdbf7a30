package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/format"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const invoicePage = "invoice.html"

// Templates parses the HTML templates served by the invoice page.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type invoiceForm struct {
	FirstName    string
	LastName     string
	Address      string
	City         string
	PostalCode   string
	Phone        string
	PropertyArea string
}

func (f invoiceForm) customer() models.Customer {
	return models.Customer{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Address:    f.Address,
		City:       f.City,
		PostalCode: f.PostalCode,
		Phone:      f.Phone,
	}
}

type lineView struct {
	Label  string
	Amount string
}

type invoiceView struct {
	ID         string
	Customer   models.Customer
	Area       string
	Schedule   string
	Lines      []lineView
	Subtotal   string
	Taxes      []lineView
	Total      string
	IssuedDate string
}

type pageData struct {
	Form    invoiceForm
	Errors  map[string]string
	Invoice *invoiceView
}

func newInvoiceView(inv *models.Invoice, primaryRate, secondaryRate float64) *invoiceView {
	return &invoiceView{
		ID:       inv.ID,
		Customer: inv.Customer,
		Area:     format.Area(inv.PropertyArea),
		Schedule: inv.RateSchedule,
		Lines: []lineView{
			{"Border", format.Currency(inv.Lines.BorderCost)},
			{"Mowing", format.Currency(inv.Lines.MowingCost)},
			{"Fertilizer", format.Currency(inv.Lines.FertilizerCost)},
		},
		Subtotal: format.Currency(inv.Lines.Subtotal),
		Taxes: []lineView{
			{"HST (" + format.Rate(primaryRate) + ")", format.Currency(inv.Lines.TaxPrimary)},
			{"Environmental levy (" + format.Rate(secondaryRate) + ")", format.Currency(inv.Lines.TaxSecondary)},
		},
		Total:      format.Currency(inv.Lines.Total),
		IssuedDate: inv.CreatedAt.Format("January 2, 2006"),
	}
}

// InvoiceForm handles GET /
func (h *Handlers) InvoiceForm(c *gin.Context) {
	c.HTML(http.StatusOK, invoicePage, pageData{})
}

// SubmitInvoiceForm handles POST /invoice
func (h *Handlers) SubmitInvoiceForm(c *gin.Context) {
	form := invoiceForm{
		FirstName:    c.PostForm("first_name"),
		LastName:     c.PostForm("last_name"),
		Address:      c.PostForm("address"),
		City:         c.PostForm("city"),
		PostalCode:   c.PostForm("postal_code"),
		Phone:        c.PostForm("phone"),
		PropertyArea: strings.TrimSpace(c.PostForm("property_area")),
	}

	area, err := strconv.ParseFloat(strings.ReplaceAll(form.PropertyArea, ",", ""), 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, invoicePage, pageData{
			Form:   form,
			Errors: map[string]string{"property_area": "Enter the square footage as a number."},
		})
		return
	}

	inv, err := h.invoiceService.CreateInvoice(c.Request.Context(), &models.CreateInvoiceRequest{
		Customer:     form.customer(),
		PropertyArea: area,
	})
	if err != nil {
		var validationErr *errors.ValidationError
		if errors.As(err, &validationErr) {
			c.HTML(http.StatusBadRequest, invoicePage, pageData{
				Form:   form,
				Errors: map[string]string{validationErr.Field: validationErr.Message},
			})
			return
		}
		h.logger.Error("Failed to create invoice from form", logging.Fields{"error": err.Error()})
		c.HTML(http.StatusInternalServerError, invoicePage, pageData{
			Form:   form,
			Errors: map[string]string{"form": "The invoice could not be created. Please try again."},
		})
		return
	}

	rates := h.invoiceService.Rates()
	form.FirstName = inv.Customer.FirstName
	form.LastName = inv.Customer.LastName
	form.Address = inv.Customer.Address
	form.City = inv.Customer.City
	form.PostalCode = inv.Customer.PostalCode
	form.Phone = inv.Customer.Phone

	c.HTML(http.StatusOK, invoicePage, pageData{
		Form:    form,
		Invoice: newInvoiceView(inv, rates.TaxRatePrimary, rates.TaxRateSecondary),
	})
}
