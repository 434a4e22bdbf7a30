package models

import (
	"time"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
)

// Customer is the billing contact for a serviced property.
type Customer struct {
	FirstName  string `json:"first_name" form:"first_name"`
	LastName   string `json:"last_name" form:"last_name"`
	Address    string `json:"address" form:"address"`
	City       string `json:"city" form:"city"`
	PostalCode string `json:"postal_code" form:"postal_code"`
	Phone      string `json:"phone" form:"phone"`
}

// FullName joins the first and last name.
func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Invoice is a priced lawncare job for one customer.
type Invoice struct {
	ID           string         `json:"id"`
	Customer     Customer       `json:"customer"`
	PropertyArea float64        `json:"property_area"`
	RateSchedule string         `json:"rate_schedule"`
	Lines        invoice.Result `json:"lines"`
	CreatedAt    time.Time      `json:"created_at"`
}

// CreateInvoiceRequest is the payload submitted by the invoice form or API.
type CreateInvoiceRequest struct {
	Customer     Customer `json:"customer"`
	PropertyArea float64  `json:"property_area"`
}

// QuoteRequest asks for line items only, without customer details.
type QuoteRequest struct {
	PropertyArea float64 `json:"property_area"`
}

// InvoiceListFilter narrows a listing of stored invoices.
type InvoiceListFilter struct {
	PostalCode string
	Limit      int
	Offset     int
}
