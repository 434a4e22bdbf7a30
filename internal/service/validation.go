package service

import (
	"strings"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/format"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/invoice"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

const (
	maxNameLength    = 100
	maxAddressLength = 200
	defaultListLimit = 20
	maxListLimit     = 100
)

// NormalizeCustomer applies the display masks to raw form input.
func NormalizeCustomer(c models.Customer) models.Customer {
	return models.Customer{
		FirstName:  format.TitleCase(c.FirstName),
		LastName:   format.TitleCase(c.LastName),
		Address:    format.TitleCase(c.Address),
		City:       format.TitleCase(c.City),
		PostalCode: normalizeOrKeep(c.PostalCode, format.NormalizePostalCode),
		Phone:      normalizeOrKeep(c.Phone, format.NormalizePhone),
	}
}

// normalizeOrKeep masks a complete value and otherwise returns the trimmed
// input unchanged, so validation sees what was actually submitted.
func normalizeOrKeep(s string, normalize func(string) (string, bool)) string {
	if masked, ok := normalize(s); ok {
		return masked
	}
	return strings.TrimSpace(s)
}

// ValidateCreateInvoiceRequest validates a normalized invoice request.
func ValidateCreateInvoiceRequest(req *models.CreateInvoiceRequest) error {
	if err := validateCustomer(&req.Customer); err != nil {
		return err
	}
	return ValidatePropertyArea(req.PropertyArea)
}

// ValidatePropertyArea rejects areas the calculator would refuse.
func ValidatePropertyArea(area float64) error {
	if err := invoice.ValidateArea(area); err != nil {
		return errors.NewValidationError("property_area", "square footage must be a number greater than zero")
	}
	return nil
}

func validateCustomer(c *models.Customer) error {
	if err := validateRequired("first_name", c.FirstName, maxNameLength); err != nil {
		return err
	}
	if err := validateRequired("last_name", c.LastName, maxNameLength); err != nil {
		return err
	}
	if err := validateRequired("address", c.Address, maxAddressLength); err != nil {
		return err
	}
	if err := validateRequired("city", c.City, maxNameLength); err != nil {
		return err
	}

	if _, ok := format.NormalizePostalCode(c.PostalCode); !ok {
		return errors.NewValidationError("postal_code", "postal code must look like A1A 1A1")
	}

	if _, ok := format.NormalizePhone(c.Phone); !ok {
		return errors.NewValidationError("phone", "phone number must have 10 digits")
	}

	return nil
}

func validateRequired(field, value string, maxLen int) error {
	if value == "" {
		return errors.NewValidationError(field, "is required")
	}
	if len(value) > maxLen {
		return errors.NewValidationError(field, "is too long")
	}
	return nil
}

// ValidateInvoiceListFilter validates a list filter and fills in the default limit.
func ValidateInvoiceListFilter(filter *models.InvoiceListFilter) error {
	if filter.Limit < 0 {
		return errors.NewValidationError("limit", "limit cannot be negative")
	}

	if filter.Offset < 0 {
		return errors.NewValidationError("offset", "offset cannot be negative")
	}

	if filter.Limit > maxListLimit {
		return errors.NewValidationError("limit", "limit cannot exceed 100")
	}

	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}

	if filter.PostalCode != "" {
		filter.PostalCode = format.PostalCode(filter.PostalCode)
	}

	return nil
}
