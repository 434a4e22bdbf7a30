package repository

import (
	"context"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

// InvoiceRepository stores issued invoices.
type InvoiceRepository interface {
	Save(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context, filter *models.InvoiceListFilter) ([]*models.Invoice, int, error)
}

// InvoiceCache defines caching operations for invoices.
type InvoiceCache interface {
	Get(ctx context.Context, id string) (*models.Invoice, error)
	Set(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id string) error
}

var (
	_ InvoiceRepository = (*PostgresInvoiceRepository)(nil)
	_ InvoiceRepository = (*MemoryInvoiceRepository)(nil)
	_ InvoiceCache      = (*RedisInvoiceCache)(nil)
)
