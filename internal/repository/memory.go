package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

// MemoryInvoiceRepository keeps invoices in process memory. It is the
// default store when PostgreSQL is not enabled.
type MemoryInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]models.Invoice
}

func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		invoices: make(map[string]models.Invoice),
	}
}

func (r *MemoryInvoiceRepository) Save(ctx context.Context, inv *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invoices[inv.ID] = *inv
	return nil
}

func (r *MemoryInvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &inv, nil
}

// List returns matching invoices newest first, with the total match count.
func (r *MemoryInvoiceRepository) List(ctx context.Context, filter *models.InvoiceListFilter) ([]*models.Invoice, int, error) {
	r.mu.RLock()
	matches := make([]*models.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		if filter.PostalCode != "" && inv.Customer.PostalCode != filter.PostalCode {
			continue
		}
		inv := inv
		matches = append(matches, &inv)
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := len(matches)
	if filter.Offset >= total {
		return []*models.Invoice{}, total, nil
	}
	end := total
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	return matches[filter.Offset:end], total, nil
}
