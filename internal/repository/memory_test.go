package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

func testInvoice(id, postal string, createdAt time.Time) *models.Invoice {
	return &models.Invoice{
		ID: id,
		Customer: models.Customer{
			FirstName:  "Jane",
			LastName:   "Doe",
			Address:    "12 Elm Street",
			City:       "Halifax",
			PostalCode: postal,
			Phone:      "902-555-0123",
		},
		PropertyArea: 1000,
		RateSchedule: "standard",
		CreatedAt:    createdAt,
	}
}

func TestMemoryInvoiceRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInvoiceRepository()

	inv := testInvoice("inv_1", "B3H 4R2", time.Now())
	require.NoError(t, repo.Save(ctx, inv))

	got, err := repo.GetByID(ctx, "inv_1")
	require.NoError(t, err)
	assert.Equal(t, inv, got)

	// stored copies are independent of the caller's value
	got.Customer.FirstName = "Changed"
	again, err := repo.GetByID(ctx, "inv_1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.Customer.FirstName)
}

func TestMemoryInvoiceRepository_NotFound(t *testing.T) {
	_, err := NewMemoryInvoiceRepository().GetByID(context.Background(), "inv_missing")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestMemoryInvoiceRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryInvoiceRepository()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, testInvoice("inv_a", "B3H 4R2", base)))
	require.NoError(t, repo.Save(ctx, testInvoice("inv_b", "B3H 4R2", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, testInvoice("inv_c", "B3K 1A1", base.Add(2*time.Hour))))

	all, total, err := repo.List(ctx, &models.InvoiceListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "inv_c", all[0].ID)
	assert.Equal(t, "inv_a", all[2].ID)

	filtered, total, err := repo.List(ctx, &models.InvoiceListFilter{PostalCode: "B3H 4R2", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, filtered, 2)

	page, total, err := repo.List(ctx, &models.InvoiceListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "inv_b", page[0].ID)

	empty, _, err := repo.List(ctx, &models.InvoiceListFilter{Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
