package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/errors"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/logging"
	"github.com/tm-acme-shop/acme-shop-lawncare-service/internal/models"
)

// Schema creates the invoices table used by PostgresInvoiceRepository.
const Schema = `
CREATE TABLE IF NOT EXISTS invoices (
	id              TEXT PRIMARY KEY,
	customer        JSONB NOT NULL,
	postal_code     TEXT NOT NULL,
	property_area   DOUBLE PRECISION NOT NULL,
	rate_schedule   TEXT NOT NULL,
	border_cost     DOUBLE PRECISION NOT NULL,
	mowing_cost     DOUBLE PRECISION NOT NULL,
	fertilizer_cost DOUBLE PRECISION NOT NULL,
	subtotal        DOUBLE PRECISION NOT NULL,
	tax_primary     DOUBLE PRECISION NOT NULL,
	tax_secondary   DOUBLE PRECISION NOT NULL,
	total           DOUBLE PRECISION NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS invoices_postal_code_idx ON invoices (postal_code);
`

const invoiceColumns = `
	id, customer, property_area, rate_schedule,
	border_cost, mowing_cost, fertilizer_cost, subtotal,
	tax_primary, tax_secondary, total, created_at
`

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
// Amounts are stored unrounded.
type PostgresInvoiceRepository struct {
	db     *sql.DB
	logger *logging.LoggerV2
}

func NewPostgresInvoiceRepository(db *sql.DB, logger *logging.LoggerV2) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema applies Schema.
func (r *PostgresInvoiceRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		r.logger.Error("Failed to apply invoice schema", logging.Fields{"error": err.Error()})
		return err
	}
	return nil
}

// Save inserts an invoice.
func (r *PostgresInvoiceRepository) Save(ctx context.Context, inv *models.Invoice) error {
	r.logger.Debug("Saving invoice", logging.Fields{"invoice_id": inv.ID})

	customerJSON, err := json.Marshal(inv.Customer)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (
			id, customer, postal_code, property_area, rate_schedule,
			border_cost, mowing_cost, fertilizer_cost, subtotal,
			tax_primary, tax_secondary, total, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		inv.ID,
		customerJSON,
		inv.Customer.PostalCode,
		inv.PropertyArea,
		inv.RateSchedule,
		inv.Lines.BorderCost,
		inv.Lines.MowingCost,
		inv.Lines.FertilizerCost,
		inv.Lines.Subtotal,
		inv.Lines.TaxPrimary,
		inv.Lines.TaxSecondary,
		inv.Lines.Total,
		inv.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save invoice", logging.Fields{
			"invoice_id": inv.ID,
			"error":      err.Error(),
		})
		return err
	}

	r.logger.Info("Invoice saved", logging.Fields{
		"invoice_id": inv.ID,
		"total":      inv.Lines.Total,
	})
	return nil
}

// GetByID retrieves an invoice by its identifier.
func (r *PostgresInvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	r.logger.Debug("Fetching invoice by ID", logging.Fields{"invoice_id": id})

	row := r.db.QueryRowContext(ctx, "SELECT "+invoiceColumns+" FROM invoices WHERE id = $1", id)
	inv, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch invoice", logging.Fields{
			"invoice_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}
	return inv, nil
}

// List retrieves invoices newest first.
func (r *PostgresInvoiceRepository) List(ctx context.Context, filter *models.InvoiceListFilter) ([]*models.Invoice, int, error) {
	r.logger.Debug("Listing invoices", logging.Fields{
		"postal_code": filter.PostalCode,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})

	baseQuery := " FROM invoices WHERE TRUE"
	args := make([]interface{}, 0, 3)

	if filter.PostalCode != "" {
		args = append(args, filter.PostalCode)
		baseQuery += " AND postal_code = $" + strconv.Itoa(len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	selectQuery := "SELECT " + invoiceColumns + baseQuery +
		" ORDER BY created_at DESC, id DESC" +
		" LIMIT $" + strconv.Itoa(len(args)-1) +
		" OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.db.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]*models.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	r.logger.Info("Invoices listed", logging.Fields{
		"count": len(invoices),
		"total": total,
	})
	return invoices, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row rowScanner) (*models.Invoice, error) {
	var inv models.Invoice
	var customerJSON []byte

	err := row.Scan(
		&inv.ID,
		&customerJSON,
		&inv.PropertyArea,
		&inv.RateSchedule,
		&inv.Lines.BorderCost,
		&inv.Lines.MowingCost,
		&inv.Lines.FertilizerCost,
		&inv.Lines.Subtotal,
		&inv.Lines.TaxPrimary,
		&inv.Lines.TaxSecondary,
		&inv.Lines.Total,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(customerJSON, &inv.Customer); err != nil {
		return nil, err
	}
	return &inv, nil
}
