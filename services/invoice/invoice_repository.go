package invoiceservice

import (
	"context"
	"database/sql"
	"fmt"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// InvoiceLine is one billed spare part on an invoice.
type InvoiceLine struct {
	PartName  string  `db:"part_name"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
}

type InvoiceRepository interface {
	ExistsForWorkOrder(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID) (bool, error)
	ListApprovedLines(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID) ([]InvoiceLine, error)
	Insert(ctx context.Context, tx *sqlx.Tx, invoice models.Invoice) error
	GetByWorkOrder(ctx context.Context, workOrderID uuid.UUID) (models.Invoice, error)
}

type PostgresInvoiceRepository struct {
	DB *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) InvoiceRepository {
	return &PostgresInvoiceRepository{DB: db}
}

func (r *PostgresInvoiceRepository) ExistsForWorkOrder(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID) (bool, error) {
	var count int
	err := tx.GetContext(ctx, &count, `
		SELECT count(*) FROM invoices WHERE work_order_id = $1
	`, workOrderID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing invoice: %w", err)
	}
	return count > 0, nil
}

func (r *PostgresInvoiceRepository) ListApprovedLines(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID) ([]InvoiceLine, error) {
	lines := make([]InvoiceLine, 0)
	err := tx.SelectContext(ctx, &lines, `
		SELECT sp.name AS part_name, wosp.quantity_used AS quantity, sp.unit_price
		FROM work_order_spare_parts wosp
		JOIN spare_parts sp ON sp.id = wosp.spare_part_id
		WHERE wosp.work_order_id = $1 AND wosp.status = $2
		ORDER BY sp.name
	`, workOrderID, models.SparePartApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved part lines: %w", err)
	}
	return lines, nil
}

func (r *PostgresInvoiceRepository) Insert(ctx context.Context, tx *sqlx.Tx, invoice models.Invoice) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO invoices (user_id, work_order_id, invoice_text, total, invoice_date)
		VALUES ($1, $2, $3, $4, now())
	`, invoice.UserID, invoice.WorkOrderID, invoice.InvoiceText, invoice.Total)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

func (r *PostgresInvoiceRepository) GetByWorkOrder(ctx context.Context, workOrderID uuid.UUID) (models.Invoice, error) {
	var invoice models.Invoice
	err := r.DB.GetContext(ctx, &invoice, `
		SELECT id, user_id, work_order_id, invoice_text, total, invoice_date
		FROM invoices
		WHERE work_order_id = $1
	`, workOrderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, errors.Wrap(models.ErrNotFound, "invoice not found")
		}
		return models.Invoice{}, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	return invoice, nil
}
