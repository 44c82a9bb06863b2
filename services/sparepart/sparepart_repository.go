package sparepartservice

import (
	"context"
	"database/sql"
	"fmt"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type SparePartRepository interface {
	GetWorkOrderForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrder, error)
	GetSparePart(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.SparePart, error)
	InsertRequest(ctx context.Context, tx *sqlx.Tx, request models.WorkOrderSparePart) (uuid.UUID, error)
	GetRequestForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrderSparePart, error)
	UpdateRequestStatus(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID, status models.SparePartStatus) error
	DecrementStock(ctx context.Context, tx *sqlx.Tx, sparePartID uuid.UUID, quantity int) error
	UpdateWorkOrderStatus(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, status models.WorkOrderStatus) error
	InsertSparePart(ctx context.Context, part models.SparePart) (models.SparePart, error)
	ListSpareParts(ctx context.Context) ([]models.SparePart, error)
}

type PostgresSparePartRepository struct {
	DB *sqlx.DB
}

func NewSparePartRepository(db *sqlx.DB) SparePartRepository {
	return &PostgresSparePartRepository{DB: db}
}

func (r *PostgresSparePartRepository) GetWorkOrderForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrder, error) {
	var wo models.WorkOrder
	err := tx.GetContext(ctx, &wo, `
		SELECT id, title, description, created_by_user_id, assigned_to_user_id, assigned_by_id,
			asset_id, status, priority, repair_report, sla_end_time, completed_at, created_at
		FROM work_orders
		WHERE id = $1
		FOR UPDATE
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WorkOrder{}, errors.Wrap(models.ErrNotFound, "work order not found")
		}
		return models.WorkOrder{}, fmt.Errorf("failed to fetch work order: %w", err)
	}
	return wo, nil
}

func (r *PostgresSparePartRepository) GetSparePart(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.SparePart, error) {
	var part models.SparePart
	err := tx.GetContext(ctx, &part, `
		SELECT id, name, stock, unit_price
		FROM spare_parts
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SparePart{}, errors.Wrap(models.ErrNotFound, "spare part not found")
		}
		return models.SparePart{}, fmt.Errorf("failed to fetch spare part: %w", err)
	}
	return part, nil
}

func (r *PostgresSparePartRepository) InsertRequest(ctx context.Context, tx *sqlx.Tx, request models.WorkOrderSparePart) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.GetContext(ctx, &id, `
		INSERT INTO work_order_spare_parts (work_order_id, spare_part_id, status, quantity_used, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id
	`, request.WorkOrderID, request.SparePartID, request.Status, request.QuantityUsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert spare part request: %w", err)
	}
	return id, nil
}

func (r *PostgresSparePartRepository) GetRequestForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrderSparePart, error) {
	var request models.WorkOrderSparePart
	err := tx.GetContext(ctx, &request, `
		SELECT id, work_order_id, spare_part_id, status, quantity_used, created_at
		FROM work_order_spare_parts
		WHERE id = $1
		FOR UPDATE
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WorkOrderSparePart{}, errors.Wrap(models.ErrNotFound, "spare part request not found")
		}
		return models.WorkOrderSparePart{}, fmt.Errorf("failed to fetch spare part request: %w", err)
	}
	return request, nil
}

func (r *PostgresSparePartRepository) UpdateRequestStatus(ctx context.Context, tx *sqlx.Tx, requestID uuid.UUID, status models.SparePartStatus) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE work_order_spare_parts SET status = $2 WHERE id = $1
	`, requestID, status)
	if err != nil {
		return fmt.Errorf("failed to update spare part request status: %w", err)
	}
	return nil
}

// DecrementStock only succeeds when enough stock remains, so concurrent
// approvals cannot drive the counter negative.
func (r *PostgresSparePartRepository) DecrementStock(ctx context.Context, tx *sqlx.Tx, sparePartID uuid.UUID, quantity int) error {
	result, err := tx.ExecContext(ctx, `
		UPDATE spare_parts SET stock = stock - $2 WHERE id = $1 AND stock >= $2
	`, sparePartID, quantity)
	if err != nil {
		return fmt.Errorf("failed to decrement spare part stock: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read decrement result: %w", err)
	}
	if affected == 0 {
		return errors.Wrap(models.ErrConflict, "insufficient spare part stock")
	}
	return nil
}

func (r *PostgresSparePartRepository) UpdateWorkOrderStatus(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, status models.WorkOrderStatus) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE work_orders SET status = $2 WHERE id = $1
	`, workOrderID, status)
	if err != nil {
		return fmt.Errorf("failed to update work order status: %w", err)
	}
	return nil
}

func (r *PostgresSparePartRepository) InsertSparePart(ctx context.Context, part models.SparePart) (models.SparePart, error) {
	err := r.DB.GetContext(ctx, &part.ID, `
		INSERT INTO spare_parts (name, stock, unit_price)
		VALUES ($1, $2, $3)
		RETURNING id
	`, part.Name, part.Stock, part.UnitPrice)
	if err != nil {
		return models.SparePart{}, fmt.Errorf("failed to insert spare part: %w", err)
	}
	return part, nil
}

func (r *PostgresSparePartRepository) ListSpareParts(ctx context.Context) ([]models.SparePart, error) {
	parts := make([]models.SparePart, 0)
	err := r.DB.SelectContext(ctx, &parts, `
		SELECT id, name, stock, unit_price
		FROM spare_parts
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spare parts: %w", err)
	}
	return parts, nil
}
