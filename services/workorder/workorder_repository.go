package workorderservice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type WorkOrderRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, wo models.WorkOrder) (uuid.UUID, error)
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrder, error)
	Update(ctx context.Context, tx *sqlx.Tx, wo models.WorkOrder) error
	GetAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (models.Asset, error)
	UpdateAssetStatus(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID, status models.AssetStatus) error
	CloseOpenEquipment(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, returnedAt time.Time) error
	InsertInspection(ctx context.Context, tx *sqlx.Tx, inspection models.Inspection) (uuid.UUID, error)
	InsertAttachment(ctx context.Context, tx *sqlx.Tx, attachment models.WorkOrderAttachment) error
	GetByID(ctx context.Context, id uuid.UUID) (models.WorkOrder, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.WorkOrder, error)
	ListByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]models.WorkOrder, error)
	ListAll(ctx context.Context) ([]models.WorkOrder, error)
	ListEquipment(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderEquipment, error)
	ListSpareParts(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderSparePart, error)
}

type PostgresWorkOrderRepository struct {
	DB *sqlx.DB
}

func NewWorkOrderRepository(db *sqlx.DB) WorkOrderRepository {
	return &PostgresWorkOrderRepository{DB: db}
}

const workOrderColumns = `
	id, title, description, created_by_user_id, assigned_to_user_id, assigned_by_id,
	asset_id, status, priority, repair_report, sla_end_time, completed_at, created_at`

func (r *PostgresWorkOrderRepository) Insert(ctx context.Context, tx *sqlx.Tx, wo models.WorkOrder) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.GetContext(ctx, &id, `
		INSERT INTO work_orders (title, description, created_by_user_id, asset_id, status, priority, sla_end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, wo.Title, wo.Description, wo.CreatedByUserID, wo.AssetID, wo.Status, wo.Priority, wo.SLAEndTime, wo.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert work order: %w", err)
	}
	return id, nil
}

// GetForUpdate locks the work order row for the remainder of the
// transaction so concurrent lifecycle operations serialize on it.
func (r *PostgresWorkOrderRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrder, error) {
	var wo models.WorkOrder
	err := tx.GetContext(ctx, &wo, `
		SELECT `+workOrderColumns+`
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

func (r *PostgresWorkOrderRepository) Update(ctx context.Context, tx *sqlx.Tx, wo models.WorkOrder) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE work_orders
		SET assigned_to_user_id = $2, assigned_by_id = $3, status = $4, priority = $5,
			repair_report = $6, sla_end_time = $7, completed_at = $8
		WHERE id = $1
	`, wo.ID, wo.AssignedToUserID, wo.AssignedByID, wo.Status, wo.Priority,
		wo.RepairReport, wo.SLAEndTime, wo.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to update work order: %w", err)
	}
	return nil
}

func (r *PostgresWorkOrderRepository) GetAsset(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := tx.GetContext(ctx, &asset, `
		SELECT id, name, brand, model, serial_number, owner_user_id, status, created_at
		FROM assets
		WHERE id = $1
		FOR UPDATE
	`, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, errors.Wrap(models.ErrNotFound, "asset not found")
		}
		return models.Asset{}, fmt.Errorf("failed to fetch asset: %w", err)
	}
	return asset, nil
}

func (r *PostgresWorkOrderRepository) UpdateAssetStatus(ctx context.Context, tx *sqlx.Tx, assetID uuid.UUID, status models.AssetStatus) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE assets SET status = $2 WHERE id = $1
	`, assetID, status)
	if err != nil {
		return fmt.Errorf("failed to update asset status: %w", err)
	}
	return nil
}

// CloseOpenEquipment returns every still-attached equipment unit: the
// association gets its returned_at stamp and InUse units go back to
// Available. Both statements touch only open associations, so a second
// call is a no-op.
func (r *PostgresWorkOrderRepository) CloseOpenEquipment(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, returnedAt time.Time) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE equipments SET status = $2
		WHERE status = $3 AND id IN (
			SELECT equipment_id FROM work_order_equipments
			WHERE work_order_id = $1 AND returned_at IS NULL
		)
	`, workOrderID, models.EquipmentAvailable, models.EquipmentInUse)
	if err != nil {
		return fmt.Errorf("failed to release equipment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE work_order_equipments SET returned_at = $2
		WHERE work_order_id = $1 AND returned_at IS NULL
	`, workOrderID, returnedAt)
	if err != nil {
		return fmt.Errorf("failed to close equipment associations: %w", err)
	}
	return nil
}

func (r *PostgresWorkOrderRepository) InsertInspection(ctx context.Context, tx *sqlx.Tx, inspection models.Inspection) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.GetContext(ctx, &id, `
		INSERT INTO inspections (work_order_id, inspector_id, inspection_date, rating, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, inspection.WorkOrderID, inspection.InspectorID, inspection.InspectionDate, inspection.Rating, inspection.Comments)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert inspection: %w", err)
	}
	return id, nil
}

func (r *PostgresWorkOrderRepository) InsertAttachment(ctx context.Context, tx *sqlx.Tx, attachment models.WorkOrderAttachment) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO work_order_attachments (work_order_id, file_path, created_at)
		VALUES ($1, $2, now())
	`, attachment.WorkOrderID, attachment.FilePath)
	if err != nil {
		return fmt.Errorf("failed to insert attachment: %w", err)
	}
	return nil
}

func (r *PostgresWorkOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (models.WorkOrder, error) {
	var wo models.WorkOrder
	err := r.DB.GetContext(ctx, &wo, `
		SELECT `+workOrderColumns+`
		FROM work_orders
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WorkOrder{}, errors.Wrap(models.ErrNotFound, "work order not found")
		}
		return models.WorkOrder{}, fmt.Errorf("failed to fetch work order: %w", err)
	}
	return wo, nil
}

func (r *PostgresWorkOrderRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.WorkOrder, error) {
	orders := make([]models.WorkOrder, 0)
	err := r.DB.SelectContext(ctx, &orders, `
		SELECT `+workOrderColumns+`
		FROM work_orders
		WHERE created_by_user_id = $1
		ORDER BY created_at DESC
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work orders by creator: %w", err)
	}
	return orders, nil
}

func (r *PostgresWorkOrderRepository) ListByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]models.WorkOrder, error) {
	orders := make([]models.WorkOrder, 0)
	err := r.DB.SelectContext(ctx, &orders, `
		SELECT `+workOrderColumns+`
		FROM work_orders
		WHERE assigned_to_user_id = $1
		ORDER BY created_at DESC
	`, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work orders by assignee: %w", err)
	}
	return orders, nil
}

func (r *PostgresWorkOrderRepository) ListAll(ctx context.Context) ([]models.WorkOrder, error) {
	orders := make([]models.WorkOrder, 0)
	err := r.DB.SelectContext(ctx, &orders, `
		SELECT `+workOrderColumns+`
		FROM work_orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work orders: %w", err)
	}
	return orders, nil
}

func (r *PostgresWorkOrderRepository) ListEquipment(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderEquipment, error) {
	equipment := make([]models.WorkOrderEquipment, 0)
	err := r.DB.SelectContext(ctx, &equipment, `
		SELECT id, work_order_id, equipment_id, usage_notes, used_at, assigned_at, returned_at
		FROM work_order_equipments
		WHERE work_order_id = $1
		ORDER BY assigned_at ASC
	`, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work order equipment: %w", err)
	}
	return equipment, nil
}

func (r *PostgresWorkOrderRepository) ListSpareParts(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderSparePart, error) {
	parts := make([]models.WorkOrderSparePart, 0)
	err := r.DB.SelectContext(ctx, &parts, `
		SELECT id, work_order_id, spare_part_id, status, quantity_used, created_at
		FROM work_order_spare_parts
		WHERE work_order_id = $1
		ORDER BY created_at ASC
	`, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work order spare parts: %w", err)
	}
	return parts, nil
}
