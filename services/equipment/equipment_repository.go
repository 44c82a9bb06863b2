package equipmentservice

import (
	"context"
	"database/sql"
	"fmt"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type EquipmentRepository interface {
	GetWorkOrderForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrder, error)
	GetEquipmentForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.Equipment, error)
	InsertAssociation(ctx context.Context, tx *sqlx.Tx, association models.WorkOrderEquipment) error
	UpdateEquipmentStatus(ctx context.Context, tx *sqlx.Tx, equipmentID uuid.UUID, status models.EquipmentStatus) error
	UpdateWorkOrderStatus(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, status models.WorkOrderStatus) error
	InsertEquipment(ctx context.Context, equipment models.Equipment) (models.Equipment, error)
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
}

type PostgresEquipmentRepository struct {
	DB *sqlx.DB
}

func NewEquipmentRepository(db *sqlx.DB) EquipmentRepository {
	return &PostgresEquipmentRepository{DB: db}
}

func (r *PostgresEquipmentRepository) GetWorkOrderForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.WorkOrder, error) {
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

func (r *PostgresEquipmentRepository) GetEquipmentForUpdate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (models.Equipment, error) {
	var equipment models.Equipment
	err := tx.GetContext(ctx, &equipment, `
		SELECT id, name, type, status, purchase_date, created_at
		FROM equipments
		WHERE id = $1
		FOR UPDATE
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Equipment{}, errors.Wrap(models.ErrNotFound, "equipment not found")
		}
		return models.Equipment{}, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return equipment, nil
}

func (r *PostgresEquipmentRepository) InsertAssociation(ctx context.Context, tx *sqlx.Tx, association models.WorkOrderEquipment) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO work_order_equipments (work_order_id, equipment_id, usage_notes, used_at, assigned_at)
		VALUES ($1, $2, $3, $4, $5)
	`, association.WorkOrderID, association.EquipmentID, association.UsageNotes, association.UsedAt, association.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to insert equipment association: %w", err)
	}
	return nil
}

func (r *PostgresEquipmentRepository) UpdateEquipmentStatus(ctx context.Context, tx *sqlx.Tx, equipmentID uuid.UUID, status models.EquipmentStatus) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE equipments SET status = $2 WHERE id = $1
	`, equipmentID, status)
	if err != nil {
		return fmt.Errorf("failed to update equipment status: %w", err)
	}
	return nil
}

func (r *PostgresEquipmentRepository) UpdateWorkOrderStatus(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, status models.WorkOrderStatus) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE work_orders SET status = $2 WHERE id = $1
	`, workOrderID, status)
	if err != nil {
		return fmt.Errorf("failed to update work order status: %w", err)
	}
	return nil
}

func (r *PostgresEquipmentRepository) InsertEquipment(ctx context.Context, equipment models.Equipment) (models.Equipment, error) {
	err := r.DB.GetContext(ctx, &equipment.ID, `
		INSERT INTO equipments (name, type, status, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id
	`, equipment.Name, equipment.Type, equipment.Status, equipment.PurchaseDate)
	if err != nil {
		return models.Equipment{}, fmt.Errorf("failed to insert equipment: %w", err)
	}
	return equipment, nil
}

func (r *PostgresEquipmentRepository) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	equipment := make([]models.Equipment, 0)
	err := r.DB.SelectContext(ctx, &equipment, `
		SELECT id, name, type, status, purchase_date, created_at
		FROM equipments
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return equipment, nil
}
