package historyservice

import (
	"context"
	"fmt"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type HistoryRepository interface {
	Insert(ctx context.Context, tx *sqlx.Tx, entry models.WorkOrderHistory) error
	ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderHistory, error)
}

type PostgresHistoryRepository struct {
	DB *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &PostgresHistoryRepository{DB: db}
}

func (r *PostgresHistoryRepository) Insert(ctx context.Context, tx *sqlx.Tx, entry models.WorkOrderHistory) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO work_order_histories (work_order_id, action, old_value, new_value, changed_by_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, entry.WorkOrderID, entry.Action, entry.OldValue, entry.NewValue, entry.ChangedByUserID)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *PostgresHistoryRepository) ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderHistory, error) {
	entries := make([]models.WorkOrderHistory, 0)
	err := r.DB.SelectContext(ctx, &entries, `
		SELECT id, work_order_id, action, old_value, new_value, changed_by_user_id, created_at
		FROM work_order_histories
		WHERE work_order_id = $1
		ORDER BY created_at ASC
	`, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work order history: %w", err)
	}
	return entries, nil
}
