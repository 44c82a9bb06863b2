package equipmentservice

import (
	"context"
	"fmt"

	"workorder/models"
	historyservice "workorder/services/history"
	"workorder/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type EquipmentService interface {
	AddToWorkOrder(ctx context.Context, req AddEquipmentReq, actorID uuid.UUID, roles []string) error
	CreateEquipment(ctx context.Context, req CreateEquipmentReq) (models.Equipment, error)
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
}

type equipmentService struct {
	repo    EquipmentRepository
	db      *sqlx.DB
	history historyservice.HistoryService
}

func NewEquipmentService(repo EquipmentRepository, db *sqlx.DB, history historyservice.HistoryService) EquipmentService {
	return &equipmentService{repo: repo, db: db, history: history}
}

// AddToWorkOrder attaches an equipment unit to a work order and marks it
// InUse. The first equipment action moves an Assigned order to InProgress.
// Release only happens in bulk, when the order completes or is canceled.
func (s *equipmentService) AddToWorkOrder(ctx context.Context, req AddEquipmentReq, actorID uuid.UUID, roles []string) (err error) {
	workOrderID, err := uuid.Parse(req.WorkOrderID)
	if err != nil {
		return errors.Wrap(models.ErrValidation, "invalid work order id")
	}
	equipmentID, err := uuid.Parse(req.EquipmentID)
	if err != nil {
		return errors.Wrap(models.ErrValidation, "invalid equipment id")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	wo, err := s.repo.GetWorkOrderForUpdate(ctx, tx, workOrderID)
	if err != nil {
		return err
	}

	canModify := models.HasRole(roles, models.ManagerRole) ||
		(wo.AssignedToUserID != nil && *wo.AssignedToUserID == actorID)
	if !canModify {
		err = errors.Wrap(models.ErrForbidden, "only a manager or the current assignee can add equipment")
		return err
	}
	if wo.Status == models.StatusCompleted {
		err = errors.Wrap(models.ErrConflict, "cannot add equipment to a completed work order")
		return err
	}

	equipment, err := s.repo.GetEquipmentForUpdate(ctx, tx, equipmentID)
	if err != nil {
		return err
	}

	now := utils.NowUTC()
	association := models.WorkOrderEquipment{
		WorkOrderID: workOrderID,
		EquipmentID: equipment.ID,
		UsageNotes:  req.UsageNotes,
		UsedAt:      now,
		AssignedAt:  now,
	}
	if err = s.repo.InsertAssociation(ctx, tx, association); err != nil {
		return err
	}
	if err = s.repo.UpdateEquipmentStatus(ctx, tx, equipment.ID, models.EquipmentInUse); err != nil {
		return err
	}

	if wo.Status == models.StatusAssigned {
		if err = s.repo.UpdateWorkOrderStatus(ctx, tx, wo.ID, models.StatusInProgress); err != nil {
			return err
		}
	}

	if err = s.history.LogEquipmentAdded(ctx, tx, wo.ID, actorID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *equipmentService) CreateEquipment(ctx context.Context, req CreateEquipmentReq) (models.Equipment, error) {
	equipment := models.Equipment{
		Name:         req.Name,
		Type:         req.Type,
		Status:       models.EquipmentAvailable,
		PurchaseDate: req.PurchaseDate,
	}
	return s.repo.InsertEquipment(ctx, equipment)
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	return s.repo.ListEquipment(ctx)
}
