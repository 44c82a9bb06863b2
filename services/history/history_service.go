package historyservice

import (
	"context"

	"workorder/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Audit action tags. Free-form strings on the wire, but only these are
// ever written.
const (
	ActionCreated            = "Created"
	ActionStatusChanged      = "StatusChanged"
	ActionAssignedTo         = "AssignedTo"
	ActionPriorityChanged    = "PriorityChanged"
	ActionEquipmentAdded     = "EquipmentAdded"
	ActionSparePartRequested = "SparePartRequested"
	ActionSparePartApproved  = "SparePartApproved"
	ActionSparePartRejected  = "SparePartRejected"
	ActionAttachmentAdded    = "AttachmentAdded"
	ActionInspectionRecorded = "InspectionRecorded"
	ActionCompleted          = "Completed"
)

// HistoryService appends immutable audit entries for work order changes.
// Every write takes the caller's transaction so the entry commits together
// with the mutation it records.
type HistoryService interface {
	Log(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, changedBy *uuid.UUID, action string, oldValue, newValue *string) error
	LogCreated(ctx context.Context, tx *sqlx.Tx, workOrderID, createdBy uuid.UUID) error
	LogStatus(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, changedBy *uuid.UUID, oldStatus, newStatus models.WorkOrderStatus) error
	LogAssignment(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID, oldAssignee, newAssignee *uuid.UUID) error
	LogPriority(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID, oldPriority, newPriority *models.PriorityLevel) error
	LogEquipmentAdded(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error
	LogSparePartRequested(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error
	LogSparePartApproved(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error
	LogSparePartRejected(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error
	LogAttachmentAdded(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, filePath string) error
	LogInspection(ctx context.Context, tx *sqlx.Tx, workOrderID, inspectorID uuid.UUID) error
	LogCompleted(ctx context.Context, tx *sqlx.Tx, workOrderID, completedBy uuid.UUID) error
	ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderHistory, error)
}

type historyService struct {
	repo HistoryRepository
}

func NewHistoryService(repo HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Log(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, changedBy *uuid.UUID, action string, oldValue, newValue *string) error {
	return s.repo.Insert(ctx, tx, models.WorkOrderHistory{
		WorkOrderID:     workOrderID,
		ChangedByUserID: changedBy,
		Action:          action,
		OldValue:        oldValue,
		NewValue:        newValue,
	})
}

func (s *historyService) LogCreated(ctx context.Context, tx *sqlx.Tx, workOrderID, createdBy uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &createdBy, ActionCreated, nil, nil)
}

func (s *historyService) LogStatus(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, changedBy *uuid.UUID, oldStatus, newStatus models.WorkOrderStatus) error {
	oldVal, newVal := string(oldStatus), string(newStatus)
	return s.Log(ctx, tx, workOrderID, changedBy, ActionStatusChanged, &oldVal, &newVal)
}

func (s *historyService) LogAssignment(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID, oldAssignee, newAssignee *uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &changedBy, ActionAssignedTo, uuidString(oldAssignee), uuidString(newAssignee))
}

func (s *historyService) LogPriority(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID, oldPriority, newPriority *models.PriorityLevel) error {
	return s.Log(ctx, tx, workOrderID, &changedBy, ActionPriorityChanged, priorityString(oldPriority), priorityString(newPriority))
}

func (s *historyService) LogEquipmentAdded(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &changedBy, ActionEquipmentAdded, nil, nil)
}

func (s *historyService) LogSparePartRequested(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &changedBy, ActionSparePartRequested, nil, nil)
}

func (s *historyService) LogSparePartApproved(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &changedBy, ActionSparePartApproved, nil, nil)
}

func (s *historyService) LogSparePartRejected(ctx context.Context, tx *sqlx.Tx, workOrderID, changedBy uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &changedBy, ActionSparePartRejected, nil, nil)
}

func (s *historyService) LogAttachmentAdded(ctx context.Context, tx *sqlx.Tx, workOrderID uuid.UUID, filePath string) error {
	return s.Log(ctx, tx, workOrderID, nil, ActionAttachmentAdded, nil, &filePath)
}

func (s *historyService) LogInspection(ctx context.Context, tx *sqlx.Tx, workOrderID, inspectorID uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &inspectorID, ActionInspectionRecorded, nil, nil)
}

func (s *historyService) LogCompleted(ctx context.Context, tx *sqlx.Tx, workOrderID, completedBy uuid.UUID) error {
	return s.Log(ctx, tx, workOrderID, &completedBy, ActionCompleted, nil, nil)
}

func (s *historyService) ListByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]models.WorkOrderHistory, error) {
	return s.repo.ListByWorkOrder(ctx, workOrderID)
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func priorityString(p *models.PriorityLevel) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}
