package workorderservice

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"workorder/models"
	"workorder/providers"
	historyservice "workorder/services/history"
	invoiceservice "workorder/services/invoice"
	"workorder/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxAttachmentSize = 5 * 1024 * 1024 // 5 MiB

var allowedAttachmentExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type WorkOrderService interface {
	Create(ctx context.Context, req CreateWorkOrderReq, creatorID uuid.UUID) (models.WorkOrder, error)
	SaveAttachments(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string, uploads []AttachmentUpload) ([]models.WorkOrderAttachment, error)
	UpdateAssignmentAndPriority(ctx context.Context, workOrderID uuid.UUID, req UpdateAssignmentReq, managerID uuid.UUID) error
	Complete(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string, repairReport string) error
	Inspect(ctx context.Context, workOrderID, inspectorID uuid.UUID, rating int, comments string) (models.Inspection, error)
	Cancel(ctx context.Context, workOrderID, actorID uuid.UUID) error
	GetByID(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string) (WorkOrderDetailRes, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.WorkOrder, error)
	ListByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]models.WorkOrder, error)
	ListAll(ctx context.Context) ([]models.WorkOrder, error)
}

type workOrderService struct {
	repo        WorkOrderRepository
	db          *sqlx.DB
	history     historyservice.HistoryService
	invoices    invoiceservice.InvoiceService
	notifier    providers.NotificationPublisher
	attachments providers.AttachmentStore
}

func NewWorkOrderService(
	repo WorkOrderRepository,
	db *sqlx.DB,
	history historyservice.HistoryService,
	invoices invoiceservice.InvoiceService,
	notifier providers.NotificationPublisher,
	attachments providers.AttachmentStore,
) WorkOrderService {
	return &workOrderService{
		repo:        repo,
		db:          db,
		history:     history,
		invoices:    invoices,
		notifier:    notifier,
		attachments: attachments,
	}
}

func (s *workOrderService) Create(ctx context.Context, req CreateWorkOrderReq, creatorID uuid.UUID) (created models.WorkOrder, err error) {
	if err = utils.WorkOrderValidityCheck(req.Title, req.Description); err != nil {
		return models.WorkOrder{}, err
	}
	if req.Priority != nil && !models.IsValidPriority(*req.Priority) {
		return models.WorkOrder{}, errors.Wrap(models.ErrValidation, "unknown priority level")
	}
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return models.WorkOrder{}, errors.Wrap(models.ErrValidation, "invalid asset id")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.WorkOrder{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	now := utils.NowUTC()
	wo := models.WorkOrder{
		Title:           req.Title,
		Description:     req.Description,
		CreatedByUserID: creatorID,
		AssetID:         assetID,
		Status:          models.StatusCreated,
		Priority:        req.Priority,
		CreatedAt:       now,
	}
	if req.Priority != nil {
		slaEnd := models.GetSlaEndDate(now, *req.Priority)
		wo.SLAEndTime = &slaEnd
	}

	// The asset moves to OnRepair only when it actually exists; a dangling
	// reference is not an error at creation time.
	if _, assetErr := s.repo.GetAsset(ctx, tx, assetID); assetErr == nil {
		if err = s.repo.UpdateAssetStatus(ctx, tx, assetID, models.AssetOnRepair); err != nil {
			return models.WorkOrder{}, err
		}
	} else if !errors.Is(assetErr, models.ErrNotFound) {
		err = assetErr
		return models.WorkOrder{}, err
	}

	wo.ID, err = s.repo.Insert(ctx, tx, wo)
	if err != nil {
		return models.WorkOrder{}, err
	}

	if err = s.history.LogCreated(ctx, tx, wo.ID, creatorID); err != nil {
		return models.WorkOrder{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.WorkOrder{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Publish(ctx, models.EventWorkOrderCreated, models.GroupAudience(models.ManagersGroup), map[string]interface{}{
		"id":         wo.ID,
		"title":      wo.Title,
		"created_by": creatorID,
		"priority":   priorityLabel(wo.Priority),
		"created_at": wo.CreatedAt,
	})
	return wo, nil
}

func (s *workOrderService) UpdateAssignmentAndPriority(ctx context.Context, workOrderID uuid.UUID, req UpdateAssignmentReq, managerID uuid.UUID) (err error) {
	if req.Priority != nil && !models.IsValidPriority(*req.Priority) {
		return errors.Wrap(models.ErrValidation, "unknown priority level")
	}
	var newAssignee *uuid.UUID
	if req.AssignedToUserID != nil {
		parsed, parseErr := uuid.Parse(*req.AssignedToUserID)
		if parseErr != nil {
			return errors.Wrap(models.ErrValidation, "invalid assignee id")
		}
		newAssignee = &parsed
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

	wo, err := s.repo.GetForUpdate(ctx, tx, workOrderID)
	if err != nil {
		return err
	}
	if wo.Status.IsTerminal() {
		err = errors.Wrap(models.ErrConflict, "cannot reassign a completed, inspected or canceled work order")
		return err
	}

	oldAssignee := wo.AssignedToUserID
	oldPriority := wo.Priority
	oldStatus := wo.Status

	wo.Priority = req.Priority
	effectivePriority := models.PriorityMedium
	if wo.Priority != nil {
		effectivePriority = *wo.Priority
	}
	slaEnd := models.GetSlaEndDate(wo.CreatedAt, effectivePriority)
	wo.SLAEndTime = &slaEnd

	wo.AssignedToUserID = newAssignee
	wo.AssignedByID = &managerID
	wo.Status = models.StatusAssigned

	if err = s.repo.Update(ctx, tx, wo); err != nil {
		return err
	}

	assigneeChanged := !uuidPtrEqual(oldAssignee, newAssignee)
	if assigneeChanged {
		if err = s.history.LogAssignment(ctx, tx, wo.ID, managerID, oldAssignee, newAssignee); err != nil {
			return err
		}
	}
	if !priorityPtrEqual(oldPriority, req.Priority) {
		if err = s.history.LogPriority(ctx, tx, wo.ID, managerID, oldPriority, req.Priority); err != nil {
			return err
		}
	}
	if oldStatus != wo.Status {
		if err = s.history.LogStatus(ctx, tx, wo.ID, &managerID, oldStatus, wo.Status); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if assigneeChanged && newAssignee != nil {
		s.notifier.Publish(ctx, models.EventWorkOrderAssigned, models.UserAudience(*newAssignee), map[string]interface{}{
			"id":          wo.ID,
			"title":       wo.Title,
			"assigned_by": managerID,
			"priority":    priorityLabel(wo.Priority),
			"status":      wo.Status,
		})
	}
	return nil
}

func (s *workOrderService) Complete(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string, repairReport string) (err error) {
	if err = utils.ValidateRepairReport(repairReport); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, workOrderID)
	if err != nil {
		return err
	}
	if !canModifyWorkOrder(current, actorID, roles) {
		return errors.Wrap(models.ErrForbidden, "only a manager or the current assignee can complete a work order")
	}
	// Idempotent guard: completing an already terminal order is a no-op,
	// not an error. No history, no invoice, no re-stamp.
	if current.Status.IsTerminal() {
		return nil
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

	wo, err := s.repo.GetForUpdate(ctx, tx, workOrderID)
	if err != nil {
		return err
	}
	if wo.Status.IsTerminal() {
		// Lost the race to a concurrent completion or cancellation.
		return tx.Commit()
	}

	now := utils.NowUTC()
	wo.Status = models.StatusCompleted
	wo.CompletedAt = &now
	wo.RepairReport = &repairReport

	if err = s.repo.Update(ctx, tx, wo); err != nil {
		return err
	}
	if err = s.repo.CloseOpenEquipment(ctx, tx, wo.ID, now); err != nil {
		return err
	}
	if err = s.invoices.GenerateForWorkOrder(ctx, tx, wo); err != nil {
		return err
	}
	if err = s.history.LogCompleted(ctx, tx, wo.ID, actorID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if wo.AssignedByID != nil {
		s.notifier.Publish(ctx, models.EventWorkOrderCompleted, models.UserAudience(*wo.AssignedByID), map[string]interface{}{
			"id":           wo.ID,
			"title":        wo.Title,
			"completed_by": actorID,
			"priority":     priorityLabel(wo.Priority),
			"completed_at": wo.CompletedAt,
		})
	}
	return nil
}

func (s *workOrderService) Inspect(ctx context.Context, workOrderID, inspectorID uuid.UUID, rating int, comments string) (inspection models.Inspection, err error) {
	if err = utils.ValidateRating(rating); err != nil {
		return models.Inspection{}, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Inspection{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	wo, err := s.repo.GetForUpdate(ctx, tx, workOrderID)
	if err != nil {
		return models.Inspection{}, err
	}

	inspection = models.Inspection{
		WorkOrderID:    wo.ID,
		InspectorID:    inspectorID,
		InspectionDate: utils.NowUTC(),
		Rating:         rating,
		Comments:       comments,
	}
	inspection.ID, err = s.repo.InsertInspection(ctx, tx, inspection)
	if err != nil {
		return models.Inspection{}, err
	}

	wo.Status = models.StatusInspected
	if err = s.repo.Update(ctx, tx, wo); err != nil {
		return models.Inspection{}, err
	}
	if err = s.repo.UpdateAssetStatus(ctx, tx, wo.AssetID, models.AssetSentToOwner); err != nil {
		return models.Inspection{}, err
	}
	if err = s.history.LogInspection(ctx, tx, wo.ID, inspectorID); err != nil {
		return models.Inspection{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.Inspection{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	recipients := make([]uuid.UUID, 0, 2)
	if wo.AssignedToUserID != nil {
		recipients = append(recipients, *wo.AssignedToUserID)
	}
	recipients = append(recipients, wo.CreatedByUserID)
	s.notifier.Publish(ctx, models.EventWorkOrderInspected, models.UserAudience(recipients...), map[string]interface{}{
		"id":           wo.ID,
		"title":        wo.Title,
		"inspected_by": inspectorID,
		"rating":       rating,
		"comments":     comments,
	})
	return inspection, nil
}

func (s *workOrderService) Cancel(ctx context.Context, workOrderID, actorID uuid.UUID) (err error) {
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

	wo, err := s.repo.GetForUpdate(ctx, tx, workOrderID)
	if err != nil {
		return err
	}

	isCreator := wo.CreatedByUserID == actorID
	isAssigner := wo.AssignedByID != nil && *wo.AssignedByID == actorID
	if !isCreator && !isAssigner {
		err = errors.Wrap(models.ErrForbidden, "only the creator or the assigning manager can cancel a work order")
		return err
	}
	if wo.Status.IsTerminal() {
		err = errors.Wrap(models.ErrConflict, "cannot cancel a completed, inspected or canceled work order")
		return err
	}

	oldStatus := wo.Status
	now := utils.NowUTC()
	wo.Status = models.StatusCanceled

	if err = s.repo.Update(ctx, tx, wo); err != nil {
		return err
	}
	if err = s.repo.CloseOpenEquipment(ctx, tx, wo.ID, now); err != nil {
		return err
	}
	if err = s.history.LogStatus(ctx, tx, wo.ID, &actorID, oldStatus, wo.Status); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if wo.AssignedToUserID != nil {
		s.notifier.Publish(ctx, models.EventWorkOrderCanceled, models.UserAudience(*wo.AssignedToUserID), map[string]interface{}{
			"id":          wo.ID,
			"title":       wo.Title,
			"canceled_by": actorID,
		})
	}
	return nil
}

// SaveAttachments filters and stores uploaded images for a work order.
// Files failing the content type, extension or size checks are skipped
// silently, matching the upload contract: partial success is success.
func (s *workOrderService) SaveAttachments(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string, uploads []AttachmentUpload) (saved []models.WorkOrderAttachment, err error) {
	wo, err := s.repo.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo.CreatedByUserID != actorID && !models.HasRole(roles, models.ManagerRole) {
		return nil, errors.Wrap(models.ErrForbidden, "only the creator or a manager can attach files")
	}

	stored := make([]models.WorkOrderAttachment, 0, len(uploads))
	for _, upload := range uploads {
		if upload.Size <= 0 || upload.Size > maxAttachmentSize {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(upload.ContentType), "image/") {
			continue
		}
		if !allowedAttachmentExts[strings.ToLower(filepath.Ext(upload.FileName))] {
			continue
		}

		path, storeErr := s.attachments.Store(ctx, workOrderID, upload.FileName, upload.ContentType, upload.Size, upload.Reader)
		if storeErr != nil {
			utils.Logger.Warn("failed to store attachment, skipping",
				zap.String("file", upload.FileName), zap.Error(storeErr))
			continue
		}
		stored = append(stored, models.WorkOrderAttachment{
			WorkOrderID: workOrderID,
			FilePath:    path,
		})
	}

	if len(stored) == 0 {
		return []models.WorkOrderAttachment{}, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	for _, attachment := range stored {
		if err = s.repo.InsertAttachment(ctx, tx, attachment); err != nil {
			return nil, err
		}
		if err = s.history.LogAttachmentAdded(ctx, tx, workOrderID, attachment.FilePath); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return stored, nil
}

func (s *workOrderService) GetByID(ctx context.Context, workOrderID, actorID uuid.UUID, roles []string) (WorkOrderDetailRes, error) {
	wo, err := s.repo.GetByID(ctx, workOrderID)
	if err != nil {
		return WorkOrderDetailRes{}, err
	}

	isCreator := wo.CreatedByUserID == actorID
	isAssignee := wo.AssignedToUserID != nil && *wo.AssignedToUserID == actorID
	if !isCreator && !isAssignee && !models.HasRole(roles, models.ManagerRole) {
		return WorkOrderDetailRes{}, errors.Wrap(models.ErrForbidden, "no access to this work order")
	}

	equipment, err := s.repo.ListEquipment(ctx, workOrderID)
	if err != nil {
		return WorkOrderDetailRes{}, err
	}
	parts, err := s.repo.ListSpareParts(ctx, workOrderID)
	if err != nil {
		return WorkOrderDetailRes{}, err
	}
	return WorkOrderDetailRes{WorkOrder: wo, Equipment: equipment, SpareParts: parts}, nil
}

func (s *workOrderService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.WorkOrder, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

func (s *workOrderService) ListByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]models.WorkOrder, error) {
	return s.repo.ListByAssignee(ctx, assigneeID)
}

func (s *workOrderService) ListAll(ctx context.Context) ([]models.WorkOrder, error) {
	return s.repo.ListAll(ctx)
}

func canModifyWorkOrder(wo models.WorkOrder, actorID uuid.UUID, roles []string) bool {
	if models.HasRole(roles, models.ManagerRole) {
		return true
	}
	return wo.AssignedToUserID != nil && *wo.AssignedToUserID == actorID
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func priorityPtrEqual(a, b *models.PriorityLevel) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func priorityLabel(p *models.PriorityLevel) string {
	if p == nil {
		return "-"
	}
	return string(*p)
}
