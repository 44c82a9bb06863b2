package sparepartservice

import (
	"context"
	"fmt"

	"workorder/models"
	"workorder/providers"
	historyservice "workorder/services/history"
	"workorder/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type SparePartService interface {
	Request(ctx context.Context, req RequestSparePartReq, actorID uuid.UUID, roles []string) (uuid.UUID, error)
	Approve(ctx context.Context, requestID, actorID uuid.UUID) error
	Reject(ctx context.Context, requestID, actorID uuid.UUID) error
	CreateSparePart(ctx context.Context, req CreateSparePartReq) (models.SparePart, error)
	ListSpareParts(ctx context.Context) ([]models.SparePart, error)
}

type sparePartService struct {
	repo     SparePartRepository
	db       *sqlx.DB
	history  historyservice.HistoryService
	notifier providers.NotificationPublisher
}

func NewSparePartService(repo SparePartRepository, db *sqlx.DB, history historyservice.HistoryService, notifier providers.NotificationPublisher) SparePartService {
	return &sparePartService{repo: repo, db: db, history: history, notifier: notifier}
}

// Request records a Requested spare part association. Stock is checked only
// to warn the requester; the request is recorded either way and the real
// check happens at approval time.
func (s *sparePartService) Request(ctx context.Context, req RequestSparePartReq, actorID uuid.UUID, roles []string) (requestID uuid.UUID, err error) {
	if err = utils.ValidateQuantity(req.Quantity); err != nil {
		return uuid.Nil, err
	}
	workOrderID, err := uuid.Parse(req.WorkOrderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(models.ErrValidation, "invalid work order id")
	}
	sparePartID, err := uuid.Parse(req.SparePartID)
	if err != nil {
		return uuid.Nil, errors.Wrap(models.ErrValidation, "invalid spare part id")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
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
		return uuid.Nil, err
	}

	canRequest := models.HasRole(roles, models.ManagerRole) ||
		(wo.AssignedToUserID != nil && *wo.AssignedToUserID == actorID)
	if !canRequest {
		err = errors.Wrap(models.ErrForbidden, "only a manager or the current assignee can request spare parts")
		return uuid.Nil, err
	}
	if wo.Status == models.StatusCompleted {
		err = errors.Wrap(models.ErrConflict, "cannot request spare parts for a completed work order")
		return uuid.Nil, err
	}

	part, err := s.repo.GetSparePart(ctx, tx, sparePartID)
	if err != nil {
		return uuid.Nil, err
	}
	if part.Stock < req.Quantity {
		utils.Logger.Warn("spare part requested beyond current stock",
			zap.String("work_order_id", workOrderID.String()),
			zap.String("spare_part_id", sparePartID.String()),
			zap.Int("requested", req.Quantity),
			zap.Int("stock", part.Stock))
	}

	requestID, err = s.repo.InsertRequest(ctx, tx, models.WorkOrderSparePart{
		WorkOrderID:  workOrderID,
		SparePartID:  sparePartID,
		Status:       models.SparePartRequested,
		QuantityUsed: req.Quantity,
	})
	if err != nil {
		return uuid.Nil, err
	}

	if wo.Status == models.StatusAssigned || wo.Status == models.StatusInProgress {
		if err = s.repo.UpdateWorkOrderStatus(ctx, tx, wo.ID, models.StatusPartsOrdered); err != nil {
			return uuid.Nil, err
		}
	}

	if err = s.history.LogSparePartRequested(ctx, tx, wo.ID, actorID); err != nil {
		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.notifier.Publish(ctx, models.EventSparePartRequested, models.UserAudience(wo.CreatedByUserID), map[string]interface{}{
		"work_order_id": wo.ID.String(),
		"spare_part_id": sparePartID.String(),
		"quantity":      req.Quantity,
	})
	return requestID, nil
}

// Approve is restricted to the work order creator. The stock decrement and
// the status flip share one transaction so an insufficient stock race leaves
// both untouched.
func (s *sparePartService) Approve(ctx context.Context, requestID, actorID uuid.UUID) (err error) {
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

	request, err := s.repo.GetRequestForUpdate(ctx, tx, requestID)
	if err != nil {
		return err
	}
	wo, err := s.repo.GetWorkOrderForUpdate(ctx, tx, request.WorkOrderID)
	if err != nil {
		return err
	}
	if wo.CreatedByUserID != actorID {
		err = errors.Wrap(models.ErrForbidden, "only the work order creator can approve spare parts")
		return err
	}
	if request.Status != models.SparePartRequested {
		err = errors.Wrap(models.ErrConflict, "spare part request already decided")
		return err
	}

	if err = s.repo.DecrementStock(ctx, tx, request.SparePartID, request.QuantityUsed); err != nil {
		return err
	}
	if err = s.repo.UpdateRequestStatus(ctx, tx, request.ID, models.SparePartApproved); err != nil {
		return err
	}

	newStatus := wo.Status
	if wo.Status == models.StatusPartsOrdered {
		newStatus = models.StatusInProgress
		if err = s.repo.UpdateWorkOrderStatus(ctx, tx, wo.ID, newStatus); err != nil {
			return err
		}
	}
	if err = s.history.LogStatus(ctx, tx, wo.ID, &actorID, wo.Status, newStatus); err != nil {
		return err
	}
	if err = s.history.LogSparePartApproved(ctx, tx, wo.ID, actorID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if wo.AssignedToUserID != nil {
		s.notifier.Publish(ctx, models.EventSparePartApproved, models.UserAudience(*wo.AssignedToUserID), map[string]interface{}{
			"work_order_id": wo.ID.String(),
			"request_id":    request.ID.String(),
		})
	}
	return nil
}

func (s *sparePartService) Reject(ctx context.Context, requestID, actorID uuid.UUID) (err error) {
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

	request, err := s.repo.GetRequestForUpdate(ctx, tx, requestID)
	if err != nil {
		return err
	}
	wo, err := s.repo.GetWorkOrderForUpdate(ctx, tx, request.WorkOrderID)
	if err != nil {
		return err
	}
	if wo.CreatedByUserID != actorID {
		err = errors.Wrap(models.ErrForbidden, "only the work order creator can reject spare parts")
		return err
	}
	if request.Status != models.SparePartRequested {
		err = errors.Wrap(models.ErrConflict, "spare part request already decided")
		return err
	}

	if err = s.repo.UpdateRequestStatus(ctx, tx, request.ID, models.SparePartRejected); err != nil {
		return err
	}
	if err = s.history.LogSparePartRejected(ctx, tx, wo.ID, actorID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if wo.AssignedToUserID != nil {
		s.notifier.Publish(ctx, models.EventSparePartRejected, models.UserAudience(*wo.AssignedToUserID), map[string]interface{}{
			"work_order_id": wo.ID.String(),
			"request_id":    request.ID.String(),
		})
	}
	return nil
}

func (s *sparePartService) CreateSparePart(ctx context.Context, req CreateSparePartReq) (models.SparePart, error) {
	part := models.SparePart{
		Name:      req.Name,
		Stock:     req.Stock,
		UnitPrice: req.UnitPrice,
	}
	return s.repo.InsertSparePart(ctx, part)
}

func (s *sparePartService) ListSpareParts(ctx context.Context) ([]models.SparePart, error) {
	return s.repo.ListSpareParts(ctx)
}
