package workorderservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"workorder/models"
	"workorder/providers"
	historyservice "workorder/services/history"
	invoiceservice "workorder/services/invoice"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	service     *workOrderService
	repo        *MockWorkOrderRepository
	history     *historyservice.MockHistoryService
	invoices    *invoiceservice.MockInvoiceService
	notifier    *providers.MockNotificationPublisher
	attachments *providers.MockAttachmentStore
	sqlMock     sqlmock.Sqlmock
}

func newServiceFixture(t *testing.T, ctrl *gomock.Controller) *serviceFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &serviceFixture{
		repo:        NewMockWorkOrderRepository(ctrl),
		history:     historyservice.NewMockHistoryService(ctrl),
		invoices:    invoiceservice.NewMockInvoiceService(ctrl),
		notifier:    providers.NewMockNotificationPublisher(ctrl),
		attachments: providers.NewMockAttachmentStore(ctrl),
		sqlMock:     mock,
	}
	f.service = &workOrderService{
		repo:        f.repo,
		db:          sqlx.NewDb(db, "sqlmock"),
		history:     f.history,
		invoices:    f.invoices,
		notifier:    f.notifier,
		attachments: f.attachments,
	}
	return f
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	creatorID := uuid.New()
	assetID := uuid.New()

	t.Run("rejects empty title", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		_, err := f.service.Create(ctx, CreateWorkOrderReq{
			Title:       "  ",
			Description: "laptop will not boot",
			AssetID:     assetID.String(),
		}, creatorID)

		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("critical priority sets a two day deadline", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		critical := models.PriorityCritical
		workOrderID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetAsset(ctx, gomock.Any(), assetID).
			Return(models.Asset{ID: assetID, Status: models.AssetNew}, nil)
		f.repo.EXPECT().UpdateAssetStatus(ctx, gomock.Any(), assetID, models.AssetOnRepair).
			Return(nil)
		f.repo.EXPECT().Insert(ctx, gomock.Any(), gomock.Any()).
			Return(workOrderID, nil)
		f.history.EXPECT().LogCreated(ctx, gomock.Any(), workOrderID, creatorID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventWorkOrderCreated, models.GroupAudience(models.ManagersGroup), gomock.Any())

		created, err := f.service.Create(ctx, CreateWorkOrderReq{
			Title:       "broken screen",
			Description: "screen cracked after drop",
			AssetID:     assetID.String(),
			Priority:    &critical,
		}, creatorID)

		require.NoError(t, err)
		assert.Equal(t, workOrderID, created.ID)
		assert.Equal(t, models.StatusCreated, created.Status)
		require.NotNil(t, created.SLAEndTime)
		assert.True(t, created.SLAEndTime.Equal(created.CreatedAt.Add(48*time.Hour)))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing asset is tolerated", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		workOrderID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetAsset(ctx, gomock.Any(), assetID).
			Return(models.Asset{}, errors.Wrap(models.ErrNotFound, "asset not found"))
		f.repo.EXPECT().Insert(ctx, gomock.Any(), gomock.Any()).
			Return(workOrderID, nil)
		f.history.EXPECT().LogCreated(ctx, gomock.Any(), workOrderID, creatorID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventWorkOrderCreated, gomock.Any(), gomock.Any())

		created, err := f.service.Create(ctx, CreateWorkOrderReq{
			Title:       "noisy fan",
			Description: "fan rattles under load",
			AssetID:     assetID.String(),
		}, creatorID)

		require.NoError(t, err)
		assert.Nil(t, created.SLAEndTime)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestUpdateAssignmentAndPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	managerID := uuid.New()
	workOrderID := uuid.New()
	technicianID := uuid.New()

	t.Run("terminal order cannot be reassigned", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{ID: workOrderID, Status: models.StatusCanceled}, nil)
		f.sqlMock.ExpectRollback()

		assignee := technicianID.String()
		err := f.service.UpdateAssignmentAndPriority(ctx, workOrderID, UpdateAssignmentReq{
			AssignedToUserID: &assignee,
		}, managerID)

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("records history only for what changed", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		high := models.PriorityHigh
		createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:              workOrderID,
				Title:           "broken screen",
				CreatedByUserID: uuid.New(),
				Status:          models.StatusCreated,
				CreatedAt:       createdAt,
			}, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, wo models.WorkOrder) error {
				assert.Equal(t, models.StatusAssigned, wo.Status)
				require.NotNil(t, wo.SLAEndTime)
				assert.True(t, wo.SLAEndTime.Equal(createdAt.AddDate(0, 0, 7)))
				require.NotNil(t, wo.AssignedToUserID)
				assert.Equal(t, technicianID, *wo.AssignedToUserID)
				return nil
			})
		f.history.EXPECT().LogAssignment(ctx, gomock.Any(), workOrderID, managerID, nil, gomock.Any()).
			Return(nil)
		f.history.EXPECT().LogPriority(ctx, gomock.Any(), workOrderID, managerID, nil, &high).
			Return(nil)
		f.history.EXPECT().LogStatus(ctx, gomock.Any(), workOrderID, &managerID, models.StatusCreated, models.StatusAssigned).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventWorkOrderAssigned, models.UserAudience(technicianID), gomock.Any())

		assignee := technicianID.String()
		err := f.service.UpdateAssignmentAndPriority(ctx, workOrderID, UpdateAssignmentReq{
			AssignedToUserID: &assignee,
			Priority:         &high,
		}, managerID)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("unassigned order falls back to the medium deadline", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:        workOrderID,
				Status:    models.StatusCreated,
				CreatedAt: createdAt,
			}, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, wo models.WorkOrder) error {
				require.NotNil(t, wo.SLAEndTime)
				assert.True(t, wo.SLAEndTime.Equal(createdAt.AddDate(0, 0, 15)))
				return nil
			})
		f.history.EXPECT().LogStatus(ctx, gomock.Any(), workOrderID, &managerID, models.StatusCreated, models.StatusAssigned).
			Return(nil)
		f.sqlMock.ExpectCommit()

		err := f.service.UpdateAssignmentAndPriority(ctx, workOrderID, UpdateAssignmentReq{}, managerID)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workOrderID := uuid.New()
	technicianID := uuid.New()
	managerID := uuid.New()
	report := "replaced the cracked panel"

	t.Run("rejects an empty repair report", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		err := f.service.Complete(ctx, workOrderID, technicianID, []string{string(models.TechnicianRole)}, "   ")

		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("non assignee without manager role is forbidden", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		otherTechnician := uuid.New()

		f.repo.EXPECT().GetByID(ctx, workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusInProgress,
				AssignedToUserID: &otherTechnician,
			}, nil)

		err := f.service.Complete(ctx, workOrderID, technicianID, []string{string(models.TechnicianRole)}, report)

		assert.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run("already completed order is a pure no-op", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.repo.EXPECT().GetByID(ctx, workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusCompleted,
				AssignedToUserID: &technicianID,
			}, nil)

		err := f.service.Complete(ctx, workOrderID, technicianID, []string{string(models.TechnicianRole)}, report)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("completes, releases equipment and invoices once", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		inProgress := models.WorkOrder{
			ID:               workOrderID,
			Title:            "broken screen",
			Status:           models.StatusInProgress,
			AssignedToUserID: &technicianID,
			AssignedByID:     &managerID,
		}

		f.repo.EXPECT().GetByID(ctx, workOrderID).Return(inProgress, nil)
		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).Return(inProgress, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, wo models.WorkOrder) error {
				assert.Equal(t, models.StatusCompleted, wo.Status)
				require.NotNil(t, wo.CompletedAt)
				require.NotNil(t, wo.RepairReport)
				assert.Equal(t, report, *wo.RepairReport)
				return nil
			})
		f.repo.EXPECT().CloseOpenEquipment(ctx, gomock.Any(), workOrderID, gomock.Any()).Return(nil)
		f.invoices.EXPECT().GenerateForWorkOrder(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.history.EXPECT().LogCompleted(ctx, gomock.Any(), workOrderID, technicianID).Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventWorkOrderCompleted, models.UserAudience(managerID), gomock.Any())

		err := f.service.Complete(ctx, workOrderID, technicianID, []string{string(models.TechnicianRole)}, report)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent completion loses the race quietly", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.repo.EXPECT().GetByID(ctx, workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusInProgress,
				AssignedToUserID: &technicianID,
			}, nil)
		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{ID: workOrderID, Status: models.StatusCompleted}, nil)
		f.sqlMock.ExpectCommit()

		err := f.service.Complete(ctx, workOrderID, technicianID, []string{string(models.TechnicianRole)}, report)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workOrderID := uuid.New()
	creatorID := uuid.New()
	technicianID := uuid.New()

	t.Run("stranger cannot cancel", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:              workOrderID,
				CreatedByUserID: creatorID,
				Status:          models.StatusCreated,
			}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.Cancel(ctx, workOrderID, uuid.New())

		assert.True(t, errors.Is(err, models.ErrForbidden))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminal order cannot be canceled", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:              workOrderID,
				CreatedByUserID: creatorID,
				Status:          models.StatusInspected,
			}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.Cancel(ctx, workOrderID, creatorID)

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("creator cancels and equipment is released", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				CreatedByUserID:  creatorID,
				AssignedToUserID: &technicianID,
				Status:           models.StatusInProgress,
			}, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, wo models.WorkOrder) error {
				assert.Equal(t, models.StatusCanceled, wo.Status)
				return nil
			})
		f.repo.EXPECT().CloseOpenEquipment(ctx, gomock.Any(), workOrderID, gomock.Any()).Return(nil)
		f.history.EXPECT().LogStatus(ctx, gomock.Any(), workOrderID, &creatorID, models.StatusInProgress, models.StatusCanceled).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventWorkOrderCanceled, models.UserAudience(technicianID), gomock.Any())

		err := f.service.Cancel(ctx, workOrderID, creatorID)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestInspect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workOrderID := uuid.New()
	inspectorID := uuid.New()
	creatorID := uuid.New()
	assetID := uuid.New()

	t.Run("rating outside range is rejected", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		_, err := f.service.Inspect(ctx, workOrderID, inspectorID, 6, "fine work")

		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("records inspection and returns the asset", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		inspectionID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:              workOrderID,
				CreatedByUserID: creatorID,
				AssetID:         assetID,
				Status:          models.StatusCompleted,
			}, nil)
		f.repo.EXPECT().InsertInspection(ctx, gomock.Any(), gomock.Any()).
			Return(inspectionID, nil)
		f.repo.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, wo models.WorkOrder) error {
				assert.Equal(t, models.StatusInspected, wo.Status)
				return nil
			})
		f.repo.EXPECT().UpdateAssetStatus(ctx, gomock.Any(), assetID, models.AssetSentToOwner).
			Return(nil)
		f.history.EXPECT().LogInspection(ctx, gomock.Any(), workOrderID, inspectorID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventWorkOrderInspected, models.UserAudience(creatorID), gomock.Any())

		inspection, err := f.service.Inspect(ctx, workOrderID, inspectorID, 4, "solid repair")

		require.NoError(t, err)
		assert.Equal(t, inspectionID, inspection.ID)
		assert.Equal(t, 4, inspection.Rating)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestSaveAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workOrderID := uuid.New()
	creatorID := uuid.New()

	t.Run("invalid files are skipped silently", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.repo.EXPECT().GetByID(ctx, workOrderID).
			Return(models.WorkOrder{ID: workOrderID, CreatedByUserID: creatorID}, nil)

		saved, err := f.service.SaveAttachments(ctx, workOrderID, creatorID, []string{string(models.UserRole)}, []AttachmentUpload{
			{FileName: "report.pdf", ContentType: "application/pdf", Size: 100},
			{FileName: "big.png", ContentType: "image/png", Size: maxAttachmentSize + 1},
			{FileName: "noext", ContentType: "image/png", Size: 100},
		})

		require.NoError(t, err)
		assert.Empty(t, saved)
	})

	t.Run("stores valid images and logs each", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)
		body := strings.NewReader("fake image bytes")

		f.repo.EXPECT().GetByID(ctx, workOrderID).
			Return(models.WorkOrder{ID: workOrderID, CreatedByUserID: creatorID}, nil)
		f.attachments.EXPECT().
			Store(ctx, workOrderID, "crack.jpg", "image/jpeg", int64(16), body).
			Return("workorders/path/crack.jpg", nil)
		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().InsertAttachment(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.history.EXPECT().LogAttachmentAdded(ctx, gomock.Any(), workOrderID, "workorders/path/crack.jpg").
			Return(nil)
		f.sqlMock.ExpectCommit()

		saved, err := f.service.SaveAttachments(ctx, workOrderID, creatorID, []string{string(models.UserRole)}, []AttachmentUpload{
			{FileName: "crack.jpg", ContentType: "image/jpeg", Size: 16, Reader: body},
		})

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "workorders/path/crack.jpg", saved[0].FilePath)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("non creator without manager role is forbidden", func(t *testing.T) {
		f := newServiceFixture(t, ctrl)

		f.repo.EXPECT().GetByID(ctx, workOrderID).
			Return(models.WorkOrder{ID: workOrderID, CreatedByUserID: creatorID}, nil)

		_, err := f.service.SaveAttachments(ctx, workOrderID, uuid.New(), []string{string(models.UserRole)}, nil)

		assert.True(t, errors.Is(err, models.ErrForbidden))
	})
}
