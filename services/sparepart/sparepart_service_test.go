package sparepartservice

import (
	"context"
	"testing"

	"workorder/models"
	"workorder/providers"
	historyservice "workorder/services/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sparePartFixture struct {
	service  *sparePartService
	repo     *MockSparePartRepository
	history  *historyservice.MockHistoryService
	notifier *providers.MockNotificationPublisher
	sqlMock  sqlmock.Sqlmock
}

func newSparePartFixture(t *testing.T, ctrl *gomock.Controller) *sparePartFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &sparePartFixture{
		repo:     NewMockSparePartRepository(ctrl),
		history:  historyservice.NewMockHistoryService(ctrl),
		notifier: providers.NewMockNotificationPublisher(ctrl),
		sqlMock:  mock,
	}
	f.service = &sparePartService{
		repo:     f.repo,
		db:       sqlx.NewDb(db, "sqlmock"),
		history:  f.history,
		notifier: f.notifier,
	}
	return f
}

func TestRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workOrderID := uuid.New()
	sparePartID := uuid.New()
	creatorID := uuid.New()
	technicianID := uuid.New()

	t.Run("zero quantity is rejected", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		_, err := f.service.Request(ctx, RequestSparePartReq{
			WorkOrderID: workOrderID.String(),
			SparePartID: sparePartID.String(),
			Quantity:    0,
		}, technicianID, []string{string(models.TechnicianRole)})

		assert.True(t, errors.Is(err, models.ErrValidation))
	})

	t.Run("completed order cannot take new requests", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusCompleted,
				AssignedToUserID: &technicianID,
			}, nil)
		f.sqlMock.ExpectRollback()

		_, err := f.service.Request(ctx, RequestSparePartReq{
			WorkOrderID: workOrderID.String(),
			SparePartID: sparePartID.String(),
			Quantity:    2,
		}, technicianID, []string{string(models.TechnicianRole)})

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("request beyond stock is still recorded", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)
		requestID := uuid.New()

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				CreatedByUserID:  creatorID,
				Status:           models.StatusInProgress,
				AssignedToUserID: &technicianID,
			}, nil)
		f.repo.EXPECT().GetSparePart(ctx, gomock.Any(), sparePartID).
			Return(models.SparePart{ID: sparePartID, Name: "display panel", Stock: 1}, nil)
		f.repo.EXPECT().InsertRequest(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, request models.WorkOrderSparePart) (uuid.UUID, error) {
				assert.Equal(t, models.SparePartRequested, request.Status)
				assert.Equal(t, 5, request.QuantityUsed)
				return requestID, nil
			})
		f.repo.EXPECT().UpdateWorkOrderStatus(ctx, gomock.Any(), workOrderID, models.StatusPartsOrdered).
			Return(nil)
		f.history.EXPECT().LogSparePartRequested(ctx, gomock.Any(), workOrderID, technicianID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventSparePartRequested, models.UserAudience(creatorID), gomock.Any())

		got, err := f.service.Request(ctx, RequestSparePartReq{
			WorkOrderID: workOrderID.String(),
			SparePartID: sparePartID.String(),
			Quantity:    5,
		}, technicianID, []string{string(models.TechnicianRole)})

		require.NoError(t, err)
		assert.Equal(t, requestID, got)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("non assignee without manager role is forbidden", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusInProgress,
				AssignedToUserID: &technicianID,
			}, nil)
		f.sqlMock.ExpectRollback()

		_, err := f.service.Request(ctx, RequestSparePartReq{
			WorkOrderID: workOrderID.String(),
			SparePartID: sparePartID.String(),
			Quantity:    1,
		}, uuid.New(), []string{string(models.TechnicianRole)})

		assert.True(t, errors.Is(err, models.ErrForbidden))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	workOrderID := uuid.New()
	sparePartID := uuid.New()
	creatorID := uuid.New()
	technicianID := uuid.New()

	pendingRequest := models.WorkOrderSparePart{
		ID:           requestID,
		WorkOrderID:  workOrderID,
		SparePartID:  sparePartID,
		Status:       models.SparePartRequested,
		QuantityUsed: 3,
	}

	t.Run("only the creator can approve", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).Return(pendingRequest, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{ID: workOrderID, CreatedByUserID: creatorID}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.Approve(ctx, requestID, uuid.New())

		assert.True(t, errors.Is(err, models.ErrForbidden))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("already decided request conflicts", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)
		decided := pendingRequest
		decided.Status = models.SparePartApproved

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).Return(decided, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{ID: workOrderID, CreatedByUserID: creatorID}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.Approve(ctx, requestID, creatorID)

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("insufficient stock aborts without mutation", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).Return(pendingRequest, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:              workOrderID,
				CreatedByUserID: creatorID,
				Status:          models.StatusPartsOrdered,
			}, nil)
		f.repo.EXPECT().DecrementStock(ctx, gomock.Any(), sparePartID, 3).
			Return(errors.Wrap(models.ErrConflict, "insufficient spare part stock"))
		f.sqlMock.ExpectRollback()

		err := f.service.Approve(ctx, requestID, creatorID)

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("approval decrements stock and resumes the order", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).Return(pendingRequest, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				CreatedByUserID:  creatorID,
				AssignedToUserID: &technicianID,
				Status:           models.StatusPartsOrdered,
			}, nil)
		f.repo.EXPECT().DecrementStock(ctx, gomock.Any(), sparePartID, 3).Return(nil)
		f.repo.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), requestID, models.SparePartApproved).
			Return(nil)
		f.repo.EXPECT().UpdateWorkOrderStatus(ctx, gomock.Any(), workOrderID, models.StatusInProgress).
			Return(nil)
		f.history.EXPECT().LogStatus(ctx, gomock.Any(), workOrderID, &creatorID, models.StatusPartsOrdered, models.StatusInProgress).
			Return(nil)
		f.history.EXPECT().LogSparePartApproved(ctx, gomock.Any(), workOrderID, creatorID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventSparePartApproved, models.UserAudience(technicianID), gomock.Any())

		err := f.service.Approve(ctx, requestID, creatorID)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("approval of a running order keeps status but still logs it", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).Return(pendingRequest, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				CreatedByUserID:  creatorID,
				AssignedToUserID: &technicianID,
				Status:           models.StatusInProgress,
			}, nil)
		f.repo.EXPECT().DecrementStock(ctx, gomock.Any(), sparePartID, 3).Return(nil)
		f.repo.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), requestID, models.SparePartApproved).
			Return(nil)
		f.history.EXPECT().LogStatus(ctx, gomock.Any(), workOrderID, &creatorID, models.StatusInProgress, models.StatusInProgress).
			Return(nil)
		f.history.EXPECT().LogSparePartApproved(ctx, gomock.Any(), workOrderID, creatorID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventSparePartApproved, models.UserAudience(technicianID), gomock.Any())

		err := f.service.Approve(ctx, requestID, creatorID)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}

func TestReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	requestID := uuid.New()
	workOrderID := uuid.New()
	sparePartID := uuid.New()
	creatorID := uuid.New()
	technicianID := uuid.New()

	t.Run("rejection never touches stock", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).
			Return(models.WorkOrderSparePart{
				ID:           requestID,
				WorkOrderID:  workOrderID,
				SparePartID:  sparePartID,
				Status:       models.SparePartRequested,
				QuantityUsed: 2,
			}, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				CreatedByUserID:  creatorID,
				AssignedToUserID: &technicianID,
				Status:           models.StatusPartsOrdered,
			}, nil)
		f.repo.EXPECT().UpdateRequestStatus(ctx, gomock.Any(), requestID, models.SparePartRejected).
			Return(nil)
		f.history.EXPECT().LogSparePartRejected(ctx, gomock.Any(), workOrderID, creatorID).
			Return(nil)
		f.sqlMock.ExpectCommit()
		f.notifier.EXPECT().
			Publish(ctx, models.EventSparePartRejected, models.UserAudience(technicianID), gomock.Any())

		err := f.service.Reject(ctx, requestID, creatorID)

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("already decided request conflicts", func(t *testing.T) {
		f := newSparePartFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetRequestForUpdate(ctx, gomock.Any(), requestID).
			Return(models.WorkOrderSparePart{
				ID:          requestID,
				WorkOrderID: workOrderID,
				Status:      models.SparePartRejected,
			}, nil)
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{ID: workOrderID, CreatedByUserID: creatorID}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.Reject(ctx, requestID, creatorID)

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}
