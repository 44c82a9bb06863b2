package equipmentservice

import (
	"context"
	"testing"

	"workorder/models"
	historyservice "workorder/services/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type equipmentFixture struct {
	service *equipmentService
	repo    *MockEquipmentRepository
	history *historyservice.MockHistoryService
	sqlMock sqlmock.Sqlmock
}

func newEquipmentFixture(t *testing.T, ctrl *gomock.Controller) *equipmentFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &equipmentFixture{
		repo:    NewMockEquipmentRepository(ctrl),
		history: historyservice.NewMockHistoryService(ctrl),
		sqlMock: mock,
	}
	f.service = &equipmentService{
		repo:    f.repo,
		db:      sqlx.NewDb(db, "sqlmock"),
		history: f.history,
	}
	return f
}

func TestAddToWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workOrderID := uuid.New()
	equipmentID := uuid.New()
	technicianID := uuid.New()

	req := AddEquipmentReq{
		WorkOrderID: workOrderID.String(),
		EquipmentID: equipmentID.String(),
		UsageNotes:  "bench multimeter",
	}

	t.Run("completed order refuses equipment", func(t *testing.T) {
		f := newEquipmentFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusCompleted,
				AssignedToUserID: &technicianID,
			}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.AddToWorkOrder(ctx, req, technicianID, []string{string(models.TechnicianRole)})

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := newEquipmentFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusAssigned,
				AssignedToUserID: &technicianID,
			}, nil)
		f.sqlMock.ExpectRollback()

		err := f.service.AddToWorkOrder(ctx, req, uuid.New(), []string{string(models.TechnicianRole)})

		assert.True(t, errors.Is(err, models.ErrForbidden))
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("first equipment starts the work", func(t *testing.T) {
		f := newEquipmentFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusAssigned,
				AssignedToUserID: &technicianID,
			}, nil)
		f.repo.EXPECT().GetEquipmentForUpdate(ctx, gomock.Any(), equipmentID).
			Return(models.Equipment{ID: equipmentID, Status: models.EquipmentAvailable}, nil)
		f.repo.EXPECT().InsertAssociation(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, association models.WorkOrderEquipment) error {
				assert.Equal(t, "bench multimeter", association.UsageNotes)
				assert.Nil(t, association.ReturnedAt)
				return nil
			})
		f.repo.EXPECT().UpdateEquipmentStatus(ctx, gomock.Any(), equipmentID, models.EquipmentInUse).
			Return(nil)
		f.repo.EXPECT().UpdateWorkOrderStatus(ctx, gomock.Any(), workOrderID, models.StatusInProgress).
			Return(nil)
		f.history.EXPECT().LogEquipmentAdded(ctx, gomock.Any(), workOrderID, technicianID).
			Return(nil)
		f.sqlMock.ExpectCommit()

		err := f.service.AddToWorkOrder(ctx, req, technicianID, []string{string(models.TechnicianRole)})

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("in progress order keeps its status", func(t *testing.T) {
		f := newEquipmentFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.repo.EXPECT().GetWorkOrderForUpdate(ctx, gomock.Any(), workOrderID).
			Return(models.WorkOrder{
				ID:               workOrderID,
				Status:           models.StatusInProgress,
				AssignedToUserID: &technicianID,
			}, nil)
		f.repo.EXPECT().GetEquipmentForUpdate(ctx, gomock.Any(), equipmentID).
			Return(models.Equipment{ID: equipmentID, Status: models.EquipmentAvailable}, nil)
		f.repo.EXPECT().InsertAssociation(ctx, gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateEquipmentStatus(ctx, gomock.Any(), equipmentID, models.EquipmentInUse).
			Return(nil)
		f.history.EXPECT().LogEquipmentAdded(ctx, gomock.Any(), workOrderID, technicianID).
			Return(nil)
		f.sqlMock.ExpectCommit()

		err := f.service.AddToWorkOrder(ctx, req, technicianID, []string{string(models.TechnicianRole)})

		require.NoError(t, err)
		require.NoError(t, f.sqlMock.ExpectationsWereMet())
	})
}
