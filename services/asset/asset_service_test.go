package assetservice

import (
	"context"
	"testing"
	"time"

	"workorder/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetFixture(t *testing.T) (AssetService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewAssetService(NewAssetRepository(sqlx.NewDb(db, "sqlmock"))), mock
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	assetID := uuid.New()

	service, mock := newAssetFixture(t)

	mock.ExpectQuery(`INSERT INTO assets`).
		WithArgs("office laptop", "Lenovo", "T14", "SN-1234", ownerID, models.AssetNew).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(assetID.String()))

	got, err := service.Register(ctx, RegisterAssetReq{
		Name:         "office laptop",
		Brand:        "Lenovo",
		Model:        "T14",
		SerialNumber: "SN-1234",
	}, ownerID)

	require.NoError(t, err)
	assert.Equal(t, assetID, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()
	ownerID := uuid.New()

	assetRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "brand", "model", "serial_number", "owner_user_id", "status", "created_at"}).
			AddRow(assetID.String(), "office laptop", "Lenovo", "T14", "SN-1234", ownerID.String(), string(models.AssetNew), time.Now().UTC())
	}

	t.Run("owner reads own asset", func(t *testing.T) {
		service, mock := newAssetFixture(t)
		mock.ExpectQuery(`SELECT (.+) FROM assets`).WithArgs(assetID).WillReturnRows(assetRows())

		asset, err := service.GetByID(ctx, assetID, ownerID, []string{string(models.UserRole)})

		require.NoError(t, err)
		assert.Equal(t, "office laptop", asset.Name)
	})

	t.Run("manager reads any asset", func(t *testing.T) {
		service, mock := newAssetFixture(t)
		mock.ExpectQuery(`SELECT (.+) FROM assets`).WithArgs(assetID).WillReturnRows(assetRows())

		_, err := service.GetByID(ctx, assetID, uuid.New(), []string{string(models.ManagerRole)})

		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		service, mock := newAssetFixture(t)
		mock.ExpectQuery(`SELECT (.+) FROM assets`).WithArgs(assetID).WillReturnRows(assetRows())

		_, err := service.GetByID(ctx, assetID, uuid.New(), []string{string(models.UserRole)})

		assert.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run("missing asset is not found", func(t *testing.T) {
		service, mock := newAssetFixture(t)
		mock.ExpectQuery(`SELECT (.+) FROM assets`).WithArgs(assetID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := service.GetByID(ctx, assetID, ownerID, nil)

		assert.True(t, errors.Is(err, models.ErrNotFound))
	})
}
