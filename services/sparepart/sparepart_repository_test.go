package sparepartservice

import (
	"context"
	"testing"

	"workorder/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementStock(t *testing.T) {
	ctx := context.Background()
	sparePartID := uuid.New()

	newTx := func(t *testing.T) (SparePartRepository, *sqlx.Tx, sqlmock.Sqlmock) {
		t.Helper()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		sqlxDB := sqlx.NewDb(db, "sqlmock")
		mock.ExpectBegin()
		tx, err := sqlxDB.Beginx()
		require.NoError(t, err)
		return NewSparePartRepository(sqlxDB), tx, mock
	}

	t.Run("takes stock when enough remains", func(t *testing.T) {
		repo, tx, mock := newTx(t)

		mock.ExpectExec(`UPDATE spare_parts SET stock = stock - \$2`).
			WithArgs(sparePartID, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DecrementStock(ctx, tx, sparePartID, 3)

		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient stock is a conflict", func(t *testing.T) {
		repo, tx, mock := newTx(t)

		// The guarded UPDATE matches no row when stock would go negative.
		mock.ExpectExec(`UPDATE spare_parts SET stock = stock - \$2`).
			WithArgs(sparePartID, 50).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DecrementStock(ctx, tx, sparePartID, 50)

		assert.True(t, errors.Is(err, models.ErrConflict))
		require.NoError(t, tx.Rollback())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
