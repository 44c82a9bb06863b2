package historyservice

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryFixture(t *testing.T) (HistoryService, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewHistoryService(NewHistoryRepository(sqlxDB)), sqlxDB, mock
}

func TestLogStatus(t *testing.T) {
	ctx := context.Background()
	workOrderID := uuid.New()
	managerID := uuid.New()

	service, db, mock := newHistoryFixture(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO work_order_histories`).
		WithArgs(workOrderID, ActionStatusChanged, "Created", "Assigned", managerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	err = service.LogStatus(ctx, tx, workOrderID, &managerID, "Created", "Assigned")
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogAttachmentAdded(t *testing.T) {
	ctx := context.Background()
	workOrderID := uuid.New()

	service, db, mock := newHistoryFixture(t)

	// Attachments are logged without an actor and with only the new value set.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO work_order_histories`).
		WithArgs(workOrderID, ActionAttachmentAdded, nil, "workorders/abc/crack.jpg", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	err = service.LogAttachmentAdded(ctx, tx, workOrderID, "workorders/abc/crack.jpg")
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByWorkOrder(t *testing.T) {
	ctx := context.Background()
	workOrderID := uuid.New()
	creatorID := uuid.New()
	createdAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	service, _, mock := newHistoryFixture(t)

	rows := sqlmock.NewRows([]string{"id", "work_order_id", "action", "old_value", "new_value", "changed_by_user_id", "created_at"}).
		AddRow(uuid.New().String(), workOrderID.String(), ActionCreated, nil, nil, creatorID.String(), createdAt).
		AddRow(uuid.New().String(), workOrderID.String(), ActionStatusChanged, "Created", "Assigned", creatorID.String(), createdAt.Add(time.Hour))
	mock.ExpectQuery(`SELECT (.+) FROM work_order_histories`).
		WithArgs(workOrderID).
		WillReturnRows(rows)

	entries, err := service.ListByWorkOrder(ctx, workOrderID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionCreated, entries[0].Action)
	assert.Nil(t, entries[0].OldValue)
	require.NotNil(t, entries[1].NewValue)
	assert.Equal(t, "Assigned", *entries[1].NewValue)
	require.NoError(t, mock.ExpectationsWereMet())
}
