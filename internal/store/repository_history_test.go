package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/qr-mint/internal/logger"
	"github.com/dkovalev/qr-mint/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) HistoryRepository {
	t.Helper()
	return NewHistoryRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func testEntry() models.HistoryEntry {
	return models.HistoryEntry{
		ID:        "0198a001-7e01-7000-8000-000000000001",
		Kind:      models.Geo,
		Payload:   "https://www.google.com/maps?q=37.7749,-122.4194",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveEntry(t *testing.T) {
	entry := testEntry()

	insertSQL, _, err := buildInsertHistoryQuery(entry)
	require.NoError(t, err)

	t.Run("successful insert", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WithArgs(entry.ID, int(entry.Kind), entry.Payload, entry.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveEntry(testContext(), entry)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WillReturnError(errors.New("disk I/O error"))

		err := repo.SaveEntry(testContext(), entry)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save history entry")
	})

	t.Run("zero rows affected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveEntry(testContext(), entry)

		require.ErrorIs(t, err, ErrHistoryEntryNotSaved)
	})
}

func TestGetEntries(t *testing.T) {
	first := testEntry()
	second := models.HistoryEntry{
		ID:        "0198a001-7e01-7000-8000-000000000002",
		Kind:      models.WiFi,
		Payload:   "WIFI:T:WPA;S:Home;P:secret1;;",
		CreatedAt: time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC),
	}

	t.Run("returns all rows newest first", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		selectSQL, _, err := buildSelectHistoryQuery(0)
		require.NoError(t, err)

		rows := sqlmock.NewRows(historyColumns).
			AddRow(second.ID, int(second.Kind), second.Payload, second.CreatedAt).
			AddRow(first.ID, int(first.Kind), first.Payload, first.CreatedAt)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).WillReturnRows(rows)

		entries, err := repo.GetEntries(testContext(), 0)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, second, entries[0])
		assert.Equal(t, first, entries[1])
	})

	t.Run("limit is passed through", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		selectSQL, _, err := buildSelectHistoryQuery(1)
		require.NoError(t, err)

		rows := sqlmock.NewRows(historyColumns).
			AddRow(second.ID, int(second.Kind), second.Payload, second.CreatedAt)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).WillReturnRows(rows)

		entries, err := repo.GetEntries(testContext(), 1)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty history returns no rows and no error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		selectSQL, _, err := buildSelectHistoryQuery(0)
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WillReturnRows(sqlmock.NewRows(historyColumns))

		entries, err := repo.GetEntries(testContext(), 0)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		selectSQL, _, err := buildSelectHistoryQuery(0)
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).
			WillReturnError(errors.New("database is locked"))

		_, err = repo.GetEntries(testContext(), 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query history entries")
	})

	t.Run("scan error surfaces as ErrScanningRow", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		selectSQL, _, err := buildSelectHistoryQuery(0)
		require.NoError(t, err)

		rows := sqlmock.NewRows(historyColumns).
			AddRow(first.ID, "not-a-kind", first.Payload, first.CreatedAt)

		mock.ExpectQuery(regexp.QuoteMeta(selectSQL)).WillReturnRows(rows)

		_, err = repo.GetEntries(testContext(), 0)

		require.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestDeleteEntry(t *testing.T) {
	id := testEntry().ID

	deleteSQL, _, err := buildDeleteHistoryQuery(id)
	require.NoError(t, err)

	t.Run("successful delete", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteEntry(testContext(), id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing entry", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteEntry(testContext(), id)

		require.ErrorIs(t, err, ErrHistoryEntryNotFound)
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WillReturnError(errors.New("database is locked"))

		err := repo.DeleteEntry(testContext(), id)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete history entry")
	})
}

func TestPrune(t *testing.T) {
	pruneSQL, _, err := buildPruneHistoryQuery(200)
	require.NoError(t, err)

	t.Run("reports removed rows", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(pruneSQL)).
			WillReturnResult(sqlmock.NewResult(0, 17))

		removed, err := repo.Prune(testContext(), 200)

		require.NoError(t, err)
		assert.Equal(t, int64(17), removed)
	})

	t.Run("nothing to prune", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(pruneSQL)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := repo.Prune(testContext(), 200)

		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(pruneSQL)).
			WillReturnError(errors.New("database is locked"))

		_, err := repo.Prune(testContext(), 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to prune history")
	})
}
