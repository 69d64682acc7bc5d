package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewDB(conn, logger.Nop()), mock
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM deletion_queue").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM records").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	repo := NewLibraryRepository(db, logger.Nop())
	err := repo.RemoveLibrary(context.Background(), group)
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RetriesBusyDatabase(t *testing.T) {
	db, mock := newMockDB(t)

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	mock.ExpectBegin().WillReturnError(busy)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.withTx(context.Background(), "test", func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE versions SET version = 1")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_NonRetryableStopsImmediately(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := db.withTx(context.Background(), "test", func(*sql.Tx) error {
		calls++
		return ErrInvalidRecord
	})
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Equal(t, 1, calls)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestNotifier(t *testing.T) {
	n := NewNotifier(1, logger.Nop())

	ch, cancel := n.Subscribe()
	batch := models.ChangeBatch{Library: personal, Type: models.ObjectItem, Added: []string{"A"}}

	n.Publish(models.ChangeBatch{})
	n.Publish(batch)
	// buffer is full, dropped without blocking
	n.Publish(batch)

	select {
	case got := <-ch:
		assert.Equal(t, batch, got)
	case <-time.After(time.Second):
		t.Fatal("batch not delivered")
	}

	select {
	case got := <-ch:
		t.Fatalf("unexpected batch %+v", got)
	default:
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	// publishing after cancel is harmless
	n.Publish(batch)
}
