package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
)

// ClientStorages groups the repositories of the local replica. All of them
// share one SQLite connection and one change notifier.
type ClientStorages struct {
	Versions  VersionRepository
	Libraries LibraryRepository
	Records   RecordRepository
	Deletions DeletionQueue

	db *DB
}

// NewClientStorages opens the database at cfg.DB.DSN, creating the file when
// missing, and applies pending migrations.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	notifier := NewNotifier(DefaultSubscriberBuffer, logger)

	return &ClientStorages{
		Versions:  NewVersionRepository(db, logger),
		Libraries: NewLibraryRepository(db, logger),
		Records:   NewRecordRepository(db, notifier, logger),
		Deletions: NewDeletionQueue(db, notifier, logger),
		db:        db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
