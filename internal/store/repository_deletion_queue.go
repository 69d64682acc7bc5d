package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

type deletionQueueRepository struct {
	db       *DB
	notifier *Notifier
	logger   *logger.Logger
}

func NewDeletionQueue(db *DB, notifier *Notifier, logger *logger.Logger) DeletionQueue {
	return &deletionQueueRepository{db: db, notifier: notifier, logger: logger}
}

// Pending returns the queued deletions of one library and object type.
func (q *deletionQueueRepository) Pending(ctx context.Context, lib models.Library, typ models.ObjectType) ([]models.DeletionEntry, error) {
	rows, err := q.db.QueryContext(ctx, listQueueEntries, lib.Kind, lib.ID, typ)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deletionQueueRepository.Pending").
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Msg("failed to list deletion queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanQueueEntries(rows)
}

// All returns every queued deletion across libraries.
func (q *deletionQueueRepository) All(ctx context.Context) ([]models.DeletionEntry, error) {
	rows, err := q.db.QueryContext(ctx, listAllQueueEntries)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deletionQueueRepository.All").
			Msg("failed to list deletion queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanQueueEntries(rows)
}

// Requeue moves the entries of keys onto version, after a conflict refreshed
// the library.
func (q *deletionQueueRepository) Requeue(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string, version int64) error {
	if len(keys) == 0 {
		return nil
	}

	return q.db.withTx(ctx, "deletionQueueRepository.Requeue", func(tx *sql.Tx) error {
		for start := 0; start < len(keys); start += inClauseSize {
			chunk := keys[start:min(start+inClauseSize, len(keys))]
			upd := psql.Update("deletion_queue").
				Set("version", version).
				Where(squirrel.Eq{"kind": lib.Kind, "library_id": lib.ID, "object_type": typ, "object_key": chunk})
			if _, err := execBuilt(ctx, tx, upd); err != nil {
				return err
			}
		}
		return nil
	})
}

// Confirm drops the records and queue entries of deletions acknowledged by
// the server. It returns the keys that were still queued.
func (q *deletionQueueRepository) Confirm(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var confirmed []string
	err := q.db.withTx(ctx, "deletionQueueRepository.Confirm", func(tx *sql.Tx) error {
		confirmed = nil
		for start := 0; start < len(keys); start += inClauseSize {
			chunk := keys[start:min(start+inClauseSize, len(keys))]

			query, args, err := psql.Select("object_key").
				From("deletion_queue").
				Where(squirrel.Eq{"kind": lib.Kind, "library_id": lib.ID, "object_type": typ, "object_key": chunk}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			queued, err := scanKeys(ctx, tx, query, args)
			if err != nil {
				return err
			}

			if err := deleteKeysTx(ctx, tx, lib, typ, queued); err != nil {
				return err
			}
			confirmed = append(confirmed, queued...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.notifier.Publish(models.ChangeBatch{Library: lib, Type: typ, Removed: confirmed})
	return confirmed, nil
}

func scanKeys(ctx context.Context, tx *sql.Tx, query string, args []any) ([]string, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return keys, nil
}

func scanQueueEntries(rows *sql.Rows) ([]models.DeletionEntry, error) {
	var out []models.DeletionEntry
	for rows.Next() {
		var e models.DeletionEntry
		if err := rows.Scan(&e.Library.Kind, &e.Library.ID, &e.Type, &e.Key, &e.Version, &e.QueuedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return out, nil
}
