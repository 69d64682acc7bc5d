package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

// inClauseSize bounds the number of keys bound into one IN clause.
const inClauseSize = 500

type recordRepository struct {
	db       *DB
	notifier *Notifier
	logger   *logger.Logger
}

// NewRecordRepository returns the SQLite-backed [RecordRepository]. Committed
// write batches are published on notifier.
func NewRecordRepository(db *DB, notifier *Notifier, logger *logger.Logger) RecordRepository {
	return &recordRepository{db: db, notifier: notifier, logger: logger}
}

func (r *recordRepository) Subscribe() (<-chan models.ChangeBatch, func()) {
	return r.notifier.Subscribe()
}

// Upsert applies remote objects in one transaction.
//
// A synced record takes the remote body when the remote version is newer or
// the body differs at the same version. A locally modified record keeps its
// body and status and only adopts the newer remote version, so the local edit
// is resubmitted against it. A record pending deletion adopts the remote
// version and body and stays queued. Re-applying an identical object changes
// nothing and is not published.
func (r *recordRepository) Upsert(ctx context.Context, lib models.Library, typ models.ObjectType, objs ...models.RemoteObject) ([]models.UpsertResult, error) {
	if err := validateScope(lib, typ); err != nil {
		return nil, err
	}

	results := make([]models.UpsertResult, 0, len(objs))
	var batch models.ChangeBatch

	err := r.db.withTx(ctx, "recordRepository.Upsert", func(tx *sql.Tx) error {
		results = results[:0]
		batch = models.ChangeBatch{Library: lib, Type: typ}

		for _, obj := range objs {
			if obj.Key == "" {
				return fmt.Errorf("%w: empty key", ErrInvalidRecord)
			}

			existing, found, err := getRecordTx(ctx, tx, lib, typ, obj.Key)
			if err != nil {
				return err
			}

			if !found {
				rec := models.Record{
					Library: lib, Type: typ, Key: obj.Key,
					Version: obj.Version, Status: models.StatusSynced, Body: obj.Body,
				}
				if _, err := tx.ExecContext(ctx, insertRecord,
					lib.Kind, lib.ID, typ, rec.Key, rec.Version, rec.Status, []byte(rec.Body)); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
				results = append(results, models.UpsertResult{Created: true, Changed: true, Record: rec})
				batch.Added = append(batch.Added, obj.Key)
				continue
			}

			next, changed := mergeRemote(existing, obj)
			if next.Version != existing.Version || changed {
				if err := updateRecordTx(ctx, tx, next); err != nil {
					return err
				}
			}
			if changed {
				batch.Updated = append(batch.Updated, obj.Key)
			}
			results = append(results, models.UpsertResult{Changed: changed, Record: next})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notifier.Publish(batch)
	return results, nil
}

// mergeRemote returns the record resulting from applying obj onto existing
// and whether its body or status changed.
func mergeRemote(existing models.Record, obj models.RemoteObject) (models.Record, bool) {
	next := existing
	if obj.Version < existing.Version {
		return next, false
	}

	switch existing.Status {
	case models.StatusLocallyModified:
		next.Version = obj.Version
		return next, false
	case models.StatusPendingDeletion:
		next.Version = obj.Version
		next.Body = obj.Body
		return next, false
	default:
		if obj.Version == existing.Version && bytes.Equal(obj.Body, existing.Body) {
			return next, false
		}
		next.Version = obj.Version
		next.Body = obj.Body
		return next, true
	}
}

// ApplyDeletions removes the records of keys deleted on the server, together
// with their deletion queue entries. Absent keys are ignored. A locally
// modified record is kept and its version reset to 0 so that the edit is
// submitted again as a new object. It returns the removed keys.
func (r *recordRepository) ApplyDeletions(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string) ([]string, error) {
	if err := validateScope(lib, typ); err != nil {
		return nil, err
	}

	var removed []string
	err := r.db.withTx(ctx, "recordRepository.ApplyDeletions", func(tx *sql.Tx) error {
		removed = nil
		for start := 0; start < len(keys); start += inClauseSize {
			chunk := keys[start:min(start+inClauseSize, len(keys))]

			states, err := statesTx(ctx, tx, lib, typ, chunk)
			if err != nil {
				return err
			}

			var drop []string
			for _, key := range chunk {
				rec, ok := states[key]
				if !ok {
					continue
				}
				if rec.Status == models.StatusLocallyModified {
					rec.Version = 0
					if err := updateRecordTx(ctx, tx, rec); err != nil {
						return err
					}
					continue
				}
				drop = append(drop, key)
			}

			if err := deleteKeysTx(ctx, tx, lib, typ, drop); err != nil {
				return err
			}
			removed = append(removed, drop...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notifier.Publish(models.ChangeBatch{Library: lib, Type: typ, Removed: removed})
	return removed, nil
}

func (r *recordRepository) States(ctx context.Context, lib models.Library, typ models.ObjectType) (map[string]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRecordStates, lib.Kind, lib.ID, typ)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.States").
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Msg("failed to list record states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanStates(rows, lib, typ)
}

func (r *recordRepository) Get(ctx context.Context, lib models.Library, typ models.ObjectType, key string) (models.Record, error) {
	rec, found, err := getRecordTx(ctx, r.db, lib, typ, key)
	if err != nil {
		return models.Record{}, err
	}
	if !found {
		return models.Record{}, fmt.Errorf("%w: %s %s/%s", ErrRecordNotFound, lib, typ, key)
	}
	return rec, nil
}

// Modified returns the records carrying local edits, oldest first.
func (r *recordRepository) Modified(ctx context.Context, lib models.Library, typ models.ObjectType) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRecordsByStatus, lib.Kind, lib.ID, typ, models.StatusLocallyModified)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Modified").
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Msg("failed to list modified records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		rec := models.Record{Library: lib, Type: typ}
		var body []byte
		if err := rows.Scan(&rec.Key, &rec.Version, &rec.Status, &body, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec.Body = body
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return out, nil
}

// SaveLocal stores a local edit of key. A new key starts at version 0; an
// existing record keeps the server version the edit is based on. Saving a
// record pending deletion cancels the deletion.
func (r *recordRepository) SaveLocal(ctx context.Context, lib models.Library, typ models.ObjectType, key string, body json.RawMessage) (models.Record, error) {
	if err := validateScope(lib, typ); err != nil {
		return models.Record{}, err
	}
	if key == "" {
		return models.Record{}, fmt.Errorf("%w: empty key", ErrInvalidRecord)
	}

	var (
		rec   models.Record
		batch models.ChangeBatch
	)
	err := r.db.withTx(ctx, "recordRepository.SaveLocal", func(tx *sql.Tx) error {
		batch = models.ChangeBatch{Library: lib, Type: typ}

		existing, found, err := getRecordTx(ctx, tx, lib, typ, key)
		if err != nil {
			return err
		}

		if !found {
			rec = models.Record{Library: lib, Type: typ, Key: key, Status: models.StatusLocallyModified, Body: body}
			if _, err := tx.ExecContext(ctx, insertRecord,
				lib.Kind, lib.ID, typ, key, int64(0), rec.Status, []byte(body)); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			batch.Added = []string{key}
			return nil
		}

		rec = existing
		rec.Status = models.StatusLocallyModified
		rec.Body = body
		if err := updateRecordTx(ctx, tx, rec); err != nil {
			return err
		}
		if existing.Status == models.StatusPendingDeletion {
			if err := deleteQueueTx(ctx, tx, lib, typ, []string{key}); err != nil {
				return err
			}
		}
		batch.Updated = []string{key}
		return nil
	})
	if err != nil {
		return models.Record{}, err
	}

	r.notifier.Publish(batch)
	return rec, nil
}

// MarkDeleted deletes key locally. A record the server has never seen is
// removed outright and queued is false. Otherwise the record becomes pending
// deletion and a queue entry carrying the stored library/type version is
// written in the same transaction.
func (r *recordRepository) MarkDeleted(ctx context.Context, lib models.Library, typ models.ObjectType, key string) (models.DeletionEntry, bool, error) {
	if err := validateScope(lib, typ); err != nil {
		return models.DeletionEntry{}, false, err
	}

	var (
		entry  models.DeletionEntry
		queued bool
		batch  models.ChangeBatch
	)
	err := r.db.withTx(ctx, "recordRepository.MarkDeleted", func(tx *sql.Tx) error {
		batch = models.ChangeBatch{Library: lib, Type: typ}
		queued = false

		rec, found, err := getRecordTx(ctx, tx, lib, typ, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s %s/%s", ErrRecordNotFound, lib, typ, key)
		}

		if rec.Version == 0 {
			if err := deleteKeysTx(ctx, tx, lib, typ, []string{key}); err != nil {
				return err
			}
			batch.Removed = []string{key}
			return nil
		}

		var version int64
		if err := tx.QueryRowContext(ctx, getVersion, lib.Kind, lib.ID, typ).Scan(&version); err != nil && !isNoRows(err) {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		rec.Status = models.StatusPendingDeletion
		if err := updateRecordTx(ctx, tx, rec); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, upsertQueueEntry, lib.Kind, lib.ID, typ, key, version); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		entry = models.DeletionEntry{Library: lib, Type: typ, Key: key, Version: version}
		queued = true
		batch.Updated = []string{key}
		return nil
	})
	if err != nil {
		return models.DeletionEntry{}, false, err
	}

	r.notifier.Publish(batch)
	return entry, queued, nil
}

// MarkSynced records objects accepted by the server: their version and body
// become the server's and the status returns to synced. Records deleted
// locally in the meantime are left untouched.
func (r *recordRepository) MarkSynced(ctx context.Context, lib models.Library, typ models.ObjectType, objs ...models.RemoteObject) error {
	var batch models.ChangeBatch
	err := r.db.withTx(ctx, "recordRepository.MarkSynced", func(tx *sql.Tx) error {
		batch = models.ChangeBatch{Library: lib, Type: typ}

		for _, obj := range objs {
			rec, found, err := getRecordTx(ctx, tx, lib, typ, obj.Key)
			if err != nil {
				return err
			}
			if !found || rec.Status == models.StatusPendingDeletion {
				continue
			}

			rec.Version = obj.Version
			rec.Status = models.StatusSynced
			if len(obj.Body) > 0 {
				rec.Body = obj.Body
			}
			if err := updateRecordTx(ctx, tx, rec); err != nil {
				return err
			}
			batch.Updated = append(batch.Updated, obj.Key)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.notifier.Publish(batch)
	return nil
}

// queryRower is satisfied by both *DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getRecordTx(ctx context.Context, q queryRower, lib models.Library, typ models.ObjectType, key string) (models.Record, bool, error) {
	rec := models.Record{Library: lib, Type: typ}
	var body []byte

	err := q.QueryRowContext(ctx, getRecord, lib.Kind, lib.ID, typ, key).
		Scan(&rec.Key, &rec.Version, &rec.Status, &body, &rec.UpdatedAt)
	if isNoRows(err) {
		return models.Record{}, false, nil
	}
	if err != nil {
		return models.Record{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rec.Body = body
	return rec, true, nil
}

func updateRecordTx(ctx context.Context, tx *sql.Tx, rec models.Record) error {
	_, err := tx.ExecContext(ctx, updateRecord,
		rec.Version, rec.Status, []byte(rec.Body),
		rec.Library.Kind, rec.Library.ID, rec.Type, rec.Key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func statesTx(ctx context.Context, tx *sql.Tx, lib models.Library, typ models.ObjectType, keys []string) (map[string]models.Record, error) {
	query, args, err := psql.
		Select("object_key", "version", "status").
		From("records").
		Where(squirrel.Eq{"kind": lib.Kind, "library_id": lib.ID, "object_type": typ, "object_key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanStates(rows, lib, typ)
}

func scanStates(rows *sql.Rows, lib models.Library, typ models.ObjectType) (map[string]models.Record, error) {
	out := make(map[string]models.Record)
	for rows.Next() {
		rec := models.Record{Library: lib, Type: typ}
		if err := rows.Scan(&rec.Key, &rec.Version, &rec.Status); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out[rec.Key] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return out, nil
}

// deleteKeysTx removes records and their queue entries.
func deleteKeysTx(ctx context.Context, tx *sql.Tx, lib models.Library, typ models.ObjectType, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	del := psql.Delete("records").
		Where(squirrel.Eq{"kind": lib.Kind, "library_id": lib.ID, "object_type": typ, "object_key": keys})
	if _, err := execBuilt(ctx, tx, del); err != nil {
		return err
	}

	return deleteQueueTx(ctx, tx, lib, typ, keys)
}

func deleteQueueTx(ctx context.Context, tx *sql.Tx, lib models.Library, typ models.ObjectType, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	del := psql.Delete("deletion_queue").
		Where(squirrel.Eq{"kind": lib.Kind, "library_id": lib.ID, "object_type": typ, "object_key": keys})
	_, err := execBuilt(ctx, tx, del)
	return err
}

func validateScope(lib models.Library, typ models.ObjectType) error {
	if !lib.Valid() || !typ.Valid() {
		return fmt.Errorf("%w: %s %s", ErrInvalidRecord, lib, typ)
	}
	return nil
}
