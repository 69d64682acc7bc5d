package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/migrations"
)

// maxTxAttempts bounds retries of a transaction that hit a busy database.
const maxTxAttempts = 3

// psql builds queries with SQLite's "?" placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withTx runs fn inside a transaction and commits it. fn must only use tx.
// A transaction failing with a retryable error (busy or locked database) is
// rolled back and run again.
func (db *DB) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	attempt := func() (struct{}, error) {
		err := db.runTx(ctx, fn)
		if err == nil {
			return struct{}{}, nil
		}
		if db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", op).Msg("database busy, retrying transaction")
			return struct{}{}, err
		}
		return struct{}{}, backoff.Permanent(err)
	}

	_, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxTxAttempts),
	)
	if err != nil {
		log.Err(err).Str("func", op).Msg("transaction failed")
		return err
	}
	return nil
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// execBuilt runs a squirrel builder on tx.
func execBuilt(ctx context.Context, tx *sql.Tx, b squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
