// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

type libraryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLibraryRepository returns the SQLite-backed [LibraryRepository].
func NewLibraryRepository(db *DB, logger *logger.Logger) LibraryRepository {
	return &libraryRepository{db: db, logger: logger}
}

// GetOrCreateUser returns the user with id, inserting a placeholder named name
// the first time the id is referenced. created is true only for that call.
func (l *libraryRepository) GetOrCreateUser(ctx context.Context, id int64, name string) (bool, models.User, error) {
	var (
		created bool
		user    models.User
	)

	err := l.db.withTx(ctx, "libraryRepository.GetOrCreateUser", func(tx *sql.Tx) error {
		var err error
		created, user, err = getOrCreateUser(ctx, tx, id, name)
		return err
	})

	return created, user, err
}

// GetOrCreateLibrary returns the library, inserting it (and a placeholder for
// its owner) the first time it is referenced. A non-empty name refreshes the
// stored name of an existing library.
func (l *libraryRepository) GetOrCreateLibrary(ctx context.Context, lib models.Library, ownerID int64, name string) (bool, models.LibraryInfo, error) {
	if !lib.Valid() {
		return false, models.LibraryInfo{}, fmt.Errorf("%w: library %s", ErrInvalidRecord, lib)
	}

	var (
		created bool
		info    models.LibraryInfo
	)

	err := l.db.withTx(ctx, "libraryRepository.GetOrCreateLibrary", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, getLibrary, lib.Kind, lib.ID).
			Scan(&info.Kind, &info.ID, &info.Name, &info.OwnerID)
		switch {
		case err == nil:
			if name != "" && name != info.Name {
				if _, err := tx.ExecContext(ctx, updateLibraryName, name, lib.Kind, lib.ID); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
				info.Name = name
			}
			return nil
		case !isNoRows(err):
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if _, _, err := getOrCreateUser(ctx, tx, ownerID, ""); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, insertLibrary, lib.Kind, lib.ID, name, ownerID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created = true
		info = models.LibraryInfo{Library: lib, Name: name, OwnerID: ownerID}
		return nil
	})

	return created, info, err
}

func (l *libraryRepository) Libraries(ctx context.Context) ([]models.LibraryInfo, error) {
	log := logger.FromContext(ctx)

	rows, err := l.db.QueryContext(ctx, listLibraries)
	if err != nil {
		log.Err(err).Str("func", "libraryRepository.Libraries").Msg("failed to list libraries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.LibraryInfo
	for rows.Next() {
		var info models.LibraryInfo
		if err := rows.Scan(&info.Kind, &info.ID, &info.Name, &info.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return out, nil
}

// RemoveLibrary deletes the library together with its versions, records and
// deletion queue entries.
func (l *libraryRepository) RemoveLibrary(ctx context.Context, lib models.Library) error {
	return l.db.withTx(ctx, "libraryRepository.RemoveLibrary", func(tx *sql.Tx) error {
		for _, table := range libraryScopedTables {
			del := psql.Delete(table).Where(squirrel.Eq{"kind": lib.Kind, "library_id": lib.ID})
			if _, err := execBuilt(ctx, tx, del); err != nil {
				return err
			}
		}
		return nil
	})
}

func getOrCreateUser(ctx context.Context, tx *sql.Tx, id int64, name string) (bool, models.User, error) {
	var user models.User
	err := tx.QueryRowContext(ctx, getUser, id).Scan(&user.ID, &user.Name)
	if err == nil {
		return false, user, nil
	}
	if !isNoRows(err) {
		return false, models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, insertUser, id, name); err != nil {
		return false, models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return true, models.User{ID: id, Name: name}, nil
}
