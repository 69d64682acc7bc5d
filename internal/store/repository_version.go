package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

type versionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVersionRepository returns the SQLite-backed [VersionRepository].
func NewVersionRepository(db *DB, logger *logger.Logger) VersionRepository {
	return &versionRepository{db: db, logger: logger}
}

func (v *versionRepository) Get(ctx context.Context, lib models.Library, typ models.ObjectType) (int64, bool, error) {
	log := logger.FromContext(ctx)

	var version int64
	err := v.db.QueryRowContext(ctx, getVersion, lib.Kind, lib.ID, typ).Scan(&version)
	if isNoRows(err) {
		return 0, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.Get").
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Msg("failed to read stored version")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return version, true, nil
}

func (v *versionRepository) Set(ctx context.Context, lib models.Library, typ models.ObjectType, version int64) error {
	log := logger.FromContext(ctx)

	if _, err := v.db.ExecContext(ctx, setVersion, lib.Kind, lib.ID, typ, version); err != nil {
		log.Err(err).
			Str("func", "versionRepository.Set").
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Int64("version", version).
			Msg("failed to store version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (v *versionRepository) List(ctx context.Context, lib models.Library) (map[models.ObjectType]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := v.db.QueryContext(ctx, listVersions, lib.Kind, lib.ID)
	if err != nil {
		log.Err(err).
			Str("func", "versionRepository.List").
			Stringer("library", lib).
			Msg("failed to list versions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make(map[models.ObjectType]int64)
	for rows.Next() {
		var (
			typ     models.ObjectType
			version int64
		)
		if err := rows.Scan(&typ, &version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out[typ] = version
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return out, nil
}
