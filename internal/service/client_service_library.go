package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/models"
)

type clientLibraryService struct {
	storages *store.ClientStorages
	logger   *logger.Logger
}

func NewClientLibraryService(storages *store.ClientStorages, logger *logger.Logger) ClientLibraryService {
	return &clientLibraryService{storages: storages, logger: logger}
}

func (l *clientLibraryService) Get(ctx context.Context, lib models.Library, typ models.ObjectType, key string) (models.Record, error) {
	return l.storages.Records.Get(ctx, lib, typ, key)
}

// Save implements ClientLibraryService. Types that are never written by the
// client are refused.
func (l *clientLibraryService) Save(ctx context.Context, lib models.Library, typ models.ObjectType, key string, body json.RawMessage) (models.Record, error) {
	if !adapter.Submittable(typ) {
		return models.Record{}, fmt.Errorf("%w: %s cannot be edited locally", ErrRejected, typ)
	}
	if !json.Valid(body) {
		return models.Record{}, fmt.Errorf("%w: body of %q is not valid JSON", store.ErrInvalidRecord, key)
	}

	return l.storages.Records.SaveLocal(ctx, lib, typ, key, body)
}

// Delete implements ClientLibraryService.
func (l *clientLibraryService) Delete(ctx context.Context, lib models.Library, typ models.ObjectType, key string) error {
	log := logger.FromContext(ctx)

	if !adapter.DeletionSupported(typ) {
		log.Warn().
			Str("func", "clientLibraryService.Delete").
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Str("key", key).
			Msg("deletion refused, type cannot be deleted by key")
		return fmt.Errorf("%w: %s", ErrUnsupportedDeletionTarget, typ)
	}

	entry, queued, err := l.storages.Records.MarkDeleted(ctx, lib, typ, key)
	if err != nil {
		return err
	}

	if queued {
		log.Debug().
			Stringer("library", lib).
			Str("object_type", typ.String()).
			Str("key", key).
			Int64("version", entry.Version).
			Msg("deletion queued")
	}
	return nil
}

// Status implements ClientLibraryService.
func (l *clientLibraryService) Status(ctx context.Context) ([]models.LibraryStatus, []models.DeletionEntry, error) {
	libs, err := l.storages.Libraries.Libraries(ctx)
	if err != nil {
		return nil, nil, err
	}

	out := make([]models.LibraryStatus, 0, len(libs))
	for _, info := range libs {
		versions, err := l.storages.Versions.List(ctx, info.Library)
		if err != nil {
			return nil, nil, err
		}

		modified := 0
		for _, typ := range models.SyncOrder {
			recs, err := l.storages.Records.Modified(ctx, info.Library, typ)
			if err != nil {
				return nil, nil, err
			}
			modified += len(recs)
		}

		out = append(out, models.LibraryStatus{Library: info, Versions: versions, Modified: modified})
	}

	queue, err := l.storages.Deletions.All(ctx)
	if err != nil {
		return nil, nil, err
	}

	return out, queue, nil
}

func (l *clientLibraryService) Subscribe() (<-chan models.ChangeBatch, func()) {
	return l.storages.Records.Subscribe()
}
