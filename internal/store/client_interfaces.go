// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/zotero-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VersionRepository persists the last fully applied version per library and
// object type. A missing entry means the pair was never synchronised.
type VersionRepository interface {
	Get(ctx context.Context, lib models.Library, typ models.ObjectType) (int64, bool, error)
	Set(ctx context.Context, lib models.Library, typ models.ObjectType, version int64) error
	List(ctx context.Context, lib models.Library) (map[models.ObjectType]int64, error)
}

// LibraryRepository keeps the set of known libraries and their owners.
type LibraryRepository interface {
	GetOrCreateUser(ctx context.Context, id int64, name string) (bool, models.User, error)
	GetOrCreateLibrary(ctx context.Context, lib models.Library, ownerID int64, name string) (bool, models.LibraryInfo, error)
	Libraries(ctx context.Context) ([]models.LibraryInfo, error)
	// RemoveLibrary drops the library with its versions, records and queued
	// deletions.
	RemoveLibrary(ctx context.Context, lib models.Library) error
}

// RecordRepository is the local replica of remote objects.
type RecordRepository interface {
	Upsert(ctx context.Context, lib models.Library, typ models.ObjectType, objs ...models.RemoteObject) ([]models.UpsertResult, error)
	ApplyDeletions(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string) ([]string, error)
	// States returns key, version and status of every record, without bodies.
	States(ctx context.Context, lib models.Library, typ models.ObjectType) (map[string]models.Record, error)
	Get(ctx context.Context, lib models.Library, typ models.ObjectType, key string) (models.Record, error)
	Modified(ctx context.Context, lib models.Library, typ models.ObjectType) ([]models.Record, error)
	SaveLocal(ctx context.Context, lib models.Library, typ models.ObjectType, key string, body json.RawMessage) (models.Record, error)
	MarkDeleted(ctx context.Context, lib models.Library, typ models.ObjectType, key string) (models.DeletionEntry, bool, error)
	MarkSynced(ctx context.Context, lib models.Library, typ models.ObjectType, objs ...models.RemoteObject) error
	Subscribe() (<-chan models.ChangeBatch, func())
}

// DeletionQueue holds local deletions until the server acknowledges them.
type DeletionQueue interface {
	Pending(ctx context.Context, lib models.Library, typ models.ObjectType) ([]models.DeletionEntry, error)
	All(ctx context.Context) ([]models.DeletionEntry, error)
	Requeue(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string, version int64) error
	Confirm(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string) ([]string, error)
}
