package service

import (
	"context"

	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService compares a remote version list with the local replica of one
// library and object type.
type SyncService interface {
	// BuildSyncPlan returns the keys to download and, for a full remote list,
	// the local keys the server no longer has.
	BuildSyncPlan(ctx context.Context, remote models.RemoteVersions, local map[string]models.Record) (models.SyncPlan, error)
}

// AuthService manages the accounts and API keys of the reference server.
type AuthService interface {
	// CreateAccount registers name with a hashed password. A zero id picks
	// the next free one.
	CreateAccount(ctx context.Context, id int64, name, password string) (models.Account, error)
	// CreateKey checks the credentials and issues an API key.
	CreateKey(ctx context.Context, name, password string) (models.APIKey, error)
	// ParseKey returns the user an API key was issued to.
	ParseKey(ctx context.Context, key string) (int64, error)
}

// LibraryService serves the versioned libraries of the reference server.
type LibraryService interface {
	// CheckAccess fails unless userID may read and write lib.
	CheckAccess(ctx context.Context, userID int64, lib models.Library) error
	Versions(ctx context.Context, lib models.Library, q store.ObjectQuery) (map[string]int64, int64, error)
	Objects(ctx context.Context, lib models.Library, q store.ObjectQuery) ([][]byte, int64, error)
	Deleted(ctx context.Context, lib models.Library, since int64) (map[store.Resource][]string, int64, error)
	// Write decodes a JSON array of objects and stores it. Objects without
	// a key get a fresh one.
	Write(ctx context.Context, lib models.Library, res store.Resource, ifUnmodifiedSince int64, body []byte) (models.WriteOutcome, error)
	Delete(ctx context.Context, lib models.Library, res store.Resource, ifUnmodifiedSince int64, keys []string) (int64, error)

	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	// Group returns the metadata of a group userID belongs to.
	Group(ctx context.Context, userID, groupID int64) (models.Group, error)
	// GroupVersions lists id→version of the groups of userID.
	GroupVersions(ctx context.Context, userID int64) (map[string]int64, int64, error)
}
