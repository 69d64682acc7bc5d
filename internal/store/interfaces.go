package store

import (
	"context"

	"github.com/MKhiriev/zotero-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// Resource is an object collection of a library on the API server.
type Resource string

const (
	ResourceCollections Resource = "collections"
	ResourceItems       Resource = "items"
	ResourceSearches    Resource = "searches"
	ResourceTags        Resource = "tags"
)

// Resources lists every resource in the order of the deletion log.
var Resources = []Resource{ResourceCollections, ResourceItems, ResourceSearches, ResourceTags}

// ObjectQuery selects objects of one resource. Keys narrows the result to
// the given keys; TrashOnly keeps trashed items only.
type ObjectQuery struct {
	Resource  Resource
	Since     int64
	Keys      []string
	TrashOnly bool
}

// AccountRepository keeps the accounts of the API server.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByName(ctx context.Context, name string) (models.Account, error)
}

// GroupRepository keeps group libraries and their members.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	GetGroup(ctx context.Context, id int64) (models.Group, error)
	// GroupsOf lists the groups userID belongs to, ordered by id.
	GroupsOf(ctx context.Context, userID int64) ([]models.Group, error)
}

// ObjectRepository is the versioned object store of the API server. Every
// library has one version counter; each accepted write or deletion bumps it
// once and stamps the touched objects with the new value.
type ObjectRepository interface {
	// Versions returns key→version of the objects matching q changed after
	// q.Since, plus the library version.
	Versions(ctx context.Context, lib models.Library, q ObjectQuery) (map[string]int64, int64, error)
	// Objects returns the bodies matching q, ordered by key, plus the
	// library version.
	Objects(ctx context.Context, lib models.Library, q ObjectQuery) ([][]byte, int64, error)
	// Deleted returns the keys deleted after since for every resource.
	Deleted(ctx context.Context, lib models.Library, since int64) (map[Resource][]string, int64, error)
	// Write applies writes in body order. A non-negative ifUnmodifiedSince
	// older than the library version fails the whole request with
	// ErrVersionConflict.
	Write(ctx context.Context, lib models.Library, res Resource, ifUnmodifiedSince int64, writes []models.ObjectWrite) (models.WriteOutcome, error)
	// Delete removes keys and records them in the deletion log.
	Delete(ctx context.Context, lib models.Library, res Resource, ifUnmodifiedSince int64, keys []string) (int64, error)
}
