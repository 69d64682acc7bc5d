package adapter

import (
	"fmt"

	"github.com/MKhiriev/zotero-sync/models"
)

// Batch limits of the remote API.
const (
	FetchBatchSize    = 50
	SubmitBatchSize   = 50
	DeletionBatchSize = 50
)

// objectPolicy describes how one object type is addressed on the API.
// Every per-type difference of the protocol lives in objectPolicies.
type objectPolicy struct {
	// path is the resource segment under the library path used for version
	// lists and fetches.
	path string
	// writePath is the resource segment for submissions and deletions.
	writePath string
	// keyParam is the query parameter carrying keys on fetch.
	keyParam string
	// keySep joins keys inside keyParam.
	keySep string
	// deletionParam is the query parameter carrying keys on deletion; empty
	// when the type cannot be deleted key by key.
	deletionParam string
	// submittable is false for types that are never written by the client.
	submittable bool
	// perKeyFetch types are fetched one object per request at
	// "<path>/<key>" relative to the API root.
	perKeyFetch bool
	// personalOnly types are listed against the personal library only.
	personalOnly bool
	// deletedField is the member of the deletion log naming this type.
	deletedField string
}

var objectPolicies = map[models.ObjectType]objectPolicy{
	models.ObjectCollection: {
		path:          "collections",
		writePath:     "collections",
		keyParam:      "collectionKey",
		keySep:        ",",
		deletionParam: "collectionKey",
		submittable:   true,
		deletedField:  "collections",
	},
	models.ObjectItem: {
		path:          "items",
		writePath:     "items",
		keyParam:      "itemKey",
		keySep:        ",",
		deletionParam: "itemKey",
		submittable:   true,
		deletedField:  "items",
	},
	models.ObjectTrash: {
		path:          "items/trash",
		writePath:     "items",
		keyParam:      "itemKey",
		keySep:        ",",
		deletionParam: "itemKey",
		submittable:   true,
		deletedField:  "items",
	},
	models.ObjectSearch: {
		path:          "searches",
		writePath:     "searches",
		keyParam:      "searchKey",
		keySep:        ",",
		deletionParam: "searchKey",
		submittable:   true,
		deletedField:  "searches",
	},
	models.ObjectTag: {
		path:         "tags",
		writePath:    "tags",
		keyParam:     "tag",
		keySep:       " || ",
		deletedField: "tags",
	},
	models.ObjectGroupMetadata: {
		path:         "groups",
		writePath:    "groups",
		perKeyFetch:  true,
		personalOnly: true,
	},
}

// policyFor returns the policy of typ after checking that lib and typ form a
// valid combination.
func policyFor(lib models.Library, typ models.ObjectType) (objectPolicy, error) {
	if !lib.Valid() {
		return objectPolicy{}, fmt.Errorf("%w: library %q", ErrMalformedRequest, lib)
	}

	p, ok := objectPolicies[typ]
	if !ok {
		return objectPolicy{}, fmt.Errorf("%w: object type %q", ErrMalformedRequest, typ)
	}

	if p.personalOnly && lib.Kind != models.LibraryPersonal {
		return objectPolicy{}, fmt.Errorf("%w: %s is not available for %s", ErrMalformedRequest, typ, lib)
	}

	return p, nil
}

// DeletionSupported reports whether objects of typ can be deleted key by key.
func DeletionSupported(typ models.ObjectType) bool {
	return objectPolicies[typ].deletionParam != ""
}

// Submittable reports whether local edits of typ can be pushed to the API.
func Submittable(typ models.ObjectType) bool {
	return objectPolicies[typ].submittable
}

// deletedTypes maps a member of the deletion log to the object types it
// applies to.
func deletedTypes(field string) []models.ObjectType {
	var types []models.ObjectType
	for _, typ := range models.AllObjectTypes {
		if objectPolicies[typ].deletedField == field {
			types = append(types, typ)
		}
	}
	return types
}
