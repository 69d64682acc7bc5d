package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"slices"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

type storedObject struct {
	version int64
	body    []byte
	trashed bool
}

type libraryState struct {
	version int64
	objects map[Resource]map[string]*storedObject
	deleted map[Resource]map[string]int64
}

func newLibraryState() *libraryState {
	st := &libraryState{
		objects: make(map[Resource]map[string]*storedObject),
		deleted: make(map[Resource]map[string]int64),
	}
	for _, res := range Resources {
		st.objects[res] = make(map[string]*storedObject)
		st.deleted[res] = make(map[string]int64)
	}
	return st
}

type objectRepository struct {
	mu        sync.RWMutex
	libraries map[models.Library]*libraryState

	logger *logger.Logger
}

func NewObjectRepository(logger *logger.Logger) ObjectRepository {
	logger.Debug().Msg("creating object repository")
	return &objectRepository{
		libraries: make(map[models.Library]*libraryState),
		logger:    logger,
	}
}

// state returns the state of lib, creating it on first use. Callers hold
// the write lock.
func (r *objectRepository) state(lib models.Library) *libraryState {
	st, ok := r.libraries[lib]
	if !ok {
		st = newLibraryState()
		r.libraries[lib] = st
	}
	return st
}

// peek returns the state of lib or an empty one. Callers hold a lock.
func (r *objectRepository) peek(lib models.Library) *libraryState {
	if st, ok := r.libraries[lib]; ok {
		return st
	}
	return newLibraryState()
}

func (r *objectRepository) Versions(_ context.Context, lib models.Library, q ObjectQuery) (map[string]int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := r.peek(lib)
	out := make(map[string]int64)
	for key, obj := range st.objects[q.Resource] {
		if matches(q, key, obj) {
			out[key] = obj.version
		}
	}
	return out, st.version, nil
}

func (r *objectRepository) Objects(_ context.Context, lib models.Library, q ObjectQuery) ([][]byte, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := r.peek(lib)
	objs := st.objects[q.Resource]
	keys := slices.Sorted(maps.Keys(objs))

	out := make([][]byte, 0, len(keys))
	for _, key := range keys {
		if obj := objs[key]; matches(q, key, obj) {
			out = append(out, slices.Clone(obj.body))
		}
	}
	return out, st.version, nil
}

func matches(q ObjectQuery, key string, obj *storedObject) bool {
	if obj.version <= q.Since {
		return false
	}
	if q.TrashOnly && !obj.trashed {
		return false
	}
	return len(q.Keys) == 0 || slices.Contains(q.Keys, key)
}

func (r *objectRepository) Deleted(_ context.Context, lib models.Library, since int64) (map[Resource][]string, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := r.peek(lib)
	out := make(map[Resource][]string, len(Resources))
	for _, res := range Resources {
		keys := []string{}
		for key, v := range st.deleted[res] {
			if v > since {
				keys = append(keys, key)
			}
		}
		slices.Sort(keys)
		out[res] = keys
	}
	return out, st.version, nil
}

func (r *objectRepository) Write(ctx context.Context, lib models.Library, res Resource, ifUnmodifiedSince int64, writes []models.ObjectWrite) (models.WriteOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.state(lib)
	if ifUnmodifiedSince >= 0 && ifUnmodifiedSince < st.version {
		return models.WriteOutcome{}, fmt.Errorf("%w: %d < %d", ErrVersionConflict, ifUnmodifiedSince, st.version)
	}

	out := models.WriteOutcome{
		Successful: make(map[int]json.RawMessage),
		Unchanged:  make(map[int]string),
		Failed:     make(map[int]models.WriteFailure),
	}
	next := st.version + 1
	objs := st.objects[res]

	for i, w := range writes {
		existing := objs[w.Key]
		switch {
		case existing != nil && w.Version >= 0 && w.Version < existing.version:
			out.Failed[i] = models.WriteFailure{
				Key:     w.Key,
				Code:    http.StatusPreconditionFailed,
				Message: fmt.Sprintf("Object has been modified since specified version (expected %d, found %d)", w.Version, existing.version),
			}
			continue
		case existing == nil && w.Version > 0:
			out.Failed[i] = models.WriteFailure{
				Key:     w.Key,
				Code:    http.StatusNotFound,
				Message: fmt.Sprintf("Object doesn't exist (expected version %d)", w.Version),
			}
			continue
		case existing != nil && sameContent(existing.body, w.Body):
			out.Unchanged[i] = w.Key
			continue
		}

		body, err := stamp(w.Body, w.Key, next)
		if err != nil {
			out.Failed[i] = models.WriteFailure{Key: w.Key, Code: http.StatusBadRequest, Message: err.Error()}
			continue
		}

		objs[w.Key] = &storedObject{version: next, body: body, trashed: isTrashed(body)}
		delete(st.deleted[res], w.Key)
		out.Successful[i] = slices.Clone(body)
	}

	if len(out.Successful) > 0 {
		st.version = next
		if res == ResourceItems {
			st.refreshTags(next)
		}
	}
	out.Version = st.version

	logger.FromContext(ctx).Debug().
		Stringer("library", lib).
		Str("resource", string(res)).
		Int("successful", len(out.Successful)).
		Int("unchanged", len(out.Unchanged)).
		Int("failed", len(out.Failed)).
		Int64("version", st.version).
		Msg("objects written")
	return out, nil
}

func (r *objectRepository) Delete(ctx context.Context, lib models.Library, res Resource, ifUnmodifiedSince int64, keys []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.state(lib)
	if ifUnmodifiedSince < st.version {
		return st.version, fmt.Errorf("%w: %d < %d", ErrVersionConflict, ifUnmodifiedSince, st.version)
	}

	next := st.version + 1
	removed := 0
	for _, key := range keys {
		if _, ok := st.objects[res][key]; !ok {
			continue
		}
		delete(st.objects[res], key)
		st.deleted[res][key] = next
		removed++
	}

	if removed > 0 {
		st.version = next
		if res == ResourceItems {
			st.refreshTags(next)
		}
	}

	logger.FromContext(ctx).Debug().
		Stringer("library", lib).
		Str("resource", string(res)).
		Int("removed", removed).
		Int64("version", st.version).
		Msg("objects deleted")
	return st.version, nil
}

// refreshTags derives the tag objects from the item bodies. Tags whose item
// count changed are stamped with version; tags no item carries any more go
// to the deletion log.
func (st *libraryState) refreshTags(version int64) {
	counts := make(map[string]int64)
	for _, item := range st.objects[ResourceItems] {
		for _, name := range itemTags(item.body) {
			counts[name]++
		}
	}

	tags := st.objects[ResourceTags]
	for name, obj := range tags {
		if _, ok := counts[name]; !ok {
			delete(tags, name)
			st.deleted[ResourceTags][name] = version
		} else if gjson.GetBytes(obj.body, "meta.numItems").Int() == counts[name] {
			delete(counts, name)
		}
	}

	for name, n := range counts {
		body, _ := json.Marshal(map[string]any{
			"key":     name,
			"tag":     name,
			"version": version,
			"meta":    map[string]int64{"numItems": n},
		})
		tags[name] = &storedObject{version: version, body: body}
		delete(st.deleted[ResourceTags], name)
	}
}

func itemTags(body []byte) []string {
	var names []string
	for _, path := range []string{"data.tags.#.tag", "tags.#.tag"} {
		for _, t := range gjson.GetBytes(body, path).Array() {
			if name := t.String(); name != "" && !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names
}

func isTrashed(body []byte) bool {
	return gjson.GetBytes(body, "deleted").Bool() || gjson.GetBytes(body, "data.deleted").Bool()
}

func stamp(body []byte, key string, version int64) ([]byte, error) {
	if len(body) == 0 {
		body = []byte("{}")
	}
	body, err := sjson.SetBytes(body, "key", key)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(body, "version", version)
}

// sameContent compares two bodies ignoring their key and version.
func sameContent(a, b []byte) bool {
	var left, right map[string]any
	if json.Unmarshal(a, &left) != nil || json.Unmarshal(b, &right) != nil {
		return false
	}
	for _, m := range []map[string]any{left, right} {
		delete(m, "key")
		delete(m, "version")
	}
	return reflect.DeepEqual(left, right)
}
