package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/utils"
)

const (
	headerIfUnmodifiedSinceVersion = "If-Unmodified-Since-Version"
	maxWriteBody                   = 10 << 20
)

// listObjects answers GET <library>/<path>. With format=versions it lists
// key→version, otherwise the full objects; since and the key parameter of
// the route narrow both.
func (h *Handler) listObjects(rt objectRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		lib := libraryFromRequest(r)

		since, err := queryVersion(r, "since")
		if err != nil {
			writeError(w, r, err)
			return
		}

		q := store.ObjectQuery{
			Resource:  rt.resource,
			Since:     since,
			Keys:      splitKeys(r.URL.Query().Get(rt.keyParam), rt.keySep),
			TrashOnly: rt.trashOnly,
		}

		if r.URL.Query().Get("format") == "versions" {
			versions, lmv, err := h.services.LibraryService.Versions(ctx, lib, q)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeVersioned(w, r, versions, lmv, http.StatusOK)
			return
		}

		bodies, lmv, err := h.services.LibraryService.Objects(ctx, lib, q)
		if err != nil {
			writeError(w, r, err)
			return
		}

		objects := make([]json.RawMessage, 0, len(bodies))
		for _, b := range bodies {
			objects = append(objects, b)
		}
		writeVersioned(w, r, objects, lmv, http.StatusOK)
	}
}

// writeObjects answers POST <library>/<path> with the per-object outcome.
func (h *Handler) writeObjects(rt objectRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		lib := libraryFromRequest(r)

		ifUnmodifiedSince, err := headerVersion(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWriteBody))
		if err != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}

		out, err := h.services.LibraryService.Write(ctx, lib, rt.resource, ifUnmodifiedSince, body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeVersioned(w, r, out, out.Version, http.StatusOK)
	}
}

// deleteObjects answers DELETE <library>/<path>?<keyParam>=a,b. The
// If-Unmodified-Since-Version header is required.
func (h *Handler) deleteObjects(rt objectRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		lib := libraryFromRequest(r)

		ifUnmodifiedSince, err := headerVersion(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if ifUnmodifiedSince < 0 {
			writeError(w, r, ErrPreconditionRequired)
			return
		}

		keys := splitKeys(r.URL.Query().Get(rt.keyParam), ",")
		version, err := h.services.LibraryService.Delete(ctx, lib, rt.resource, ifUnmodifiedSince, keys)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set(utils.HeaderLastModifiedVersion, strconv.FormatInt(version, 10))
		w.WriteHeader(http.StatusNoContent)
	}
}

// listDeleted answers GET <library>/deleted?since=N.
func (h *Handler) listDeleted(w http.ResponseWriter, r *http.Request) {
	since, err := queryVersion(r, "since")
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, lmv, err := h.services.LibraryService.Deleted(r.Context(), libraryFromRequest(r), since)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeVersioned(w, r, deleted, lmv, http.StatusOK)
}

func writeVersioned(w http.ResponseWriter, r *http.Request, data any, version int64, status int) {
	if _, err := utils.WriteVersionedJSON(w, data, version, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("write response")
	}
}

func queryVersion(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidVersion, name, raw)
	}
	return v, nil
}

// headerVersion parses If-Unmodified-Since-Version; -1 means absent.
func headerVersion(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(headerIfUnmodifiedSinceVersion))
	if raw == "" {
		return -1, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidVersion, headerIfUnmodifiedSinceVersion, raw)
	}
	return v, nil
}

func splitKeys(raw, sep string) []string {
	if raw == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.Split(raw, sep) {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
