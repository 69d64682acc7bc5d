package http

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/MKhiriev/zotero-sync/internal/utils"
	"github.com/MKhiriev/zotero-sync/models"
)

// groupObject is the API representation of a group.
type groupObject struct {
	ID      int64        `json:"id"`
	Version int64        `json:"version"`
	Data    models.Group `json:"data"`
}

// listGroups answers GET users/<id>/groups. With format=versions it lists
// group id→version.
func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	versions, latest, err := h.services.LibraryService.GroupVersions(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "versions" {
		writeVersioned(w, r, versions, latest, http.StatusOK)
		return
	}

	objects := make([]json.RawMessage, 0, len(versions))
	for _, lib := range sortedGroupIDs(versions) {
		g, err := h.services.LibraryService.Group(ctx, userID, lib)
		if err != nil {
			writeError(w, r, err)
			return
		}
		raw, err := json.Marshal(groupObject{ID: g.ID, Version: g.Version, Data: g})
		if err != nil {
			writeError(w, r, err)
			return
		}
		objects = append(objects, raw)
	}
	writeVersioned(w, r, objects, latest, http.StatusOK)
}

// getGroup answers GET groups/<id> with the group metadata.
func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	g, err := h.services.LibraryService.Group(ctx, userID, libraryFromRequest(r).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeVersioned(w, r, groupObject{ID: g.ID, Version: g.Version, Data: g}, g.Version, http.StatusOK)
}

func sortedGroupIDs(versions map[string]int64) []int64 {
	ids := make([]int64, 0, len(versions))
	for key := range versions {
		if id, err := strconv.ParseInt(key, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
