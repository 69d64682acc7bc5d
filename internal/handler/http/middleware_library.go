package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zotero-sync/internal/utils"
	"github.com/MKhiriev/zotero-sync/models"
)

type libraryCtxKey struct{}

// library resolves {libraryID} to a library of kind and checks that the
// authenticated user may use it.
func (h *Handler) library(kind models.LibraryKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, "libraryID"), 10, 64)
			if err != nil || id <= 0 {
				writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLibraryID, chi.URLParam(r, "libraryID")))
				return
			}

			ctx := r.Context()
			userID, _ := utils.GetUserIDFromContext(ctx)
			lib := models.Library{Kind: kind, ID: id}

			if err := h.services.LibraryService.CheckAccess(ctx, userID, lib); err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, libraryCtxKey{}, lib)))
		})
	}
}

func libraryFromRequest(r *http.Request) models.Library {
	lib, _ := r.Context().Value(libraryCtxKey{}).(models.Library)
	return lib
}
