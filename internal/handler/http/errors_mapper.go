package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/service"
	"github.com/MKhiriev/zotero-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                   http.StatusBadRequest,
	service.ErrWrongPassword:                         http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid:               http.StatusForbidden,
	service.ErrUnauthorizedAccessToDifferentUserData: http.StatusForbidden,
	service.ErrLibraryNotFound:                       http.StatusNotFound,

	store.ErrVersionConflict:    http.StatusPreconditionFailed,
	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrInvalidRecord:      http.StatusBadRequest,

	ErrEmptyAPIKey:                http.StatusForbidden,
	ErrInvalidAuthorizationHeader: http.StatusForbidden,
	ErrInvalidLibraryID:           http.StatusNotFound,
	ErrInvalidVersion:             http.StatusBadRequest,
	ErrPreconditionRequired:       http.StatusPreconditionRequired,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Internal errors are
// logged and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request refused")
	http.Error(w, err.Error(), status)
}
