package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/utils"
)

const headerAPIKey = "Zotero-API-Key"

// auth resolves the API key of the request to a user and stores the user id
// in the request context under [utils.UserIDCtxKey]. The key is read from
// the Zotero-API-Key header or from "Authorization: Bearer <key>".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key, err := apiKeyFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseKey(ctx, key)
		if err != nil {
			log.Err(err).Msg("api key rejected")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}

func apiKeyFromRequest(r *http.Request) (string, error) {
	if key := strings.TrimSpace(r.Header.Get(headerAPIKey)); key != "" {
		return key, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAPIKey
	}
	return getKeyFromAuthHeader(authHeader)
}

// getKeyFromAuthHeader extracts the key of an "Authorization: <scheme> <key>"
// header value.
func getKeyFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
