package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/utils"
)

// keyRequest is the body of POST /keys. Requested access is accepted as
// sent: every key grants full access to the libraries of its user.
type keyRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) createKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req keyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	key, err := h.services.AuthService.CreateKey(ctx, req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", key.UserID).Str("key_name", req.Name).Msg("api key issued")
	if _, err := utils.WriteJSON(w, key, http.StatusCreated); err != nil {
		log.Err(err).Msg("write response")
	}
}
