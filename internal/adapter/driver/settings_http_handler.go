package driver

import (
	"encoding/json"
	"net/http"

	"tvstream/internal/application"
	"tvstream/internal/settings"
)

// SettingsHTTPHandler handles HTTP requests for the site settings
// document.
type SettingsHTTPHandler struct {
	service *application.SettingsService
}

// NewSettingsHTTPHandler creates a new HTTP handler for settings.
func NewSettingsHTTPHandler(service *application.SettingsService) *SettingsHTTPHandler {
	return &SettingsHTTPHandler{service: service}
}

// settingsRequest represents the JSON body for updating settings.
// Omitted sections keep their stored value.
type settingsRequest struct {
	About  *settings.About  `json:"about"`
	Social *settings.Social `json:"social"`
}

// HandleGet handles GET /api/settings
func (h *SettingsHTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, current)
}

// HandleUpdate handles POST /api/admin/settings
func (h *SettingsHTTPHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merged, err := h.service.Update(r.Context(), req.About, req.Social)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, merged)
}
