package driver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tvstream/internal/application"
	"tvstream/internal/ticker"
)

// TickerHTTPHandler handles HTTP requests for the scrolling-text
// messages.
type TickerHTTPHandler struct {
	service *application.TickerService
}

// NewTickerHTTPHandler creates a new HTTP handler for ticker messages.
func NewTickerHTTPHandler(service *application.TickerService) *TickerHTTPHandler {
	return &TickerHTTPHandler{service: service}
}

// tickerRequest represents the JSON body for creating a message.
// Active defaults to true when omitted.
type tickerRequest struct {
	Text   string `json:"text"`
	Active *bool  `json:"active"`
}

// HandleActive handles GET /api/scrolling-text
func (h *TickerHTTPHandler) HandleActive(w http.ResponseWriter, r *http.Request) {
	active, err := h.service.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": active})
}

// HandleAdminList handles GET /api/admin/scrolling-text
func (h *TickerHTTPHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// HandleCreate handles POST /api/admin/scrolling-text
func (h *TickerHTTPHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := h.service.Create(r.Context(), req.Text, active)
	if err != nil {
		if errors.Is(err, ticker.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/admin/scrolling-text/{id}
func (h *TickerHTTPHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var patch application.MessagePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ticker.ErrMessageNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/admin/scrolling-text/{id}
func (h *TickerHTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ticker.ErrMessageNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
