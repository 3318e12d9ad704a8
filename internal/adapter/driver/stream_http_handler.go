package driver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tvstream/internal/application"
	"tvstream/internal/stream"
)

// StreamHTTPHandler handles HTTP requests for the curated stream
// catalog.
type StreamHTTPHandler struct {
	service *application.StreamService
}

// NewStreamHTTPHandler creates a new HTTP handler for streams.
func NewStreamHTTPHandler(service *application.StreamService) *StreamHTTPHandler {
	return &StreamHTTPHandler{service: service}
}

func streamID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

// HandleCatalog handles GET /api/streams
func (h *StreamHTTPHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.Catalog(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

// HandleCategories handles GET /api/categories
func (h *StreamHTTPHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stream.Catalog)
}

// HandleAdminList handles GET /api/admin/streams
func (h *StreamHTTPHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	streams, err := h.service.ListStreams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, streams)
}

// HandleCreate handles POST /api/admin/streams
func (h *StreamHTTPHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var candidate stream.Stream
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateStream(r.Context(), candidate)
	if err != nil {
		if errors.Is(err, stream.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/admin/streams/{id}
func (h *StreamHTTPHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := streamID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid stream id")
		return
	}

	var patch application.StreamPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateStream(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, stream.ErrStreamNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/admin/streams/{id}
func (h *StreamHTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := streamID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid stream id")
		return
	}

	removed, err := h.service.DeleteStream(r.Context(), id)
	if err != nil {
		if errors.Is(err, stream.ErrStreamNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, removed)
}
