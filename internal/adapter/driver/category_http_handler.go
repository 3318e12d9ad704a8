package driver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"tvstream/internal/application"
	"tvstream/internal/category"
	"tvstream/internal/m3u"
)

// CategoryHTTPHandler handles HTTP requests for IPTV category
// management and aggregation.
type CategoryHTTPHandler struct {
	service *application.CategoryService
}

// NewCategoryHTTPHandler creates a new HTTP handler for categories.
func NewCategoryHTTPHandler(service *application.CategoryService) *CategoryHTTPHandler {
	return &CategoryHTTPHandler{service: service}
}

// channelResponse represents a configured channel in JSON format.
type channelResponse struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Logo     string `json:"logo,omitempty"`
	Group    string `json:"group,omitempty"`
	Language string `json:"language,omitempty"`
}

// categoryResponse represents a category in JSON format.
type categoryResponse struct {
	Key         string            `json:"key"`
	Label       string            `json:"label"`
	PlaylistURL string            `json:"playlistUrl"`
	Channels    []channelResponse `json:"channels"`
	Count       int               `json:"count"`
}

func toCategoryResponse(cat category.Category) categoryResponse {
	channels := make([]channelResponse, 0, len(cat.Channels()))
	for _, ch := range cat.Channels() {
		channels = append(channels, channelResponse{
			Title:    ch.Title(),
			URL:      ch.URL(),
			Logo:     ch.Logo(),
			Group:    ch.Group(),
			Language: ch.Language(),
		})
	}

	return categoryResponse{
		Key:         cat.Key(),
		Label:       cat.Label(),
		PlaylistURL: cat.PlaylistURL(),
		Channels:    channels,
		Count:       cat.Count(),
	}
}

// HandlePublicList handles GET /api/iptv-playlists
func (h *CategoryHTTPHandler) HandlePublicList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		response[i] = toCategoryResponse(cat)
	}

	writeJSON(w, http.StatusOK, map[string][]categoryResponse{"categories": response})
}

// HandleProxy handles GET /api/iptv/proxy/{key}
func (h *CategoryHTTPHandler) HandleProxy(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	summary, err := h.service.Aggregate(r.Context(), key)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// HandleExport handles GET /playlists/{key}.m3u
func (h *CategoryHTTPHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	summary, err := h.service.Aggregate(r.Context(), key)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	encoder := m3u.NewEncoder()
	for _, entry := range summary.Channels {
		encoder.Add(m3u.Track{
			Title: entry.Title,
			Logo:  entry.Logo,
			Group: entry.Group,
			URL:   entry.URL,
		})
	}

	w.Header().Set("Content-Type", "audio/x-mpegurl")
	w.WriteHeader(http.StatusOK)
	_ = encoder.Encode(w)
}

// HandleAdminList handles GET /api/admin/iptv-playlists
func (h *CategoryHTTPHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		response[i] = toCategoryResponse(cat)
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleCreate handles POST /api/admin/iptv-playlists
func (h *CategoryHTTPHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var payload category.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.service.CreateCategory(r.Context(), payload)
	if err != nil {
		if errors.Is(err, category.ErrCategoryAlreadyExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, category.ErrEmptyLabel) || errors.Is(err, category.ErrNoSource) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(cat))
}

// HandleUpdate handles PUT /api/admin/iptv-playlists/{key}
func (h *CategoryHTTPHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	key := category.Slugify(mux.Vars(r)["key"])

	var payload category.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.service.UpdateCategory(r.Context(), key, payload)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, category.ErrEmptyLabel) || errors.Is(err, category.ErrNoSource) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(cat))
}

// HandleDelete handles DELETE /api/admin/iptv-playlists/{key}
func (h *CategoryHTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	key := category.Slugify(mux.Vars(r)["key"])

	removed, err := h.service.DeleteCategory(r.Context(), key)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toCategoryResponse(removed))
}
