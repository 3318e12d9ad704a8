package driver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tvstream/internal/application"
	"tvstream/internal/notification"
)

// NotificationHTTPHandler handles HTTP requests for viewer
// notifications.
type NotificationHTTPHandler struct {
	service *application.NotificationService
}

// NewNotificationHTTPHandler creates a new HTTP handler for
// notifications.
func NewNotificationHTTPHandler(service *application.NotificationService) *NotificationHTTPHandler {
	return &NotificationHTTPHandler{service: service}
}

// notificationRequest represents the JSON body for creating a
// notification.
type notificationRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Link     string `json:"link"`
}

// HandleUnread handles GET /api/notifications
func (h *NotificationHTTPHandler) HandleUnread(w http.ResponseWriter, r *http.Request) {
	unread, err := h.service.ListUnread(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, unread)
}

// HandleMarkRead handles POST /api/notifications/{id}/read
func (h *NotificationHTTPHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleAdminList handles GET /api/admin/notifications
func (h *NotificationHTTPHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

// HandleCreate handles POST /api/admin/notifications
func (h *NotificationHTTPHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), req.Title, req.Message, req.Type, req.Priority, req.Link)
	if err != nil {
		if errors.Is(err, notification.ErrMissingFields) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleDelete handles DELETE /api/admin/notifications/{id}
func (h *NotificationHTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	removed, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, removed)
}
