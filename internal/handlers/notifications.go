package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notebook-ai/internal/service"
	"notebook-ai/internal/storage"
)

const defaultNotificationLimit = 50

// NotificationsResponse lists the newest notifications of a notebook.
//
// swagger:model NotificationsResponse
type NotificationsResponse struct {
	Notifications []*storage.Notification `json:"notifications"`
}

// NotificationsHandler serves the notification feed of a notebook.
type NotificationsHandler struct {
	notifications service.NotificationService
}

// NewNotificationsHandler creates a new NotificationsHandler.
func NewNotificationsHandler(notifications service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// ServeHTTP handles HTTP requests for the notification feed.
//
// swagger:route GET /api/notebooks/{notebookID}/notifications listNotifications
func (h *NotificationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit := defaultNotificationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	items, err := h.notifications.List(ctx, chi.URLParam(r, "notebookID"), limit)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list notifications")
		return
	}
	writeJSON(ctx, w, http.StatusOK, NotificationsResponse{Notifications: items})
}
