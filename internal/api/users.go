package api

import (
	"net/http"
	"strconv"
)

// GetReputationHandler handles GET /users/{userId}/reputation
func (h *HandlerProvider) GetReputationHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := h.svc.GetReputation(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReputation(rep))
}

// ListNotificationsHandler handles GET /notifications?unread=true
func (h *HandlerProvider) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	unreadOnly := false

	if raw := r.URL.Query().Get("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid unread flag")
			return
		}

		unreadOnly = v
	}

	list, err := h.svc.ListNotifications(r.Context(), caller(r), unreadOnly)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(list, toNotification))
}

// MarkNotificationReadHandler handles POST /notifications/{notificationId}/read
func (h *HandlerProvider) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "notificationId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.svc.MarkNotificationRead(r.Context(), caller(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
