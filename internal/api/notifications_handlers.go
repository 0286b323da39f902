package api

import (
	"fmt"
	"net/http"

	"github.com/lealre/cafes-backend/internal/auth"
	"github.com/lealre/cafes-backend/internal/generics"
	"github.com/lealre/cafes-backend/internal/logx"
	"github.com/lealre/cafes-backend/internal/services/notifications"
)

func (api *API) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	limit := generics.StringToInt(r.URL.Query().Get("limit"))
	onlyUnread := r.URL.Query().Get("unread") == "true"

	feed, err := notifications.GetFeed(api.Db, r.Context(), currentuser.Id, limit, onlyUnread)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "database error while getting notifications")
		return
	}

	respondWithJSON(w, http.StatusOK, notifications.NotificationFeedResponse{Notifications: feed})
}

func (api *API) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	notificationId := r.PathValue("id")
	if notificationId == "" {
		respondWithError(w, http.StatusBadRequest, "Notification id is required")
		return
	}

	if err := notifications.MarkRead(api.Db, r.Context(), notificationId, currentuser.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(notifications.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Notification %s marked as read", notificationId)})
}

func (api *API) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	currentuser := auth.GetUserFromContext(r.Context())

	notificationId := r.PathValue("id")
	if notificationId == "" {
		respondWithError(w, http.StatusBadRequest, "Notification id is required")
		return
	}

	if err := notifications.Delete(api.Db, r.Context(), notificationId, currentuser.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(notifications.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting notification")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: fmt.Sprintf("Notification %s deleted", notificationId)})
}
