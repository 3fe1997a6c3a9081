package handler

import (
	"fmt"
	"net/http"

	model "livemarket/internal/models"
	"livemarket/services/live/helpers"
	"livemarket/utils"

	"github.com/gin-gonic/gin"
)

type NotificationReader interface {
	ListNotificationsByRecipient(recipientID string) ([]model.Notification, error)
}

type NotificationHandler struct {
	store NotificationReader
}

func NewNotificationHandler(store NotificationReader) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// ListNotificationsHandler handles GET /users/:user_id/notifications
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	userID := c.Param("user_id")
	notifications, err := h.store.ListNotificationsByRecipient(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListNotificationsHandler: error retrieving notifications", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if notifications == nil {
		notifications = []model.Notification{}
	}

	utils.JSONResponse(c, http.StatusOK, notifications, "notifications retrieved successfully")
	helpers.LogSuccess("ListNotificationsHandler", "notifications retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(notifications),
	})
}
