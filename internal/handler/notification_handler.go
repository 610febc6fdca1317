package handler

import (
	"net/http"
	"strconv"
	"time"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"
	"dashboard-service/pkg/logger"
	"dashboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListNotifications retrieves the caller's notifications, newest
// first. Notifications are personal; company membership plays no part.
func (h *Handler) ListNotifications(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("notification", "list")

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	notifications, err := h.store.ListUserNotifications(c.Request().Context(), user.ID)
	if err != nil {
		return storageFailed(c, log, "list_notifications", err)
	}

	return c.JSON(http.StatusOK, notifications)
}

// UnreadNotificationCount returns the caller's unread count
func (h *Handler) UnreadNotificationCount(c echo.Context) error {
	log := logger.FromContext(c)

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	count, err := h.store.CountUnreadNotifications(c.Request().Context(), user.ID)
	if err != nil {
		return storageFailed(c, log, "count_unread_notifications", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkNotificationRead flips one of the caller's notifications to
// read. Repeating the call succeeds without moving the read stamp.
func (h *Handler) MarkNotificationRead(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("notification", "update")

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid notification ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid notification ID"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	ok, err := h.store.MarkNotificationRead(c.Request().Context(), user.ID, uint(id))
	if err != nil {
		return storageFailed(c, log, "mark_notification_read", err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "notification marked as read"})
}

// CreateNotification raises a notification for a user, typically from
// a system action.
func (h *Handler) CreateNotification(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("notification", "create")

	if _, err := h.principal(c); err != nil {
		return err
	}

	var req schema.CreateNotificationInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	notification := model.Notification{
		UserID:   req.UserID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		Metadata: req.Metadata,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateNotification(c.Request().Context(), &notification); err != nil {
		return storageFailed(c, log, "create_notification", err)
	}

	return c.JSON(http.StatusCreated, notification)
}
