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

// ListActivities retrieves the company's audit feed, newest first,
// truncated to the limit query parameter (default 10)
func (h *Handler) ListActivities(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("activity", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	defer prometheus.TrackDBOperation("query")(time.Now())
	activities, err := h.store.ListCompanyActivities(c.Request().Context(), companyID, limit)
	if err != nil {
		return storageFailed(c, log, "list_activities", err)
	}

	return c.JSON(http.StatusOK, activities)
}

// CreateActivity appends an entry to the company's audit feed. The
// acting user is always the principal.
func (h *Handler) CreateActivity(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("activity", "create")

	user, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	var req schema.CreateActivityInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	activity := model.Activity{
		CompanyID:   companyID,
		UserID:      user.ID,
		Type:        req.Type,
		Description: req.Description,
		Source:      req.Source,
		Metadata:    req.Metadata,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateActivity(c.Request().Context(), &activity); err != nil {
		return storageFailed(c, log, "create_activity", err)
	}

	return c.JSON(http.StatusCreated, activity)
}
