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
	"gorm.io/datatypes"
)

// ListRecommendations retrieves the company's AI recommendations,
// highest confidence first
func (h *Handler) ListRecommendations(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("recommendation", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	recs, err := h.store.ListCompanyRecommendations(c.Request().Context(), companyID)
	if err != nil {
		return storageFailed(c, log, "list_recommendations", err)
	}

	return c.JSON(http.StatusOK, recs)
}

// CreateRecommendation stores a generated recommendation for the
// current company
func (h *Handler) CreateRecommendation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("recommendation", "create")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	var req schema.CreateRecommendationInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	rec := model.AiRecommendation{
		CompanyID:       companyID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Priority:        req.Priority,
		Confidence:      req.Confidence,
		EstimatedImpact: req.EstimatedImpact,
		RequiredActions: datatypes.NewJSONSlice(req.RequiredActions),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateRecommendation(c.Request().Context(), &rec); err != nil {
		return storageFailed(c, log, "create_recommendation", err)
	}

	log.Info("Recommendation created",
		zap.Uint("id", rec.ID),
		zap.Uint("company_id", companyID),
		zap.Int("confidence", rec.Confidence))
	return c.JSON(http.StatusCreated, rec)
}

// UpdateRecommendation applies a partial update; flipping the
// implemented flag stamps the implementation time exactly once
func (h *Handler) UpdateRecommendation(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("recommendation", "update")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid recommendation ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid recommendation ID"})
	}

	var req schema.UpdateRecommendationInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	rec, err := h.store.UpdateRecommendation(c.Request().Context(), companyID, uint(id), req)
	if err != nil {
		return storageFailed(c, log, "update_recommendation", err)
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "recommendation not found"})
	}

	return c.JSON(http.StatusOK, rec)
}
