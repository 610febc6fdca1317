package handler

import (
	"fmt"
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

// ListIntegrations retrieves all integrations for the current company
func (h *Handler) ListIntegrations(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("integration", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	integrations, err := h.store.ListCompanyIntegrations(c.Request().Context(), companyID)
	if err != nil {
		return storageFailed(c, log, "list_integrations", err)
	}

	return c.JSON(http.StatusOK, integrations)
}

// CreateIntegration creates an integration for the current company and
// records a companion audit activity referencing it.
func (h *Handler) CreateIntegration(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("integration", "create")

	user, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	var req schema.CreateIntegrationInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	status := req.Status
	if status == "" {
		status = model.IntegrationDisconnected
	}

	integration := model.Integration{
		CompanyID:   companyID,
		Name:        req.Name,
		Type:        req.Type,
		Provider:    req.Provider,
		Status:      status,
		Config:      req.Config,
		Credentials: req.Credentials,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	ctx := c.Request().Context()
	if err := h.store.CreateIntegration(ctx, &integration); err != nil {
		return storageFailed(c, log, "create_integration", err)
	}

	// Audit trail: every integration creation leaves an activity entry
	activity := model.Activity{
		CompanyID:   companyID,
		UserID:      user.ID,
		Type:        model.ActivityIntegrationAdded,
		Description: fmt.Sprintf("%s integration was added", integration.Name),
		Source:      "Integrations",
		Metadata:    datatypes.JSONMap{"integration_id": integration.ID},
	}
	if err := h.store.CreateActivity(ctx, &activity); err != nil {
		// The integration exists; losing the audit entry is logged, not fatal.
		log.Error("Failed to record integration activity",
			zap.Uint("integration_id", integration.ID),
			zap.Error(err))
	}

	log.Info("Integration created",
		zap.Uint("id", integration.ID),
		zap.String("name", integration.Name),
		zap.Uint("company_id", companyID))
	return c.JSON(http.StatusCreated, integration)
}

// UpdateIntegration applies a partial update, used by the configure
// flow and the synchronous sync status flip
func (h *Handler) UpdateIntegration(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("integration", "update")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid integration ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid integration ID"})
	}

	var req schema.UpdateIntegrationInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	integration, err := h.store.UpdateIntegration(c.Request().Context(), companyID, uint(id), req)
	if err != nil {
		return storageFailed(c, log, "update_integration", err)
	}
	if integration == nil {
		log.Warn("Integration not found or does not belong to company",
			zap.Uint64("integration_id", id),
			zap.Uint("company_id", companyID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "integration not found"})
	}

	return c.JSON(http.StatusOK, integration)
}

// DeleteIntegration removes an integration. A second delete of the
// same id reports not found, never an error.
func (h *Handler) DeleteIntegration(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("integration", "delete")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid integration ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid integration ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	deleted, err := h.store.DeleteIntegration(c.Request().Context(), companyID, uint(id))
	if err != nil {
		return storageFailed(c, log, "delete_integration", err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "integration not found"})
	}

	log.Info("Integration deleted",
		zap.Uint64("integration_id", id),
		zap.Uint("company_id", companyID))
	return c.NoContent(http.StatusNoContent)
}
