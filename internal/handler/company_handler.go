package handler

import (
	"net/http"
	"time"

	"dashboard-service/internal/schema"
	"dashboard-service/pkg/logger"
	"dashboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetCompany retrieves the current tenant's profile
func (h *Handler) GetCompany(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("company", "get")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	company, err := h.store.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		return storageFailed(c, log, "get_company", err)
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
	}

	return c.JSON(http.StatusOK, company)
}

// UpdateCompany applies a partial update to the tenant profile
func (h *Handler) UpdateCompany(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("company", "update")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	var req schema.UpdateCompanyInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	company, err := h.store.UpdateCompany(c.Request().Context(), companyID, req)
	if err != nil {
		return storageFailed(c, log, "update_company", err)
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
	}

	log.Info("Company updated", zap.Uint("company_id", companyID))
	return c.JSON(http.StatusOK, company)
}

// ListTeam retrieves every user belonging to the current company
func (h *Handler) ListTeam(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("user", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	users, err := h.store.ListCompanyUsers(c.Request().Context(), companyID)
	if err != nil {
		return storageFailed(c, log, "list_company_users", err)
	}

	return c.JSON(http.StatusOK, users)
}
