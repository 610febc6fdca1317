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

// ListKpiMetrics retrieves all KPI cards for the current company
func (h *Handler) ListKpiMetrics(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("kpi_metric", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	metrics, err := h.store.ListCompanyKpiMetrics(c.Request().Context(), companyID)
	if err != nil {
		return storageFailed(c, log, "list_kpi_metrics", err)
	}

	return c.JSON(http.StatusOK, metrics)
}

// CreateKpiMetric creates a KPI card for the current company
func (h *Handler) CreateKpiMetric(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("kpi_metric", "create")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	var req schema.CreateKpiMetricInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	metric := model.KpiMetric{
		CompanyID:        companyID,
		Name:             req.Name,
		Value:            req.Value,
		PreviousValue:    req.PreviousValue,
		ChangePercentage: req.ChangePercentage,
		Period:           req.Period,
		Icon:             req.Icon,
		Color:            req.Color,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateKpiMetric(c.Request().Context(), &metric); err != nil {
		return storageFailed(c, log, "create_kpi_metric", err)
	}

	log.Info("KPI metric created",
		zap.Uint("id", metric.ID),
		zap.String("name", metric.Name),
		zap.Uint("company_id", companyID))
	return c.JSON(http.StatusCreated, metric)
}

// UpdateKpiMetric applies a partial update to a KPI card
func (h *Handler) UpdateKpiMetric(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("kpi_metric", "update")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Error("Invalid KPI metric ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid KPI metric ID"})
	}

	var req schema.UpdateKpiMetricInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	metric, err := h.store.UpdateKpiMetric(c.Request().Context(), companyID, uint(id), req)
	if err != nil {
		return storageFailed(c, log, "update_kpi_metric", err)
	}
	if metric == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "KPI metric not found"})
	}

	return c.JSON(http.StatusOK, metric)
}

// ListChartData retrieves the company's chart series, optionally
// filtered by chart type, ordered by observation date
func (h *Handler) ListChartData(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("chart_data", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	chartType := c.QueryParam("type")

	defer prometheus.TrackDBOperation("query")(time.Now())
	points, err := h.store.ListCompanyChartData(c.Request().Context(), companyID, chartType)
	if err != nil {
		return storageFailed(c, log, "list_chart_data", err)
	}

	return c.JSON(http.StatusOK, points)
}

// CreateChartData appends one observation to a company series
func (h *Handler) CreateChartData(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("chart_data", "create")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	var req schema.CreateChartDataInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	point := model.ChartDataPoint{
		CompanyID: companyID,
		ChartType: req.ChartType,
		Label:     req.Label,
		Value:     req.Value,
		Date:      req.Date,
		Metadata:  req.Metadata,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.store.CreateChartDataPoint(c.Request().Context(), &point); err != nil {
		return storageFailed(c, log, "create_chart_data", err)
	}

	return c.JSON(http.StatusCreated, point)
}

// RevenueChart retrieves the revenue series for the last N days
// (default 30), ordered by date ascending
func (h *Handler) RevenueChart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("chart_data", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	days, _ := strconv.Atoi(c.QueryParam("days"))
	if days <= 0 {
		days = 30
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	points, err := h.store.GetRevenueSeries(c.Request().Context(), companyID, days)
	if err != nil {
		return storageFailed(c, log, "revenue_series", err)
	}

	return c.JSON(http.StatusOK, points)
}

// UserChart retrieves the users series, ordered by date ascending
func (h *Handler) UserChart(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("chart_data", "list")

	_, companyID, err := h.tenant(c)
	if err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	points, err := h.store.GetUserSeries(c.Request().Context(), companyID)
	if err != nil {
		return storageFailed(c, log, "user_series", err)
	}

	return c.JSON(http.StatusOK, points)
}
