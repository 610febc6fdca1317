package handler

import (
	"errors"
	"net/http"

	"dashboard-service/internal/middleware"
	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"
	"dashboard-service/internal/store"
	"dashboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler carries the storage seam into every endpoint. It is built
// once at startup with the store constructed in main.
type Handler struct {
	store store.Storage
}

// New returns a Handler backed by the given store.
func New(s store.Storage) *Handler {
	return &Handler{store: s}
}

// MetricsHandler exposes the Prometheus registry.
func (h *Handler) MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}

// principal returns the authenticated user, which the auth middleware
// guarantees for every /api route.
func (h *Handler) principal(c echo.Context) (*model.User, error) {
	user := middleware.Principal(c)
	if user == nil {
		prometheus.RecordAuthError("missing_principal")
		return nil, c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}
	return user, nil
}

// tenant returns the principal and its company id. Routes using it sit
// behind the RequireCompany guard; the nil check is for direct use.
func (h *Handler) tenant(c echo.Context) (*model.User, uint, error) {
	user, err := h.principal(c)
	if err != nil {
		return nil, 0, err
	}
	if user.CompanyID == nil {
		prometheus.RecordAuthError("no_company")
		return nil, 0, c.JSON(http.StatusBadRequest, echo.Map{"error": "no company associated with user"})
	}
	return user, *user.CompanyID, nil
}

// validationFailed maps a schema validation error to a 400 with
// field-level detail.
func validationFailed(c echo.Context, log *zap.Logger, err error) error {
	if ve, ok := schema.AsValidationError(err); ok {
		log.Warn("Validation failed", zap.Error(ve))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	}
	log.Warn("Invalid request payload", zap.Error(err))
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
}

// storageFailed logs the internal detail and returns a generic 500.
// Raw driver text never reaches the client.
func storageFailed(c echo.Context, log *zap.Logger, operation string, err error) error {
	var se *store.StorageError
	if errors.As(err, &se) {
		prometheus.RecordStorageError(string(se.Reason))
	}
	log.Error("Storage failure", zap.String("operation", operation), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
