package middleware

import (
	"net/http"
	"strings"

	"dashboard-service/internal/model"
	"dashboard-service/internal/store"
	"dashboard-service/pkg/jwtutil"
	"dashboard-service/pkg/logger"
	"dashboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const principalKey = "principal"

// Auth validates the JWT token from the Authorization header and
// resolves the principal from the store. The resolved user, not the
// token claims, is what downstream handlers scope by - a stale or
// forged company id in the claims never reaches a query.
func Auth(s store.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Error("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			// Check if it's a Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				log.Error("Invalid Authorization header format")
				prometheus.RecordAuthError("invalid_auth_format")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			// Validate the token
			claims, err := jwtutil.ValidateToken(parts[1])
			if err != nil {
				log.Error("Invalid JWT token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			// Resolve the principal against current server-side state
			user, err := s.GetUser(c.Request().Context(), claims.UserID)
			if err != nil {
				log.Error("Failed to resolve principal", zap.Uint("user_id", claims.UserID), zap.Error(err))
				prometheus.RecordAuthError("principal_lookup_failed")
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "authentication failed"})
			}
			if user == nil || !user.IsActive {
				log.Error("Principal not found or inactive", zap.Uint("user_id", claims.UserID))
				prometheus.RecordAuthError("principal_not_found")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// RequireCompany rejects authenticated requests whose principal has no
// company yet. Tenant-scoped endpoints sit behind this guard.
func RequireCompany(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := Principal(c)
		if user == nil {
			prometheus.RecordAuthError("missing_principal")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		if user.CompanyID == nil {
			logger.FromContext(c).Warn("Principal has no company", zap.Uint("user_id", user.ID))
			prometheus.RecordAuthError("no_company")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no company associated with user"})
		}
		return next(c)
	}
}

// Principal returns the authenticated user set by Auth, or nil.
func Principal(c echo.Context) *model.User {
	user, ok := c.Get(principalKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}
