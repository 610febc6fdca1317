package handler

import (
	"net/http"
	"time"

	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"
	"dashboard-service/internal/store"
	"dashboard-service/pkg/jwtutil"
	"dashboard-service/pkg/logger"
	"dashboard-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a company and its first admin user in one go, then
// issues a token for the new principal.
func (h *Handler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req schema.RegisterInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordAuthError("incomplete_registration")
		return validationFailed(c, log, err)
	}

	ctx := c.Request().Context()

	// Check if user already exists
	defer prometheus.TrackDBOperation("query")(time.Now())
	existing, err := h.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return storageFailed(c, log, "get_user_by_email", err)
	}
	if existing != nil {
		log.Error("User already exists", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	// Create the tenant anchor first
	defer prometheus.TrackDBOperation("insert")(time.Now())
	company := model.Company{
		Name:     req.CompanyName,
		Industry: req.Industry,
	}
	if err := h.store.CreateCompany(ctx, &company); err != nil {
		log.Error("Failed to create company", zap.Error(err))
		prometheus.RecordAuthError("company_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := model.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		JobTitle:  req.JobTitle,
		Role:      model.RoleAdmin,
		IsActive:  true,
		CompanyID: &company.ID,
	}
	if err := h.store.CreateUser(ctx, &user); err != nil {
		if store.IsDuplicate(err) {
			prometheus.RecordAuthError("email_already_exists")
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		log.Error("Failed to create user", zap.Error(err))
		prometheus.RecordAuthError("user_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.CompanyID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}
	prometheus.IncreaseActiveTokens()

	log.Info("Account registered",
		zap.String("email", user.Email),
		zap.Uint("company_id", company.ID))

	return c.JSON(http.StatusCreated, echo.Map{
		"token":   token,
		"user":    user,
		"company": company,
	})
}

// Login authenticates credentials and issues a token.
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req schema.LoginInput
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return validationFailed(c, log, err)
	}

	ctx := c.Request().Context()

	defer prometheus.TrackDBOperation("query")(time.Now())
	user, err := h.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return storageFailed(c, log, "get_user_by_email", err)
	}
	if user == nil || !user.IsActive {
		log.Error("User not found or inactive", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Error("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.CompanyID)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}
	prometheus.IncreaseActiveTokens()

	if err := h.store.TouchUserActivity(ctx, user.ID); err != nil {
		// Login still succeeds; the activity ping is best effort.
		log.Warn("Failed to touch user activity", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	log.Info("User logged in", zap.String("email", user.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// CurrentUser returns the resolved principal and refreshes its
// last-active timestamp.
func (h *Handler) CurrentUser(c echo.Context) error {
	log := logger.FromContext(c)

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	if err := h.store.TouchUserActivity(c.Request().Context(), user.ID); err != nil {
		log.Warn("Failed to touch user activity", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the caller's own profile.
func (h *Handler) UpdateProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("user", "update")

	user, err := h.principal(c)
	if err != nil {
		return err
	}

	var req schema.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, log, err)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.store.UpdateUser(c.Request().Context(), user.ID, req)
	if err != nil {
		return storageFailed(c, log, "update_user", err)
	}
	if updated == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	log.Info("Profile updated", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, updated)
}
