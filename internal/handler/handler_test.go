package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard-service/internal/handler"
	"dashboard-service/internal/middleware"
	"dashboard-service/internal/model"
	"dashboard-service/internal/schema"
	"dashboard-service/internal/store"
	"dashboard-service/pkg/database"
	"dashboard-service/pkg/jwtutil"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer wires the full route table over an in-memory database,
// mirroring the setup in main.
func newTestServer(t *testing.T) (*echo.Echo, store.Storage) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	st := store.New(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = schema.NewValidator()

	h := handler.New(st)

	e.GET("/health", h.HealthCheck)

	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	api := e.Group("/api")
	api.Use(middleware.Auth(st))

	api.GET("/user", h.CurrentUser)
	api.PATCH("/user/profile", h.UpdateProfile)
	api.GET("/notifications", h.ListNotifications)
	api.GET("/notifications/unread-count", h.UnreadNotificationCount)
	api.POST("/notifications", h.CreateNotification)
	api.PATCH("/notifications/:id/read", h.MarkNotificationRead)

	tenant := api.Group("", middleware.RequireCompany)

	dashboard := tenant.Group("/dashboard")
	dashboard.GET("/kpi-metrics", h.ListKpiMetrics)
	dashboard.POST("/kpi-metrics", h.CreateKpiMetric)
	dashboard.PATCH("/kpi-metrics/:id", h.UpdateKpiMetric)
	dashboard.GET("/chart-data", h.ListChartData)
	dashboard.POST("/chart-data", h.CreateChartData)
	dashboard.GET("/revenue-chart", h.RevenueChart)
	dashboard.GET("/user-chart", h.UserChart)

	tenant.GET("/ai-recommendations", h.ListRecommendations)
	tenant.POST("/ai-recommendations", h.CreateRecommendation)
	tenant.PATCH("/ai-recommendations/:id", h.UpdateRecommendation)

	tenant.GET("/integrations", h.ListIntegrations)
	tenant.POST("/integrations", h.CreateIntegration)
	tenant.PATCH("/integrations/:id", h.UpdateIntegration)
	tenant.DELETE("/integrations/:id", h.DeleteIntegration)

	tenant.GET("/team", h.ListTeam)
	tenant.GET("/company", h.GetCompany)
	tenant.PATCH("/company", h.UpdateCompany)

	tenant.GET("/activities", h.ListActivities)
	tenant.POST("/activities", h.CreateActivity)

	return e, st
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// registerAccount registers a fresh company admin and returns the token.
func registerAccount(t *testing.T, e *echo.Echo, email, companyName string) (string, map[string]interface{}) {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email":        email,
		"password":     "secret123",
		"first_name":   "Jane",
		"last_name":    "Doe",
		"company_name": companyName,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token, body
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	e, _ := newTestServer(t)

	token, body := registerAccount(t, e, "jane@acme.com", "Acme")
	assert.NotEmpty(t, token)

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "jane@acme.com", user["email"])
	assert.Equal(t, model.RoleAdmin, user["role"])
	// Password hash never leaves the API
	_, exposed := user["password"]
	assert.False(t, exposed)

	company, ok := body["company"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acme", company["name"])

	// Duplicate registration is rejected
	rec := doJSON(t, e, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email":        "jane@acme.com",
		"password":     "another456",
		"first_name":   "Other",
		"last_name":    "Person",
		"company_name": "Shadow Acme",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Valid credentials log in
	rec = doJSON(t, e, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "jane@acme.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["token"])

	// Wrong password does not
	rec = doJSON(t, e, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "jane@acme.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "validation failed", body["error"])
	fields, ok := body["fields"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, fields)
}

func TestAuthRequired(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/integrations", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InactiveUserRejected(t *testing.T) {
	e, st := newTestServer(t)
	ctx := context.Background()

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	rec := doJSON(t, e, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	userID := uint(decode(t, rec)["id"].(float64))

	inactive := false
	_, err := st.UpdateUser(ctx, userID, schema.UpdateUserInput{IsActive: &inactive})
	require.NoError(t, err)

	// A valid token no longer opens the door once the account is off
	rec = doJSON(t, e, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTenantRoutes_RequireCompany(t *testing.T) {
	e, st := newTestServer(t)

	// A user with no company can authenticate but not reach tenant data
	user := &model.User{
		Email:     "drifter@nowhere.com",
		Password:  "hashed",
		FirstName: "No",
		LastName:  "Company",
		Role:      model.RoleMember,
		IsActive:  true,
	}
	require.NoError(t, st.CreateUser(context.Background(), user))

	token, err := jwtutil.GenerateToken(user.Email, user.ID, nil)
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodGet, "/api/dashboard/kpi-metrics", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no company associated with user", decode(t, rec)["error"])

	// Personal routes still work
	rec = doJSON(t, e, http.MethodGet, "/api/notifications", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIntegrationLifecycle(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	// Create starts disconnected with zero synced data
	rec := doJSON(t, e, http.MethodPost, "/api/integrations", token, map[string]interface{}{
		"name":     "Google Analytics",
		"type":     "analytics",
		"provider": "google",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode(t, rec)
	assert.Equal(t, model.IntegrationDisconnected, created["status"])
	assert.Equal(t, float64(0), created["data_points"])
	id := uint(created["id"].(float64))

	// The create shows up in the activity feed
	rec = doJSON(t, e, http.MethodGet, "/api/activities", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var activities []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, model.ActivityIntegrationAdded, activities[0]["type"])
	assert.Equal(t, "Google Analytics integration was added", activities[0]["description"])

	// Connect it
	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/integrations/%d", id), token, map[string]interface{}{
		"status": "connected",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.IntegrationConnected, decode(t, rec)["status"])

	rec = doJSON(t, e, http.MethodGet, "/api/integrations", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, model.IntegrationConnected, list[0]["status"])

	// Delete, then confirm the second delete reports absence
	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/integrations/%d", id), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/integrations/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegrationValidation(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	rec := doJSON(t, e, http.MethodPost, "/api/integrations", token, map[string]interface{}{
		"type": "analytics",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "validation failed", body["error"])

	rec = doJSON(t, e, http.MethodPost, "/api/integrations", token, map[string]interface{}{
		"name":     "Stripe",
		"type":     "payments",
		"provider": "stripe",
		"status":   "sideways",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTenantIsolationOverHTTP(t *testing.T) {
	e, _ := newTestServer(t)

	acmeToken, _ := registerAccount(t, e, "jane@acme.com", "Acme")
	globexToken, _ := registerAccount(t, e, "hank@globex.com", "Globex")

	rec := doJSON(t, e, http.MethodPost, "/api/integrations", acmeToken, map[string]interface{}{
		"name":     "Google Analytics",
		"type":     "analytics",
		"provider": "google",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := uint(decode(t, rec)["id"].(float64))

	// The other tenant sees nothing and cannot touch the row
	rec = doJSON(t, e, http.MethodGet, "/api/integrations", globexToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)

	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/integrations/%d", id), globexToken, map[string]interface{}{
		"status": "connected",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/integrations/%d", id), globexToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Team listings stay per-company too
	rec = doJSON(t, e, http.MethodGet, "/api/team", globexToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var team []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &team))
	require.Len(t, team, 1)
	assert.Equal(t, "hank@globex.com", team[0]["email"])
}

func TestKpiMetricsEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	rec := doJSON(t, e, http.MethodPost, "/api/dashboard/kpi-metrics", token, map[string]interface{}{
		"name":   "Revenue",
		"value":  "$24.5k",
		"period": "month",
		"icon":   "dollar",
		"color":  "green",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := uint(decode(t, rec)["id"].(float64))

	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/dashboard/kpi-metrics/%d", id), token, map[string]interface{}{
		"value":          "$30.1k",
		"previous_value": "$24.5k",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "$30.1k", decode(t, rec)["value"])

	rec = doJSON(t, e, http.MethodGet, "/api/dashboard/kpi-metrics", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var metrics []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &metrics))
	require.Len(t, metrics, 1)

	rec = doJSON(t, e, http.MethodPatch, "/api/dashboard/kpi-metrics/9999", token, map[string]interface{}{
		"value": "$0",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChartEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	points := []map[string]interface{}{
		{"chart_type": "revenue", "label": "Mon", "value": 1200.0, "date": "2026-08-28T00:00:00Z"},
		{"chart_type": "revenue", "label": "Tue", "value": 1500.0, "date": "2026-08-29T00:00:00Z"},
		{"chart_type": "users", "label": "Mon", "value": 35.0, "date": "2026-08-28T00:00:00Z"},
	}
	for _, p := range points {
		rec := doJSON(t, e, http.MethodPost, "/api/dashboard/chart-data", token, p)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, e, http.MethodGet, "/api/dashboard/chart-data?type=revenue", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var revenue []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revenue))
	assert.Len(t, revenue, 2)

	rec = doJSON(t, e, http.MethodGet, "/api/dashboard/user-chart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestRecommendationEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	rec := doJSON(t, e, http.MethodPost, "/api/ai-recommendations", token, map[string]interface{}{
		"title":            "Consolidate ad spend",
		"description":      "Shift budget to the best channel",
		"category":         "marketing",
		"priority":         "high",
		"confidence":       92,
		"estimated_impact": "+12% ROAS",
		"required_actions": []string{"audit channels", "move budget"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	id := uint(created["id"].(float64))
	assert.Equal(t, false, created["is_implemented"])

	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/ai-recommendations/%d", id), token, map[string]interface{}{
		"is_implemented": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, true, updated["is_implemented"])
	assert.NotNil(t, updated["implemented_at"])

	// Confidence outside [0,100] is rejected
	rec = doJSON(t, e, http.MethodPost, "/api/ai-recommendations", token, map[string]interface{}{
		"title":            "Bad",
		"description":      "Bad",
		"category":         "x",
		"priority":         "low",
		"confidence":       150,
		"estimated_impact": "none",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	rec := doJSON(t, e, http.MethodGet, "/api/company", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme", decode(t, rec)["name"])

	rec = doJSON(t, e, http.MethodPatch, "/api/company", token, map[string]interface{}{
		"industry": "SaaS",
		"website":  "https://acme.example",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "SaaS", body["industry"])
	assert.Equal(t, "Acme", body["name"])
}

func TestProfileUpdate(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	rec := doJSON(t, e, http.MethodPatch, "/api/user/profile", token, map[string]interface{}{
		"job_title": "CTO",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CTO", decode(t, rec)["job_title"])

	rec = doJSON(t, e, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CTO", decode(t, rec)["job_title"])
}

func TestNotificationEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token, body := registerAccount(t, e, "jane@acme.com", "Acme")
	user := body["user"].(map[string]interface{})
	userID := uint(user["id"].(float64))

	rec := doJSON(t, e, http.MethodPost, "/api/notifications", token, map[string]interface{}{
		"user_id": userID,
		"title":   "Report ready",
		"message": "Your weekly report is ready",
		"type":    "info",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := uint(decode(t, rec)["id"].(float64))

	rec = doJSON(t, e, http.MethodGet, "/api/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["count"])

	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["count"])

	// Marking twice is fine
	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Someone else's notification looks absent
	otherToken, _ := registerAccount(t, e, "hank@globex.com", "Globex")
	rec = doJSON(t, e, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/read", id), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	token, _ := registerAccount(t, e, "jane@acme.com", "Acme")

	for i := 0; i < 3; i++ {
		rec := doJSON(t, e, http.MethodPost, "/api/activities", token, map[string]interface{}{
			"type":        "report_generated",
			"description": fmt.Sprintf("report %d generated", i),
			"source":      "Reports",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, e, http.MethodGet, "/api/activities?limit=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var activities []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	assert.Len(t, activities, 2)
}
