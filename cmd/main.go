package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard-service/internal/handler"
	"dashboard-service/internal/middleware"
	"dashboard-service/internal/schema"
	"dashboard-service/internal/store"
	"dashboard-service/pkg/config"
	"dashboard-service/pkg/database"
	"dashboard-service/pkg/jwtutil"
	"dashboard-service/pkg/logger"
	"dashboard-service/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting dashboard service...", zap.String("environment", cfg.Server.Env))

	// Open the database; the handle is owned here and handed to the
	// store, released on shutdown
	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connection established")

	st := store.New(db)

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics()
	log.Info("Prometheus metrics initialized")

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true
	e.Validator = schema.NewValidator()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	h := handler.New(st)

	// Public routes - no authentication required
	e.GET("/health", h.HealthCheck)
	e.GET("/metrics", h.MetricsHandler)

	// Authentication routes - these don't belong under /api since they're for getting access to the API
	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	// API routes - all require authentication
	api := e.Group("/api")
	api.Use(middleware.Auth(st))

	// Caller's own resources - no company required
	api.GET("/user", h.CurrentUser)
	api.PATCH("/user/profile", h.UpdateProfile)
	api.GET("/notifications", h.ListNotifications)
	api.GET("/notifications/unread-count", h.UnreadNotificationCount)
	api.POST("/notifications", h.CreateNotification)
	api.PATCH("/notifications/:id/read", h.MarkNotificationRead)

	// Tenant-scoped routes - require a company on the principal
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

	// Start server
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			log.Info("Server stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
	log.Info("Server shut down")
}
