package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tams-dashboard/internal/api"
	"tams-dashboard/internal/api/handlers"
	"tams-dashboard/internal/repository"
	"tams-dashboard/internal/service"
	"tams-dashboard/pkg/auth"
	"tams-dashboard/pkg/config"
	"tams-dashboard/pkg/logger"
	"tams-dashboard/pkg/metrics"
	"tams-dashboard/pkg/postgres"
	"tams-dashboard/pkg/tamsclient"
	"tams-dashboard/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// @title TAMS Dashboard API
// @version 1.0
// @description Dashboard backend for the Transaction Alert Management System analysis service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting TAMS dashboard",
		zap.String("tams_base_url", cfg.TAMS.BaseURL),
		zap.String("agents_source", cfg.Agents.Source),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tamsClient := tamsclient.New(cfg.TAMS.BaseURL,
		tamsclient.WithTimeout(cfg.TAMS.Timeout),
		tamsclient.WithLogger(logger.Named("tamsclient")),
	)

	// Agent listing source
	var agents repository.AgentProvider
	switch cfg.Agents.Source {
	case config.AgentSourcePostgres:
		var db *pgxpool.Pool
		db, err = postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		agents = repository.NewPostgresAgentProvider(db, logger.Named("agents"))
	case config.AgentSourceFixture:
		agents = repository.NewFixtureAgentProvider(repository.DefaultFixtureAgents()...)
	default:
		agents = repository.NewAPIAgentProvider(tamsClient, logger.Named("agents"))
	}

	collector := metrics.NewCollector()

	sessions := service.NewSessionStore()
	sessions.OnChange(collector.SetActiveSessions)
	cleanup := service.NewSessionCleanup(sessions, cfg.Session.CleanupInterval, cfg.Session.IdleTTL, logger.Named("sessions"))
	go cleanup.Start(ctx)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Initialize services
	analysisService := service.NewAnalysisService(
		tamsClient,
		validation.NewValidator(logger.Named("validation")),
		validation.NewSanitizer(),
		sessions,
		collector,
		logger.Named("analysis"),
	)
	dashboardService := service.NewDashboardService(agents, tamsClient, sessions, collector, logger.Named("dashboard"))

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessions, jwtManager, appLogger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)

	// Setup router
	app := api.SetupRouter(cfg.Server, sessionHandler, analysisHandler, dashboardHandler, collector, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
