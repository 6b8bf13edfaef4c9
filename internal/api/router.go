package api

import (
	_ "tams-dashboard/docs"
	"tams-dashboard/internal/api/handlers"
	"tams-dashboard/pkg/auth"
	"tams-dashboard/pkg/config"
	"tams-dashboard/pkg/metrics"
	"tams-dashboard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	serverCfg config.ServerConfig,
	sessionHandler *handlers.SessionHandler,
	analysisHandler *handlers.AnalysisHandler,
	dashboardHandler *handlers.DashboardHandler,
	collector *metrics.Collector,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))

	api := app.Group("/api/v1")
	api.Post("/sessions", sessionHandler.CreateSession)

	// Session-scoped routes
	dashboard := api.Group("/dashboard", middleware.SessionMiddleware(jwtManager, appLogger))

	analysis := dashboard.Group("/analysis")
	analysis.Get("/form", analysisHandler.GetForm)
	analysis.Post("", analysisHandler.SubmitAnalysis)
	analysis.Get("", analysisHandler.GetAnalysis)

	dashboard.Get("/agents", dashboardHandler.ListAgents)
	dashboard.Post("/smoke-test", dashboardHandler.RunSmokeTest)
	dashboard.Get("/system", dashboardHandler.SystemStatus)
	dashboard.Get("/tams/agent/status", dashboardHandler.AgentStatus)
	dashboard.Get("/tams/agent/history", dashboardHandler.ExecutionHistory)

	appLogger.Info("Routes registered")

	return app
}
