package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/ats-resume-checker/internal/app"
	"alfredoptarigan/ats-resume-checker/internal/config"
	"alfredoptarigan/ats-resume-checker/internal/handlers"
	"alfredoptarigan/ats-resume-checker/internal/logger"
	"alfredoptarigan/ats-resume-checker/internal/models"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	log.Info().Msg("✅ Config loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	components, err := app.Build(ctx, cfg)
	if err != nil {
		if errors.Is(err, config.ErrConfig) {
			log.Fatal().Err(err).Msg("❌ Invalid configuration")
		}
		log.Fatal().Err(err).Msg("❌ Failed to initialize services")
	}

	// Initialize Handlers
	evaluateHandler := handlers.NewEvaluationHandler(
		components.Evaluator,
		cfg.Storage.MaxFileSize,
		cfg.Ranking.DefaultThreshold,
	)
	runHandler := handlers.NewRunHandler(components.RunRepo)
	log.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	server := fiber.New(fiber.Config{
		AppName:      "ATS Resume Checker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    bodyLimit(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	server.Use(recover.New())
	server.Use(handlers.WithBaseContext(ctx))
	server.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := server.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "healthy",
			Model:  components.Completion.Model(),
		})
	})

	// API endpoints
	api.Post("/evaluate/hr", evaluateHandler.HandleEvaluateHR)
	api.Post("/evaluate/ats", evaluateHandler.HandleEvaluateATS)
	api.Post("/shortlist", evaluateHandler.HandleShortlist)
	api.Get("/runs/:id", runHandler.HandleGetRun)

	// Root route
	server.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Checker API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/evaluate/hr",
				"POST /api/v1/evaluate/ats",
				"POST /api/v1/shortlist",
				"GET /api/v1/runs/:id",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		log.Info().Msg("🛑 Shutting down server...")
		if err := server.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := server.Listen(addr); err != nil {
		log.Error().Err(err).Msg("❌ Failed to start server")
		os.Exit(1)
	}
}

// bodyLimit leaves room for several résumés plus form fields in one request.
func bodyLimit(maxFileSize int64) int {
	const maxFilesPerRequest = 20
	return int(maxFileSize)*maxFilesPerRequest + 1<<20
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
