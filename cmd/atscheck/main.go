package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/ats-resume-checker/internal/app"
	"alfredoptarigan/ats-resume-checker/internal/config"
	"alfredoptarigan/ats-resume-checker/internal/logger"
	"alfredoptarigan/ats-resume-checker/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, buildFromEnv)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// buildFromEnv loads configuration the same way the API server does. Logs go
// to stderr so stdout carries only results.
func buildFromEnv(ctx context.Context) (services.EvaluatorService, *config.Config, error) {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr})

	components, err := app.Build(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("❌ Failed to initialize services")
		return nil, nil, err
	}
	return components.Evaluator, cfg, nil
}
