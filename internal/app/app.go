// Package app wires configuration into the evaluation services shared by
// the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"alfredoptarigan/ats-resume-checker/internal/config"
	"alfredoptarigan/ats-resume-checker/internal/repositories"
	"alfredoptarigan/ats-resume-checker/internal/services"
)

type Components struct {
	Evaluator  services.EvaluatorService
	Completion services.CompletionClient
	RunRepo    repositories.RunRepository
}

// Build validates cfg and constructs every service. The audit database is
// only opened when AUDIT_ENABLED is set.
func Build(ctx context.Context, cfg *config.Config) (*Components, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runRepo := repositories.NewNoopRunRepository()
	if cfg.Database.AuditEnabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize audit database: %w", err)
		}
		runRepo = repositories.NewRunRepository(db)
		log.Info().Msg("✅ Run audit enabled")
	}

	extractor := services.NewDocumentExtractor(
		services.NewPDFParserService(),
		services.NewDOCXParserService(),
		cfg.Worker.ExtractionTimeout,
	)

	completion, err := services.NewGeminiService(ctx, services.GeminiOptions{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		Timeout:         cfg.Worker.CompletionTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	log.Info().Str("model", completion.Model()).Msg("✅ Gemini AI initialized successfully")

	evaluator := services.NewEvaluatorService(
		extractor,
		completion,
		services.NewScoreExtractor(cfg.Ranking.ScoreExtractor),
		services.NewWorker(cfg.Worker.Concurrency),
		runRepo,
		services.UnscoredPolicy(cfg.Ranking.UnscoredPolicy),
	)
	log.Info().
		Int("concurrency", cfg.Worker.Concurrency).
		Str("score_extractor", cfg.Ranking.ScoreExtractor).
		Str("unscored_policy", cfg.Ranking.UnscoredPolicy).
		Msg("✅ Evaluator service initialized")

	return &Components{
		Evaluator:  evaluator,
		Completion: completion,
		RunRepo:    runRepo,
	}, nil
}
