package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-resume-checker/internal/config"
	"alfredoptarigan/ats-resume-checker/internal/repositories"
)

func validConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.5-flash", Temperature: 0.2, MaxOutputTokens: 1024},
		Worker: config.WorkerConfig{Concurrency: 2, CompletionTimeout: time.Minute, ExtractionTimeout: 10 * time.Second},
		Ranking: config.RankingConfig{
			ScoreExtractor:   "regex",
			UnscoredPolicy:   "zero",
			DefaultThreshold: 70,
		},
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Gemini.APIKey = ""

	components, err := Build(context.Background(), cfg)

	assert.Nil(t, components)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestBuild_WithoutAudit(t *testing.T) {
	components, err := Build(context.Background(), validConfig())

	require.NoError(t, err)
	assert.NotNil(t, components.Evaluator)
	assert.Equal(t, "gemini-2.5-flash", components.Completion.Model())
	assert.Equal(t, repositories.NewNoopRunRepository(), components.RunRepo)
}
