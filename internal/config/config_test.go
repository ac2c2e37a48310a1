package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{APIKey: "key", Model: "gemini-2.5-flash"},
		Worker: WorkerConfig{
			Concurrency:       2,
			CompletionTimeout: time.Second,
			ExtractionTimeout: time.Second,
		},
		Ranking: RankingConfig{ScoreExtractor: "regex", UnscoredPolicy: "zero", DefaultThreshold: 70},
	}
}

func TestValidate_MissingAPIKeyIsConfigError(t *testing.T) {
	cfg := validConfig()
	cfg.Gemini.APIKey = "  "

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "GEMINI_API_KEY", cfgErr.Key)
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RejectsUnknownSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"score extractor", func(c *Config) { c.Ranking.ScoreExtractor = "llm" }, "SCORE_EXTRACTOR"},
		{"unscored policy", func(c *Config) { c.Ranking.UnscoredPolicy = "last" }, "UNSCORED_POLICY"},
		{"threshold", func(c *Config) { c.Ranking.DefaultThreshold = 101 }, "DEFAULT_THRESHOLD"},
		{"concurrency", func(c *Config) { c.Worker.Concurrency = 0 }, "WORKER_CONCURRENCY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			var cfgErr *ConfigError
			require.True(t, errors.As(cfg.Validate(), &cfgErr))
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("WORKER_CONCURRENCY", "5")
	t.Setenv("COMPLETION_TIMEOUT", "90s")
	t.Setenv("UNSCORED_POLICY", "EXCLUDE")
	t.Setenv("AUDIT_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, 5, cfg.Worker.Concurrency)
	assert.Equal(t, 90*time.Second, cfg.Worker.CompletionTimeout)
	assert.Equal(t, "exclude", cfg.Ranking.UnscoredPolicy)
	assert.True(t, cfg.Database.AuditEnabled)
	assert.Equal(t, 70, cfg.Ranking.DefaultThreshold)
}

func TestGetEnvAsDuration_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("EXTRACTION_TIMEOUT", "soon")
	assert.Equal(t, 15*time.Second, getEnvAsDuration("EXTRACTION_TIMEOUT", "15s"))
}
