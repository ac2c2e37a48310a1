package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// ErrConfig marks configuration problems that must stop the process at startup.
var ErrConfig = errors.New("invalid configuration")

// ConfigError names the offending key.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfig, e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	Ranking  RankingConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	AuditEnabled bool
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

type StorageConfig struct {
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency       int
	CompletionTimeout time.Duration
	ExtractionTimeout time.Duration
}

type RankingConfig struct {
	ScoreExtractor   string
	UnscoredPolicy   string
	DefaultThreshold int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			AuditEnabled: getEnvAsBool("AUDIT_ENABLED", false),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			DBName:       getEnv("DB_NAME", "ats_resume_checker"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 4096)),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency:       getEnvAsInt("WORKER_CONCURRENCY", 3),
			CompletionTimeout: getEnvAsDuration("COMPLETION_TIMEOUT", "60s"),
			ExtractionTimeout: getEnvAsDuration("EXTRACTION_TIMEOUT", "15s"),
		},
		Ranking: RankingConfig{
			ScoreExtractor:   strings.ToLower(getEnv("SCORE_EXTRACTOR", "regex")),
			UnscoredPolicy:   strings.ToLower(getEnv("UNSCORED_POLICY", "zero")),
			DefaultThreshold: getEnvAsInt("DEFAULT_THRESHOLD", 70),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "pretty"),
		},
	}
}

// Validate reports the first setting the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return &ConfigError{Key: "GEMINI_API_KEY", Reason: "is required"}
	}
	if c.Gemini.Model == "" {
		return &ConfigError{Key: "GEMINI_MODEL", Reason: "must not be empty"}
	}
	if c.Worker.Concurrency < 1 {
		return &ConfigError{Key: "WORKER_CONCURRENCY", Reason: "must be at least 1"}
	}
	if c.Worker.CompletionTimeout <= 0 || c.Worker.ExtractionTimeout <= 0 {
		return &ConfigError{Key: "COMPLETION_TIMEOUT/EXTRACTION_TIMEOUT", Reason: "must be positive"}
	}
	switch c.Ranking.ScoreExtractor {
	case "regex", "json":
	default:
		return &ConfigError{Key: "SCORE_EXTRACTOR", Reason: fmt.Sprintf("unknown strategy %q", c.Ranking.ScoreExtractor)}
	}
	switch c.Ranking.UnscoredPolicy {
	case "zero", "exclude":
	default:
		return &ConfigError{Key: "UNSCORED_POLICY", Reason: fmt.Sprintf("unknown policy %q", c.Ranking.UnscoredPolicy)}
	}
	if c.Ranking.DefaultThreshold < 0 || c.Ranking.DefaultThreshold > 100 {
		return &ConfigError{Key: "DEFAULT_THRESHOLD", Reason: "must be within 0-100"}
	}
	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
