package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration
	MigrationsPath      string

	// Redis configuration; empty address selects in-process locking
	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// Generation session configuration
	GenerationItemDelay   time.Duration
	GenerationItemTimeout time.Duration
	SessionLockTTL        time.Duration

	// Scheduled publisher configuration
	PublishSchedule       string
	PublishLookahead      time.Duration
	PublishBatchSize      int
	PublishRunTimeout     time.Duration
	PublishAlertThreshold int

	// Stuck-item reaper configuration
	ReaperSchedule   string
	ReaperStaleAfter time.Duration
	ReaperBatchSize  int
	ReaperRunTimeout time.Duration

	// Draft generator / image renderer configuration
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAITextModel  string
	OpenAIImageModel string

	// Asset store configuration
	AssetBucket        string
	AssetPrefix        string
	AssetPublicBaseURL string
	AWSRegion          string
	AWSEndpointURL     string

	// Publishing platform configuration
	PlatformProvider          string
	PlatformAPIBaseURL        string
	PlatformTokenURL          string
	PlatformClientID          string
	PlatformClientSecret      string
	PlatformPostURLBase       string
	PlatformAPIVersion        string
	PlatformRequestsPerSecond float64
	PlatformHTTPTimeout       time.Duration

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:                getEnv("SERVER_PORT", "8080"),
		ReadTimeout:               getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:              getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:               getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:                    getEnv("DB_HOST", "localhost"),
		DBPort:                    getEnvInt("DB_PORT", 5432),
		DBUser:                    getEnv("DB_USER", "postgres"),
		DBPassword:                getEnv("DB_PASSWORD", "postgres"),
		DBName:                    getEnv("DB_NAME", "content_workflow"),
		DBSSLMode:                 getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:                int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:                int32(getEnvInt("DB_MIN_CONNS", 2)),
		DBMaxConnLifetime:         getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:         getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:       getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsPath:            getEnv("MIGRATIONS_PATH", ""),
		RedisAddress:              getEnv("REDIS_ADDRESS", ""),
		RedisPassword:             getEnv("REDIS_PASSWORD", ""),
		RedisDB:                   getEnvInt("REDIS_DB", 0),
		GenerationItemDelay:       getEnvDuration("GENERATION_ITEM_DELAY", 2*time.Second),
		GenerationItemTimeout:     getEnvDuration("GENERATION_ITEM_TIMEOUT", 5*time.Minute),
		SessionLockTTL:            getEnvDuration("SESSION_LOCK_TTL", 30*time.Second),
		PublishSchedule:           getEnv("PUBLISH_SCHEDULE", "@every 5m"),
		PublishLookahead:          getEnvDuration("PUBLISH_LOOKAHEAD", 0),
		PublishBatchSize:          getEnvInt("PUBLISH_BATCH_SIZE", 10),
		PublishRunTimeout:         getEnvDuration("PUBLISH_RUN_TIMEOUT", 4*time.Minute),
		PublishAlertThreshold:     getEnvInt("PUBLISH_ALERT_THRESHOLD", 3),
		ReaperSchedule:            getEnv("REAPER_SCHEDULE", "@every 30m"),
		ReaperStaleAfter:          getEnvDuration("REAPER_STALE_AFTER", 2*time.Hour),
		ReaperBatchSize:           getEnvInt("REAPER_BATCH_SIZE", 100),
		ReaperRunTimeout:          getEnvDuration("REAPER_RUN_TIMEOUT", 5*time.Minute),
		OpenAIAPIKey:              getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:             getEnv("OPENAI_BASE_URL", ""),
		OpenAITextModel:           getEnv("OPENAI_TEXT_MODEL", "gpt-4o-mini"),
		OpenAIImageModel:          getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
		AssetBucket:               getEnv("ASSET_BUCKET", ""),
		AssetPrefix:               getEnv("ASSET_PREFIX", "content"),
		AssetPublicBaseURL:        getEnv("ASSET_PUBLIC_BASE_URL", ""),
		AWSRegion:                 getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL:            getEnv("AWS_ENDPOINT_URL", ""),
		PlatformProvider:          getEnv("PLATFORM_PROVIDER", "linkedin"),
		PlatformAPIBaseURL:        getEnv("PLATFORM_API_BASE_URL", "https://api.linkedin.com"),
		PlatformTokenURL:          getEnv("PLATFORM_TOKEN_URL", "https://www.linkedin.com/oauth/v2/accessToken"),
		PlatformClientID:          getEnv("PLATFORM_CLIENT_ID", ""),
		PlatformClientSecret:      getEnv("PLATFORM_CLIENT_SECRET", ""),
		PlatformPostURLBase:       getEnv("PLATFORM_POST_URL_BASE", "https://www.linkedin.com/feed/update/"),
		PlatformAPIVersion:        getEnv("PLATFORM_API_VERSION", "202501"),
		PlatformRequestsPerSecond: getEnvFloat("PLATFORM_REQUESTS_PER_SECOND", 2),
		PlatformHTTPTimeout:       getEnvDuration("PLATFORM_HTTP_TIMEOUT", 60*time.Second),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.PublishBatchSize < 1 {
		return fmt.Errorf("PUBLISH_BATCH_SIZE must be at least 1")
	}
	if c.ReaperBatchSize < 1 {
		return fmt.Errorf("REAPER_BATCH_SIZE must be at least 1")
	}
	if c.ReaperStaleAfter <= 0 {
		return fmt.Errorf("REAPER_STALE_AFTER must be positive")
	}
	if c.GenerationItemDelay < 0 {
		return fmt.Errorf("GENERATION_ITEM_DELAY must not be negative")
	}
	// A walk refreshes its session once per item; a shorter threshold would reap a live session.
	if c.ReaperStaleAfter <= c.GenerationItemTimeout+c.GenerationItemDelay {
		return fmt.Errorf("REAPER_STALE_AFTER must exceed GENERATION_ITEM_TIMEOUT plus GENERATION_ITEM_DELAY")
	}
	if c.PublishAlertThreshold < 1 {
		return fmt.Errorf("PUBLISH_ALERT_THRESHOLD must be at least 1")
	}
	if c.PlatformRequestsPerSecond <= 0 {
		return fmt.Errorf("PLATFORM_REQUESTS_PER_SECOND must be positive")
	}
	if _, err := cron.ParseStandard(c.PublishSchedule); err != nil {
		return fmt.Errorf("PUBLISH_SCHEDULE is invalid: %w", err)
	}
	if _, err := cron.ParseStandard(c.ReaperSchedule); err != nil {
		return fmt.Errorf("REAPER_SCHEDULE is invalid: %w", err)
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets an environment variable as float64 with a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
