// Package config assembles runtime configuration from the environment, an optional
// .env file, and AWS Secrets Manager in deployed stages.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/deepaksolulab007/payment-system-stripe/internal/client/aws"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

const (
	DefaultPort              = "8080"
	DefaultRateLimitRPS      = 10
	DefaultRateLimitBurst    = 20
	DefaultResyncConcurrency = 4
	DefaultDBMaxConns        = 20
)

// SecretSource resolves a secret by ARN env var with a plain env var fallback.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// envSource reads secrets straight from the environment.
type envSource struct{}

func (envSource) GetSecretString(_ context.Context, _ string, fallbackEnvVar string) (string, error) {
	if v := os.Getenv(fallbackEnvVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s environment variable is required", fallbackEnvVar)
}

type Config struct {
	Stage               string
	Port                string
	GinMode             string
	DatabaseURL         string
	StripeSecretKey     string
	StripeWebhookSecret string
	EventLogQueueURL    string
	CORSAllowedOrigins  []string
	RateLimitRPS        int
	RateLimitBurst      int
	ResyncConcurrency   int
	DBMaxConns          int32
}

// LoadDotEnv loads .env when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}
}

// Stage returns STAGE, defaulting to local.
func Stage() string {
	stage := os.Getenv("STAGE")
	if stage == "" {
		return helpers.StageLocal
	}
	return stage
}

// Load reads the configuration. In dev and prod secrets come from Secrets Manager when
// their _ARN variable is set; local uses the environment only.
func Load(ctx context.Context) (*Config, error) {
	stage := Stage()
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q", stage)
	}

	secrets, err := secretSource(ctx, stage)
	if err != nil {
		return nil, err
	}
	return LoadWith(ctx, stage, secrets)
}

// DatabaseURL resolves only the database connection string, for tools that need nothing else.
func DatabaseURL(ctx context.Context) (string, error) {
	stage := Stage()
	if !helpers.IsValidStage(stage) {
		return "", fmt.Errorf("invalid STAGE %q", stage)
	}
	secrets, err := secretSource(ctx, stage)
	if err != nil {
		return "", err
	}
	return secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
}

func secretSource(ctx context.Context, stage string) (SecretSource, error) {
	if !helpers.UsesSecretsManager(stage) {
		return envSource{}, nil
	}
	sm, err := awsclient.NewSecretsManagerClient(ctx, logger.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets manager client: %w", err)
	}
	return sm, nil
}

// LoadWith reads the configuration using secrets for the secret values.
func LoadWith(ctx context.Context, stage string, secrets SecretSource) (*Config, error) {
	cfg := &Config{
		Stage:              stage,
		Port:               getEnv("PORT", DefaultPort),
		GinMode:            os.Getenv("GIN_MODE"),
		EventLogQueueURL:   os.Getenv("EVENT_LOG_QUEUE_URL"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	if cfg.DatabaseURL, err = secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("database url: %w", err)
	}
	if cfg.StripeSecretKey, err = secrets.GetSecretString(ctx, "STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY"); err != nil {
		return nil, fmt.Errorf("stripe secret key: %w", err)
	}
	if cfg.StripeWebhookSecret, err = secrets.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, fmt.Errorf("stripe webhook secret: %w", err)
	}

	if cfg.RateLimitRPS, err = getInt("RATE_LIMIT_RPS", DefaultRateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", DefaultRateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.ResyncConcurrency, err = getInt("RESYNC_CONCURRENCY", DefaultResyncConcurrency); err != nil {
		return nil, err
	}
	maxConns, err := getInt("DB_MAX_CONNS", DefaultDBMaxConns)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxConns = int32(maxConns)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
