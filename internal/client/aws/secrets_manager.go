// Package aws wraps the AWS services used for configuration.
package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

// SecretsAPI is the part of the Secrets Manager API this package calls.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc    SecretsAPI
	logger *zap.Logger
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context, log *zap.Logger) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewSecretsManagerClientFrom(secretsmanager.NewFromConfig(cfg), log), nil
}

func NewSecretsManagerClientFrom(svc SecretsAPI, log *zap.Logger) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc, logger: logger.OrGlobal(log)}
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN specified by an environment variable.
// If the ARN environment variable (secretArnEnvVar) is not set or fetching fails,
// it falls back to reading the secret directly from another environment variable (fallbackEnvVar).
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			c.logger.Info("Fetched secret from Secrets Manager", zap.String("arn_env_var", secretArnEnvVar))
			return value, nil
		}
		c.logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arn_env_var", secretArnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		c.logger.Debug("Using secret value from environment", zap.String("env_var", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a JSON secret by the ARN in secretArnEnvVar and unmarshals it
// into target. There is no environment fallback.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("secret ARN env var '%s' is not set", secretArnEnvVar)
	}
	value, err := c.fetch(ctx, secretArn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("secret %s is not valid JSON: %w", secretArnEnvVar, err)
	}
	return nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", fmt.Errorf("get secret value: %w", err)
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return *result.SecretString, nil
}
