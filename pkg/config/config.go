package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/dashkit/widget-adapter/pkg/secrets"
)

// Config holds the process-wide runtime configuration. It is loaded once at
// startup and treated as immutable afterwards, so handlers can share it
// without locking.
type Config struct {
	ServiceName string // e.g. "widget-adapter"
	Env         string // "dev", "uat", "prod"
	LogLevel    string // "debug", "info", ...
	Port        int

	// APIKey is the shared secret widget requests must present.
	// Empty disables the credential check.
	APIKey string
	// EncryptionKey turns on response sealing when set.
	EncryptionKey string

	// SecretID names an AWS Secrets Manager secret holding api_key and
	// encryption_key. When set it overrides the env values at startup.
	SecretID  string
	AWSRegion string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// Load reads configuration from environment variables and a .env file if
// one is present.
func Load() *Config {
	// load .env silently (no error if missing)
	_ = godotenv.Load()

	return &Config{
		ServiceName:      GetEnv("SERVICE_NAME", "widget-adapter"),
		Env:              GetEnv("ENV", "dev"),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),
		Port:             GetEnvInt("PORT", 9030),
		APIKey:           GetEnv("WIDGET_API_KEY", ""),
		EncryptionKey:    GetEnv("WIDGET_ENCRYPTION_KEY", ""),
		SecretID:         GetEnv("WIDGET_SECRET_ID", ""),
		AWSRegion:        GetEnv("AWS_REGION", "us-east-2"),
		HTTPReadTimeout:  GetEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		HTTPWriteTimeout: GetEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		HTTPIdleTimeout:  GetEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}
}

// ResolveSecrets replaces the API and encryption keys with values from the
// configured secret, if any. Called once during startup, before the config
// is shared.
func (c *Config) ResolveSecrets(ctx context.Context, provider secrets.Provider) error {
	if c.SecretID == "" {
		return nil
	}
	values, err := provider.GetSecret(ctx, c.SecretID)
	if err != nil {
		return fmt.Errorf("config: resolve %s: %w", c.SecretID, err)
	}
	if v := values["api_key"]; v != "" {
		c.APIKey = v
	}
	if v := values["encryption_key"]; v != "" {
		c.EncryptionKey = v
	}
	return nil
}
