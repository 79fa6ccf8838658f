package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dashkit/widget-adapter/internal/api"
	"github.com/dashkit/widget-adapter/pkg/adapter"
	"github.com/dashkit/widget-adapter/pkg/config"
	"github.com/dashkit/widget-adapter/pkg/logger"
	"github.com/dashkit/widget-adapter/pkg/secrets"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logg := logger.S()
	logg.Infof("starting [%s]...", cfg.ServiceName)

	// Resolve the API and encryption keys from AWS Secrets Manager when a
	// secret id is configured; env values apply otherwise.
	if cfg.SecretID != "" {
		provider, err := secrets.NewAWSProvider(ctx, cfg.AWSRegion)
		if err != nil {
			logg.Fatalw("failed to create AWS Secrets Manager provider", "error", err)
		}
		if err := cfg.ResolveSecrets(ctx, provider); err != nil {
			logg.Fatalw("failed to resolve secrets", "error", err)
		}
		logg.Infow("resolved keys from secrets manager", "secret_id", cfg.SecretID)
	}
	if cfg.APIKey == "" {
		logg.Warn("WIDGET_API_KEY not configured; widget endpoints are open")
	}

	ad, err := adapter.New(adapter.Config{
		APIKey:        cfg.APIKey,
		EncryptionKey: cfg.EncryptionKey,
	}, logger.L())
	if err != nil {
		logg.Fatalw("failed to build widget adapter", "error", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	})

	api.RegisterRoutes(app, ad)

	go func() {
		logg.Infof("HTTP API listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	logg.Infow("[widget-adapter] running",
		"env", cfg.Env,
		"encryption", cfg.EncryptionKey != "")

	<-ctx.Done()
	logg.Info("shutting down [widget-adapter]...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Warnw("fiber.shutdown_failed", "error", err)
	}
}
