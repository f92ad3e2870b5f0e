// Package main is the entry point for spellduel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/spellduel/internal/config"
	"github.com/samdwyer/spellduel/internal/game"
	"github.com/samdwyer/spellduel/internal/logging"
	"github.com/samdwyer/spellduel/internal/telemetry"
	"github.com/samdwyer/spellduel/internal/ui"
)

func main() {
	os.Exit(runMain())
}

// runMain returns the process exit code so deferred cleanup, including the
// final logger sync, runs before exit.
func runMain() int {
	// Load .env file for local development
	// This makes HONEYCOMB_SPELLDUEL_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	flag.StringVar(&cfg.Script, "script", cfg.Script, "replay decisions from a YAML script instead of the terminal UI")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.PlayerOne, "p1", cfg.PlayerOne, "name of the first player")
	flag.StringVar(&cfg.PlayerTwo, "p2", cfg.PlayerTwo, "name of the second player")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Printf("%v", err)
		return 1
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{cfg.Logging.File},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up OTEL environment variables from our .env variables
	haveKey := setupOTelEnv()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{Enabled: cfg.Telemetry && haveKey})
	if err != nil {
		// Continue without telemetry - game still works
		logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	return exitStatus(run(ctx, cfg, logger), logger, os.Stderr)
}

// exitStatus logs the outcome of run and maps it to an exit code. Quitting
// from the terminal is a clean exit.
func exitStatus(err error, logger *zap.Logger, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ui.ErrQuit):
		logger.Info("player quit")
		return 0
	default:
		logger.Error("game error", zap.Error(err))
		fmt.Fprintf(stderr, "Game error: %v\n", err)
		return 1
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	g, err := game.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	defer g.Close()

	res, err := g.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("game finished",
		zap.String("outcome", res.Outcome.String()),
		zap.Int("round", res.Round),
	)
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env
// vars and reports whether a Honeycomb API key is present.
func setupOTelEnv() bool {
	env, ok := telemetry.HoneycombEnv(
		os.Getenv("HONEYCOMB_SPELLDUEL_API_KEY"),
		os.Getenv("HONEYCOMB_SPELLDUEL_DATASET"),
	)
	for k, v := range env {
		os.Setenv(k, v)
	}
	return ok
}
