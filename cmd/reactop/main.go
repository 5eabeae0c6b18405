// Package main contains the entrypoint for the reactop CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edgard/reactop/internal/app"
	"github.com/edgard/reactop/internal/config"
	"github.com/edgard/reactop/internal/logger"
	"github.com/edgard/reactop/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run loads configuration, initializes all components, and executes the
// pipeline once, returning an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	file := flag.String("file", "", "Path to the exported result.json")
	year := flag.Int("year", 0, "Calendar year to rank (e.g. 2023)")
	tz := flag.String("timezone", "", "Fixed UTC offset, e.g. +0300 or -05:30 (default +0000)")
	limit := flag.Int("limit", -1, "Number of messages to show (default 5)")
	publish := flag.Bool("publish", false, "Also post the report to the configured Telegram chat")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	// Flags take precedence over config file and environment.
	if *file != "" {
		cfg.Report.File = *file
	}
	if *year != 0 {
		cfg.Report.Year = *year
	}
	if *tz != "" {
		cfg.Report.Timezone = *tz
	}
	if *limit >= 0 {
		cfg.Report.Limit = *limit
	}
	if *publish {
		cfg.Telegram.Publish = true
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Debug("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format)

	var publisher *telegram.Publisher
	if cfg.Telegram.Publish {
		publisher, err = telegram.NewPublisher(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Error("Failed to create Telegram publisher", "error", err)
			return 1
		}
	}

	a := app.New(log, cfg, os.Stdout, publisher)
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Run failed", "error", err)
		return 1
	}

	return 0
}
