// Package app wires the pipeline stages together for a single run and
// manages fan-out to the configured output sinks.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/reactop/internal/config"
	"github.com/edgard/reactop/internal/export"
	"github.com/edgard/reactop/internal/report"
	"github.com/edgard/reactop/internal/telegram"
	"github.com/edgard/reactop/internal/timezone"
)

// App holds everything one invocation needs: the validated configuration,
// the stdout writer for the rendered report, and the optional publisher.
type App struct {
	logger    *slog.Logger
	cfg       *config.Config
	out       io.Writer
	publisher *telegram.Publisher
}

// New creates the application. publisher may be nil when publishing is
// disabled.
func New(logger *slog.Logger, cfg *config.Config, out io.Writer, publisher *telegram.Publisher) *App {
	return &App{
		logger:    logger.With("component", "app"),
		cfg:       cfg,
		out:       out,
		publisher: publisher,
	}
}

// Run executes the pipeline once: resolve the timezone, load the export,
// build the report, then hand the finished report to every sink. Config and
// structural failures abort before any record is processed; after that the
// pipeline cannot fail, only sinks can.
func (a *App) Run(ctx context.Context) error {
	loc, err := timezone.Resolve(a.cfg.Report.Timezone)
	if err != nil {
		return fmt.Errorf("failed to resolve timezone: %w", err)
	}

	a.logger.Info("Reading export file", "path", a.cfg.Report.File)
	ex, err := export.Load(a.cfg.Report.File)
	if err != nil {
		return fmt.Errorf("failed to load export: %w", err)
	}
	a.logger.Info("Export loaded", "chat", ex.Name, "chat_id", ex.ID, "messages", len(ex.Messages))

	rep := report.Build(ex, a.cfg.Report.Year, loc, a.cfg.Report.Limit)
	a.logger.Info("Report built",
		"year", rep.Year,
		"timezone", rep.Timezone,
		"eligible", rep.Eligible,
		"ranked", len(rep.Entries))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := io.WriteString(a.out, rep.Text()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	})

	if a.publisher != nil {
		g.Go(func() error {
			return a.publisher.Publish(gCtx, rep)
		})
	}

	return g.Wait()
}
