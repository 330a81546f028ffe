// Package main prints the current member's engagement report as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chapterhub/config"
	"chapterhub/internal/repository/memory"
	"chapterhub/internal/services"
	"chapterhub/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("engagement report failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	var fixture *memory.Fixture
	if cfg.SeedFile != "" {
		f, err := memory.LoadFixtureFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		fixture = f
	}

	store, err := memory.NewStore(memory.Options{
		Latency: cfg.StoreLatency,
		Fixture: fixture,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	report := usecase.NewEngagementReportUseCase(
		services.NewProfileService(store.Members(), logger),
		services.NewCalendarService(store.Events(), logger),
		services.NewNewsService(store.News(), logger),
		services.NewResourceService(store.Resources(), logger),
		cfg.ReportTimeout,
	)
	r, err := report.BuildReport(ctx)
	if err != nil {
		return err
	}
	logger.Info("engagement report built", "member_id", r.Member.ID, "upcoming_events", r.Events.UpcomingCount)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
