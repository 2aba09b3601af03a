package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"

	"github.com/jbaranski/majorleaguesoccer-today/external/statsapi"
	"github.com/jbaranski/majorleaguesoccer-today/external/videofeed"
	"github.com/jbaranski/majorleaguesoccer-today/internal/config"
	"github.com/jbaranski/majorleaguesoccer-today/internal/observability"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/resilience"
	"github.com/jbaranski/majorleaguesoccer-today/internal/snapshots"
	"github.com/jbaranski/majorleaguesoccer-today/internal/usecase"
)

const runTimeout = 5 * time.Minute

func main() {
	// Optional; the scheduled environment injects real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("aggregation run failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	shutdownTracing, err := observability.InitTracing(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("shutdown tracing failed", "error", err)
		}
	}()

	ctx, span := otel.Tracer("aggregator").Start(ctx, "aggregate.run")
	defer span.End()

	statsClient := statsapi.NewClient(statsapi.ClientConfig{
		BaseURL:   cfg.StatsBaseURL,
		UserAgent: cfg.StatsUserAgent,
		Timeout:   cfg.StatsTimeout,
		Logger:    logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.StatsCircuit.Enabled,
			FailureThreshold: cfg.StatsCircuit.FailureThreshold,
			Cooldown:         cfg.StatsCircuit.Cooldown,
			ProbeBudget:      cfg.StatsCircuit.ProbeBudget,
		},
	})
	videoClient := videofeed.NewClient(videofeed.ClientConfig{
		BaseURL: cfg.VideoFeedBaseURL,
		Limit:   cfg.VideoFeedLimit,
		Timeout: cfg.VideoFeedTimeout,
		Logger:  logger,
	})

	service := usecase.NewAggregateService(statsClient, statsClient, videoClient, usecase.AggregateConfig{
		SeasonID:               cfg.SeasonID,
		Location:               loc,
		EventWorkers:           cfg.EventWorkers,
		ExcludedCompetitionIDs: cfg.ExcludedCompetitionIDs,
		CompetitionPriority:    cfg.CompetitionPriority,
		CompletedStatuses:      cfg.CompletedStatuses,
	}, logger)

	out, err := service.Run(ctx)
	if err != nil {
		return err
	}

	writer := snapshots.NewWriter(cfg.OutputDir, loc, logger)
	return writer.Write(out)
}
