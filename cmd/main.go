package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/atlas-indoor/internal/config"
	"github.com/UnknownOlympus/atlas-indoor/internal/document"
	"github.com/UnknownOlympus/atlas-indoor/internal/metrics"
	"github.com/UnknownOlympus/atlas-indoor/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	os.Exit(run())
}

// run translates the configured document and returns the process exit code:
// 0 when every entry was translated, 1 when the run failed, 2 when some entries were rejected.
func run() int {
	// Cancel the run on Ctrl+C so a partially translated document is never written.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	appMetrics := metrics.NewMetrics(reg)

	repo := document.NewRepository(cfg.Input, cfg.Output, logger)

	translator := service.NewTranslationService(
		logger,
		repo,
		appMetrics,
		cfg.Workers,
		cfg.Translation.DX,
		cfg.Translation.DY,
	)

	summary, err := translator.Run(ctx)
	writeMetrics(ctx, logger, reg, cfg.MetricsFile)

	switch {
	case err != nil:
		logger.ErrorContext(ctx, "Translation failed", "error", err)
		return 1
	case summary.Failed > 0:
		logger.WarnContext(ctx, "Some linear objects were rejected",
			"failed", summary.Failed, "total", summary.Total)
		return 2
	default:
		logger.InfoContext(ctx, "Translation completed", "translated", summary.Translated)
		return 0
	}
}

// writeMetrics dumps the registry in the text exposition format for the node exporter
// textfile collector. It does nothing when path is empty.
func writeMetrics(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, path string) {
	if path == "" {
		return
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		log.ErrorContext(ctx, "Failed to write metrics file", "path", path, "error", err)
		return
	}

	log.DebugContext(ctx, "Metrics written", "path", path)
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr because stdout may carry the output document.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
