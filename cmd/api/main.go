package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"finsight/pkg/api/analysis"
	"finsight/pkg/config"
	"finsight/pkg/core/benchmark"
	"finsight/pkg/core/llm"
	"finsight/pkg/core/metrics"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/store"
	"finsight/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	ctx := context.Background()

	var runs store.RunStore
	if cfg.DatabaseURL != "" {
		db, err := store.Connect(ctx, cfg.DatabaseURL, store.DefaultOptions())
		if err != nil {
			logger.Fatal().Err(err).Msg("connect database")
		}
		defer db.Close()
		if err := store.RunMigrations(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("run migrations")
		}
		runs = store.NewPGRunStore(db)
	} else {
		logger.Warn().Msg("no database configured, runs are held in memory")
		runs = store.NewMemoryRunStore()
	}

	var bench benchmark.Provider = benchmark.NewStatic()
	if cfg.BenchmarkBaseURL != "" {
		bench = benchmark.NewHTTPProvider(cfg.BenchmarkBaseURL, cfg.BenchmarkAPIKey, logger)
	}

	var textProvider llm.Provider
	if cfg.LLMProvider != "" {
		textProvider, err = llm.NewProvider(cfg.LLMProvider, cfg.LLMModel)
		if err != nil {
			logger.Warn().Err(err).Msg("llm provider unavailable, narratives will be template only")
		}
	}
	synthesizer := narrative.NewSynthesizer(textProvider, logger)

	catalogue := metrics.DefaultCatalogue()
	if cfg.BreakpointsFile != "" {
		overrides, err := metrics.LoadBreakpointOverrides(cfg.BreakpointsFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.BreakpointsFile).Msg("load breakpoint overrides")
		}
		catalogue = metrics.ApplyBreakpointOverrides(catalogue, overrides)
	}

	orchestrator := pipeline.NewOrchestrator(runs, bench, synthesizer, catalogue, logger)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.HTTPAddr,
		ShutdownTimeout: 10 * time.Second,
		Analysis:        analysis.NewHandler(orchestrator, runs),
	})
	if err := api.Start(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}

	// Let in-flight runs finish before the process exits.
	orchestrator.Wait()
}
