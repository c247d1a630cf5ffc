// Package pipeline drives an analysis run through its fixed stages:
// normalize, validate, fetch benchmarks, compute, synthesize, persist.
// Progress checkpoints are written to the store before each stage's
// work, so a poller always sees where a run stands even if the process
// dies mid-stage. Runs are fire-and-forget: a failure marks the run
// failed and is never retried, and re-submitting the same input always
// creates a new run.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"finsight/pkg/core/benchmark"
	"finsight/pkg/core/metrics"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/normalize"
	"finsight/pkg/core/store"
	"finsight/pkg/core/validate"
	"finsight/pkg/models"
)

// Request carries everything a caller submits for analysis.
type Request struct {
	UserID  string
	Company models.Company
	Depth   models.AnalysisDepth
	Records []models.RawRecord
}

// Stage checkpoints. Each value is persisted before the stage it
// labels begins; 100 is written by CompleteRun.
const (
	checkpointReceived   = 10
	checkpointNormalize  = 20
	checkpointValidate   = 30
	checkpointBenchmarks = 40
	checkpointCompute    = 70
	checkpointSynthesize = 85
	checkpointPersist    = 95

	defaultStageTimeout = 10 * time.Minute
)

// Orchestrator owns the run lifecycle.
type Orchestrator struct {
	runs        store.RunStore
	benchmarks  benchmark.Provider
	synthesizer *narrative.Synthesizer
	catalogue   []metrics.Spec
	logger      zerolog.Logger
	timeout     time.Duration
	wg          sync.WaitGroup
}

func NewOrchestrator(runs store.RunStore, benchmarks benchmark.Provider, synthesizer *narrative.Synthesizer, catalogue []metrics.Spec, logger zerolog.Logger) *Orchestrator {
	if len(catalogue) == 0 {
		catalogue = metrics.DefaultCatalogue()
	}
	return &Orchestrator{
		runs:        runs,
		benchmarks:  benchmarks,
		synthesizer: synthesizer,
		catalogue:   catalogue,
		logger:      logger,
		timeout:     defaultStageTimeout,
	}
}

// Submit registers a pending run and starts processing it in the
// background. The returned run reflects the pending state; callers
// poll the store for progress.
func (o *Orchestrator) Submit(ctx context.Context, req Request) (*models.AnalysisRun, error) {
	if len(req.Records) == 0 {
		return nil, fmt.Errorf("no records submitted")
	}
	if req.Depth == "" {
		req.Depth = models.DepthComprehensive
	}

	run := &models.AnalysisRun{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		CompanyID:     req.Company.ID,
		Status:        models.RunStatusPending,
		Progress:      0,
		StatusMessage: "بانتظار بدء التحليل",
		CreatedAt:     time.Now().UTC(),
	}
	if err := o.runs.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create analysis run: %w", err)
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		runCtx, cancel := context.WithTimeout(context.Background(), o.timeout)
		defer cancel()
		o.process(runCtx, run.ID, req)
	}()

	return run, nil
}

// Wait blocks until all in-flight runs finish. Used by the CLI and by
// server shutdown.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

func (o *Orchestrator) process(ctx context.Context, id string, req Request) {
	logger := o.logger.With().Str("run_id", id).Logger()
	start := time.Now()

	fail := func(stage string, err error) {
		logger.Error().Err(err).Str("stage", stage).Msg("analysis run failed")
		msg := fmt.Sprintf("%s: %v", stage, err)
		if storeErr := o.runs.FailRun(ctx, id, msg); storeErr != nil {
			logger.Error().Err(storeErr).Msg("could not mark run failed")
		}
	}
	// A run must always end terminal: if a checkpoint cannot be
	// persisted, the run is marked failed (best effort) rather than
	// left at processing for pollers to wait on forever.
	checkpoint := func(stage string, progress int, message string) bool {
		if err := o.runs.UpdateProgress(ctx, id, models.RunStatusProcessing, progress, message); err != nil {
			logger.Error().Err(err).Int("progress", progress).Msg("could not persist checkpoint")
			fail(stage, fmt.Errorf("persist checkpoint: %w", err))
			return false
		}
		return true
	}

	if !checkpoint("received", checkpointReceived, "تم استلام البيانات") {
		return
	}

	if !checkpoint("normalize", checkpointNormalize, "توحيد بنود القوائم المالية") {
		return
	}
	statements, issues := normalize.Normalize(req.Records)
	if len(statements) == 0 {
		fail("normalize", fmt.Errorf("no usable statements in input"))
		return
	}

	if !checkpoint("validate", checkpointValidate, "فحص الاتساق المحاسبي واستكمال المجاميع") {
		return
	}
	statements, validationIssues := validate.CleanAll(statements)
	issues = append(issues, validationIssues...)

	if !checkpoint("fetch_benchmarks", checkpointBenchmarks, "جلب متوسطات الصناعة") {
		return
	}
	specs := metrics.CatalogueForDepth(o.catalogue, req.Depth)
	keys := metrics.BenchmarkKeys(specs)
	benchmarks, err := o.benchmarks.GetBenchmarks(ctx, req.Company.Sector, req.Company.Activity, req.Company.Country, keys)
	if err != nil {
		fail("fetch_benchmarks", err)
		return
	}

	if !checkpoint("compute", checkpointCompute, "احتساب المؤشرات المالية") {
		return
	}
	results := metrics.ComputeAll(statements, benchmarks, specs)

	if !checkpoint("synthesize", checkpointSynthesize, "إعداد الملخص التنفيذي") {
		return
	}
	insights := o.synthesizer.Synthesize(ctx, req.Company, results)
	summary := metrics.BuildExecutiveSummary(results, req.Company, insights.KeyInsights)
	summary.Risks = append(summary.Risks, insights.Risks...)
	summary.Forecasts = append(summary.Forecasts, insights.Forecasts...)

	if !checkpoint("persist", checkpointPersist, "حفظ النتائج") {
		return
	}
	completed := &models.AnalysisRun{
		ID:               id,
		StatusMessage:    "اكتمل التحليل",
		Issues:           issues,
		Results:          results,
		ExecutiveSummary: &summary,
	}
	if err := o.runs.CompleteRun(ctx, completed); err != nil {
		fail("persist", err)
		return
	}

	logger.Info().
		Int("statements", len(statements)).
		Int("results", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("analysis run completed")
}
