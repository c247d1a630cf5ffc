package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"finsight/pkg/core/benchmark"
	"finsight/pkg/core/narrative"
	"finsight/pkg/core/store"
	"finsight/pkg/models"
)

// recordingStore wraps the in-memory store and records every persisted
// progress value in order.
type recordingStore struct {
	*store.MemoryRunStore
	mu       sync.Mutex
	progress []int
}

func newRecordingStore() *recordingStore {
	return &recordingStore{MemoryRunStore: store.NewMemoryRunStore()}
}

func (r *recordingStore) UpdateProgress(ctx context.Context, id string, status models.RunStatus, progress int, statusMessage string) error {
	r.mu.Lock()
	r.progress = append(r.progress, progress)
	r.mu.Unlock()
	return r.MemoryRunStore.UpdateProgress(ctx, id, status, progress, statusMessage)
}

func (r *recordingStore) checkpoints() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.progress...)
}

type failingBenchmarks struct{}

func (failingBenchmarks) GetBenchmarks(ctx context.Context, sector, activity, region string, keys []string) (benchmark.Set, error) {
	return nil, fmt.Errorf("benchmark service unavailable")
}

func yearPtr(y int) *int { return &y }

func sampleRecords() []models.RawRecord {
	records := make([]models.RawRecord, 0, 2)
	for _, y := range []int{2022, 2023} {
		scale := float64(y - 2021)
		records = append(records, models.RawRecord{
			Year:     yearPtr(y),
			Currency: "SAR",
			Fields: map[string]any{
				"Cash and Cash Equivalents": 500.0 * scale,
				"Accounts Receivable":       300.0 * scale,
				"Inventory":                 200.0 * scale,
				"Property Plant Equipment":  2000.0 * scale,
				"Accounts Payable":          400.0 * scale,
				"Long Term Debt":            1000.0 * scale,
				"Paid In Capital":           1000.0 * scale,
				"Retained Earnings":         600.0 * scale,
				"Revenue":                   10000.0 * scale,
				"Cost of Goods Sold":        6000.0 * scale,
				"Salaries and Wages":        1500.0 * scale,
				"Interest Expense":          100.0 * scale,
				"Income Tax Expense":        200.0 * scale,
				"Depreciation":              150.0 * scale,
				"Capital Expenditures":      300.0 * scale,
				"Cash at Beginning of Year": 400.0 * scale,
			},
		})
	}
	return records
}

func newTestOrchestrator(runs store.RunStore, bench benchmark.Provider) *Orchestrator {
	synth := narrative.NewSynthesizer(nil, zerolog.Nop())
	return NewOrchestrator(runs, bench, synth, nil, zerolog.Nop())
}

func TestRunCompletesWithResults(t *testing.T) {
	runs := newRecordingStore()
	o := newTestOrchestrator(runs, benchmark.NewStatic())

	submitted, err := o.Submit(context.Background(), Request{
		UserID:  "user-1",
		Company: models.Company{ID: "co-1", Name: "شركة التجزئة", Sector: "retail"},
		Depth:   models.DepthComprehensive,
		Records: sampleRecords(),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if submitted.Status != models.RunStatusPending {
		t.Errorf("submitted status = %s, want pending", submitted.Status)
	}
	o.Wait()

	run, err := runs.GetRun(context.Background(), submitted.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Status != models.RunStatusCompleted {
		t.Fatalf("status = %s (error %q), want completed", run.Status, run.Error)
	}
	if run.Progress != 100 {
		t.Errorf("progress = %d, want 100", run.Progress)
	}
	if len(run.Results) == 0 {
		t.Error("completed run must carry results")
	}
	if run.ExecutiveSummary == nil || run.ExecutiveSummary.CompanyName != "شركة التجزئة" {
		t.Errorf("summary = %+v", run.ExecutiveSummary)
	}
	if run.CompletedAt == nil {
		t.Error("completedAt must be set")
	}
}

func TestCheckpointsArePersistedInOrder(t *testing.T) {
	runs := newRecordingStore()
	o := newTestOrchestrator(runs, benchmark.NewStatic())

	if _, err := o.Submit(context.Background(), Request{Records: sampleRecords()}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	o.Wait()

	want := []int{10, 20, 30, 40, 70, 85, 95}
	got := runs.checkpoints()
	if len(got) != len(want) {
		t.Fatalf("checkpoints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("checkpoints = %v, want %v", got, want)
		}
	}
}

func TestBenchmarkOutageFailsRun(t *testing.T) {
	runs := newRecordingStore()
	o := newTestOrchestrator(runs, failingBenchmarks{})

	submitted, err := o.Submit(context.Background(), Request{Records: sampleRecords()})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	o.Wait()

	run, err := runs.GetRun(context.Background(), submitted.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Status != models.RunStatusFailed {
		t.Fatalf("status = %s, want failed", run.Status)
	}
	if !strings.Contains(run.Error, "fetch_benchmarks") {
		t.Errorf("error = %q, must name the failed stage", run.Error)
	}
	if len(run.Results) != 0 {
		t.Error("failed run must not carry results")
	}

	// Stages after the failure never run.
	for _, p := range runs.checkpoints() {
		if p > 40 {
			t.Errorf("checkpoint %d persisted after failing stage", p)
		}
	}
}

// flakyStore refuses to persist one specific checkpoint but accepts
// everything else, including the terminal failure write.
type flakyStore struct {
	*store.MemoryRunStore
	failAt int
}

func (f *flakyStore) UpdateProgress(ctx context.Context, id string, status models.RunStatus, progress int, statusMessage string) error {
	if progress == f.failAt {
		return fmt.Errorf("connection reset by peer")
	}
	return f.MemoryRunStore.UpdateProgress(ctx, id, status, progress, statusMessage)
}

func TestCheckpointWriteFailureFailsRun(t *testing.T) {
	runs := &flakyStore{MemoryRunStore: store.NewMemoryRunStore(), failAt: 40}
	o := newTestOrchestrator(runs, benchmark.NewStatic())

	submitted, err := o.Submit(context.Background(), Request{Records: sampleRecords()})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	o.Wait()

	run, err := runs.GetRun(context.Background(), submitted.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if run.Status != models.RunStatusFailed {
		t.Fatalf("status = %s (progress %d), want failed", run.Status, run.Progress)
	}
	if run.Error == "" {
		t.Error("failed run must carry an error message")
	}
	if !strings.Contains(run.Error, "fetch_benchmarks") {
		t.Errorf("error = %q, must name the stage whose checkpoint was lost", run.Error)
	}
}

func TestSubmitRejectsEmptyInput(t *testing.T) {
	o := newTestOrchestrator(newRecordingStore(), benchmark.NewStatic())
	if _, err := o.Submit(context.Background(), Request{}); err == nil {
		t.Error("empty submission must be rejected")
	}
}

func TestResubmissionCreatesNewRun(t *testing.T) {
	runs := newRecordingStore()
	o := newTestOrchestrator(runs, benchmark.NewStatic())

	req := Request{Records: sampleRecords()}
	first, err := o.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	second, err := o.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if first.ID == second.ID {
		t.Error("re-submission must create a distinct run")
	}
	o.Wait()
}
