package store

import (
	"context"
	"sync"
	"time"

	"finsight/pkg/models"
)

// MemoryRunStore is an in-process RunStore for the CLI and tests.
type MemoryRunStore struct {
	mu   sync.RWMutex
	runs map[string]models.AnalysisRun
}

var _ RunStore = (*MemoryRunStore)(nil)

func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{runs: make(map[string]models.AnalysisRun)}
}

func (s *MemoryRunStore) CreateRun(ctx context.Context, run *models.AnalysisRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

func (s *MemoryRunStore) GetRun(ctx context.Context, id string) (*models.AnalysisRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return &run, nil
}

func (s *MemoryRunStore) UpdateProgress(ctx context.Context, id string, status models.RunStatus, progress int, statusMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return ErrRunNotFound
	}
	run.Status = status
	run.Progress = progress
	run.StatusMessage = statusMessage
	s.runs[id] = run
	return nil
}

func (s *MemoryRunStore) CompleteRun(ctx context.Context, completed *models.AnalysisRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[completed.ID]
	if !ok {
		return ErrRunNotFound
	}
	now := time.Now().UTC()
	run.Status = models.RunStatusCompleted
	run.Progress = 100
	run.StatusMessage = completed.StatusMessage
	run.Issues = completed.Issues
	run.Results = completed.Results
	run.ExecutiveSummary = completed.ExecutiveSummary
	run.CompletedAt = &now
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryRunStore) FailRun(ctx context.Context, id string, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return ErrRunNotFound
	}
	now := time.Now().UTC()
	run.Status = models.RunStatusFailed
	run.Error = errMsg
	run.CompletedAt = &now
	s.runs[id] = run
	return nil
}
