package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finsight/pkg/models"
)

// ErrRunNotFound is returned when no analysis run exists for an id.
var ErrRunNotFound = errors.New("analysis run not found")

// RunStore is the persistence contract the pipeline drives. Every
// progress checkpoint is written through it before the stage's work
// begins, so a crashed run is observable at its last checkpoint.
type RunStore interface {
	CreateRun(ctx context.Context, run *models.AnalysisRun) error
	GetRun(ctx context.Context, id string) (*models.AnalysisRun, error)
	UpdateProgress(ctx context.Context, id string, status models.RunStatus, progress int, statusMessage string) error
	CompleteRun(ctx context.Context, run *models.AnalysisRun) error
	FailRun(ctx context.Context, id string, errMsg string) error
}

// PGRunStore implements RunStore on Postgres.
type PGRunStore struct {
	DB *sql.DB
}

var _ RunStore = (*PGRunStore)(nil)

func NewPGRunStore(db *sql.DB) *PGRunStore {
	return &PGRunStore{DB: db}
}

func (s *PGRunStore) CreateRun(ctx context.Context, run *models.AnalysisRun) error {
	const query = `
INSERT INTO analysis_runs (id, user_id, company_id, status, progress, status_message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.DB.ExecContext(ctx, query,
		run.ID,
		run.UserID,
		run.CompanyID,
		run.Status,
		run.Progress,
		run.StatusMessage,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis run: %w", err)
	}
	return nil
}

func (s *PGRunStore) GetRun(ctx context.Context, id string) (*models.AnalysisRun, error) {
	const query = `
SELECT id, user_id, company_id, status, progress, status_message,
       issues, results, executive_summary, error, created_at, completed_at
FROM analysis_runs
WHERE id = $1`

	var (
		run         models.AnalysisRun
		issues      []byte
		results     []byte
		summary     []byte
		errMsg      sql.NullString
		completedAt sql.NullTime
	)
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.UserID,
		&run.CompanyID,
		&run.Status,
		&run.Progress,
		&run.StatusMessage,
		&issues,
		&results,
		&summary,
		&errMsg,
		&run.CreatedAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select analysis run: %w", err)
	}

	if len(issues) > 0 {
		if err := json.Unmarshal(issues, &run.Issues); err != nil {
			return nil, fmt.Errorf("decode run issues: %w", err)
		}
	}
	if len(results) > 0 {
		if err := json.Unmarshal(results, &run.Results); err != nil {
			return nil, fmt.Errorf("decode run results: %w", err)
		}
	}
	if len(summary) > 0 {
		run.ExecutiveSummary = &models.ExecutiveSummary{}
		if err := json.Unmarshal(summary, run.ExecutiveSummary); err != nil {
			return nil, fmt.Errorf("decode run summary: %w", err)
		}
	}
	if errMsg.Valid {
		run.Error = errMsg.String
	}
	if completedAt.Valid {
		t := completedAt.Time
		run.CompletedAt = &t
	}
	return &run, nil
}

func (s *PGRunStore) UpdateProgress(ctx context.Context, id string, status models.RunStatus, progress int, statusMessage string) error {
	const query = `
UPDATE analysis_runs
SET status = $2, progress = $3, status_message = $4
WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id, status, progress, statusMessage)
	if err != nil {
		return fmt.Errorf("update run progress: %w", err)
	}
	return checkAffected(res)
}

func (s *PGRunStore) CompleteRun(ctx context.Context, run *models.AnalysisRun) error {
	issues, err := marshalJSONB(run.Issues)
	if err != nil {
		return fmt.Errorf("encode run issues: %w", err)
	}
	results, err := marshalJSONB(run.Results)
	if err != nil {
		return fmt.Errorf("encode run results: %w", err)
	}
	summary, err := marshalJSONB(run.ExecutiveSummary)
	if err != nil {
		return fmt.Errorf("encode run summary: %w", err)
	}

	const query = `
UPDATE analysis_runs
SET status = $2, progress = $3, status_message = $4,
    issues = $5, results = $6, executive_summary = $7, completed_at = $8
WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		run.ID,
		models.RunStatusCompleted,
		100,
		run.StatusMessage,
		issues,
		results,
		summary,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("complete run: %w", err)
	}
	return checkAffected(res)
}

func (s *PGRunStore) FailRun(ctx context.Context, id string, errMsg string) error {
	const query = `
UPDATE analysis_runs
SET status = $2, error = $3, completed_at = $4
WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id, models.RunStatusFailed, errMsg, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("fail run: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return ErrRunNotFound
	}
	return nil
}

// marshalJSONB encodes v for a JSONB column, mapping nil to SQL NULL.
func marshalJSONB(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case *models.ExecutiveSummary:
		if val == nil {
			return nil, nil
		}
	case []models.CleaningIssue:
		if val == nil {
			return nil, nil
		}
	case []models.AnalysisResult:
		if val == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}
