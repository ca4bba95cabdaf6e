// Package store persists analysis runs and their per-listing results.
package store

import (
	"context"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for analysis runs.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, source string) (*model.AnalysisRun, error)
	CompleteRun(ctx context.Context, runID string, summary *model.RunSummary) error
	FailRun(ctx context.Context, runID string) error
	GetRun(ctx context.Context, runID string) (*model.AnalysisRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.AnalysisRun, error)

	// Results
	SaveResults(ctx context.Context, runID string, results []*model.ListingFull) error
	ListResults(ctx context.Context, runID string) ([]model.ListingFull, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
