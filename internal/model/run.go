package model

import "time"

// RunStatus represents the current state of an analysis run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// AnalysisRun records one batch analysis of a lead file.
type AnalysisRun struct {
	ID        string      `json:"id"`
	Source    string      `json:"source"` // input path or URL
	Status    RunStatus   `json:"status"`
	Summary   *RunSummary `json:"summary,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RunSummary aggregates the outcome of a run.
type RunSummary struct {
	Listings   int                         `json:"listings"`
	Failed     int                         `json:"failed"`
	Strategies map[AcquisitionStrategy]int `json:"strategies"`
}
