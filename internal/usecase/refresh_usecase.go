package usecase

import (
	"context"
	"time"
)

// RefreshStatus describes the latest refresh run
type RefreshStatus struct {
	RunID      string    `json:"runId,omitempty"`
	Running    bool      `json:"running"`
	StartedAt  time.Time `json:"startedAt,omitzero"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
	Products   int       `json:"products"`
	Error      string    `json:"error,omitempty"`
}

// RefreshUsecase defines the download → ingest → persist refresh use cases
type RefreshUsecase interface {
	// Refresh runs one refresh and waits for it. Concurrent callers share the same run.
	Refresh(ctx context.Context) (RefreshStatus, error)

	// Trigger starts a refresh in the background and returns its run id.
	// If a run is already in progress its id is returned with ErrRefreshInProgress.
	Trigger() (string, error)

	// Status returns the state of the latest run
	Status() RefreshStatus
}
