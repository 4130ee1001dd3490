package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/ports"
)

// Config holds the job schedules. Zero values fall back to the package defaults.
type Config struct {
	RefreshSchedule string
	IdleTimeout     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardRefreshJob  *BoardRefreshJob
	sessionReaperJob *SessionReaperJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	registry *editor.Registry,
	reader ports.OrderReader,
	cfg Config,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boardRefreshJob:  NewBoardRefreshJob(registry, reader, cfg.RefreshSchedule, logger),
		sessionReaperJob: NewSessionReaperJob(registry, cfg.IdleTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start board refresh job: %w", err)
	}

	if err := jm.sessionReaperJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.boardRefreshJob.Stop()
		return fmt.Errorf("failed to start session reaper job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.sessionReaperJob.Stop()
	jm.boardRefreshJob.Stop()
}
