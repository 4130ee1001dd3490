package jobs

import (
	"context"
	"log/slog"
	"time"

	"routeboard/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultIdleTimeout is how long a session may go without user commands.
	DefaultIdleTimeout = 30 * time.Minute

	reaperSchedule = "@every 1m"
)

type idleCloser interface {
	CloseIdle(now time.Time, maxIdle time.Duration) []kernel.UUID
}

// SessionReaperJob closes editing sessions nobody has used for a while.
type SessionReaperJob struct {
	sessions idleCloser
	maxIdle  time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionReaperJob(sessions idleCloser, maxIdle time.Duration, logger *slog.Logger) *SessionReaperJob {
	if maxIdle <= 0 {
		maxIdle = DefaultIdleTimeout
	}

	return &SessionReaperJob{
		sessions: sessions,
		maxIdle:  maxIdle,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_reaper_job"),
	}
}

func (j *SessionReaperJob) Start() error {
	if _, err := j.cron.AddFunc(reaperSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session reaper job started", "max_idle", j.maxIdle)
	return nil
}

func (j *SessionReaperJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session reaper job stopped")
}

// Run closes the sessions idle for longer than the configured timeout.
func (j *SessionReaperJob) Run(ctx context.Context) {
	closed := j.sessions.CloseIdle(j.now(), j.maxIdle)
	if len(closed) > 0 {
		j.logger.InfoContext(ctx, "Closed idle sessions", "count", len(closed))
	}
}
