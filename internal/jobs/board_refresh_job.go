package jobs

import (
	"context"
	"errors"
	"log/slog"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule polls the open boards every five seconds.
const DefaultRefreshSchedule = "@every 5s"

type sessionLister interface {
	Sessions() []*editor.Session
}

// BoardRefreshJob reloads the orders of every open session's day and pushes them
// to the session. Dirty sessions hold the list until they become Clean.
type BoardRefreshJob struct {
	sessions sessionLister
	reader   ports.OrderReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBoardRefreshJob(
	sessions sessionLister,
	reader ports.OrderReader,
	schedule string,
	logger *slog.Logger,
) *BoardRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	return &BoardRefreshJob{
		sessions: sessions,
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start schedules the refresh. It fails when the schedule cannot be parsed.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *BoardRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}

// Run refreshes every open session once. Each day is loaded at most once per run.
func (j *BoardRefreshJob) Run(ctx context.Context) {
	loaded := make(map[kernel.Day][]*order.Order)
	failed := make(map[kernel.Day]bool)

	for _, session := range j.sessions.Sessions() {
		day := session.Day()
		if failed[day] {
			continue
		}

		orders, ok := loaded[day]
		if !ok {
			var err error
			orders, err = j.reader.ListByDeliveryDay(ctx, day)
			if err != nil {
				failed[day] = true
				j.logger.ErrorContext(ctx, "Failed to load day orders", "day", day.String(), "error", err)
				continue
			}
			loaded[day] = orders
		}

		if err := session.PushList(ctx, orders); err != nil && !errors.Is(err, editor.ErrSessionClosed) {
			j.logger.ErrorContext(ctx, "Failed to refresh session",
				"session_id", session.ID().String(),
				"error", err,
			)
		}
	}
}
