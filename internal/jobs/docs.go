// Package jobs provides scheduled background tasks for routeboard.
//
// Jobs run on github.com/robfig/cron/v3 schedules.
//
// # Available Jobs
//
// 1. BoardRefreshJob - reloads the orders of every open editing session's day and
// pushes them to the session. Clean sessions take the list at once; Dirty sessions
// keep only the most recent list until their changes are saved or discarded.
// 2. SessionReaperJob - closes sessions that received no user command for longer
// than the idle timeout. Refreshes do not count as use.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(registry, reader, jobs.Config{
//		RefreshSchedule: "@every 5s",
//		IdleTimeout:     30 * time.Minute,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A day that fails to load is skipped for the rest of the run and logged
// - Sessions closed while a refresh runs are skipped silently
// - Failed job starts will stop any already running jobs
package jobs
