// Package scheduler runs the daily snapshot inside the API process when an
// external trigger is not used.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wealthtrack/internal/services"
)

// ScheduledTask is a single cron entry that can be cancelled.
type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
	once   sync.Once
}

// NewScheduledTask parses spec (standard five-field cron or a descriptor such
// as "@daily"), evaluated in loc, and starts running taskFunc on it.
func NewScheduledTask(spec string, loc *time.Location, taskFunc func()) (*ScheduledTask, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(spec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

// Next returns the next scheduled run.
func (s *ScheduledTask) Next() time.Time {
	return s.cron.Entry(s.cronID).Next
}

// Cancel removes the entry and stops the cron runner. It waits for a run in
// progress to finish and is safe to call more than once.
func (s *ScheduledTask) Cancel() {
	s.once.Do(func() {
		s.cron.Remove(s.cronID)
		close(s.cancel)
		<-s.cron.Stop().Done()
	})
}

// SnapshotJob returns a task that records the daily snapshot with a bounded
// context. Failures are logged; the next run retries.
func SnapshotJob(svc services.SnapshotServicer, timeout time.Duration, log *zap.SugaredLogger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := svc.TriggerSnapshot(ctx)
		if err != nil {
			log.Errorw("scheduled snapshot failed", "error", err.Error())
			return
		}
		log.Infow("scheduled snapshot finished", "status", result.Status)
	}
}
