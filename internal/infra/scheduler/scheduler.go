package scheduler

import (
	"context"
	"log/slog"
	"time"

	"rental-core/internal/pkg/config"
	"rental-core/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the rental housekeeping jobs on cron specs with seconds
// precision.
type Scheduler struct {
	cron *cron.Cron
	jobs commands.JobCommands
	cfg  config.SchedulerConfig
}

func New(jobs commands.JobCommands, cfg config.SchedulerConfig) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	s := &Scheduler{cron: c, jobs: jobs, cfg: cfg}
	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	entries := []struct {
		name string
		spec string
		run  func(ctx context.Context) (int64, error)
	}{
		{"mark_overdue_rentals", s.cfg.MarkOverdueRentals, s.markOverdue},
		{"send_return_reminders", s.cfg.SendReturnReminders, s.sendReturnReminders},
		{"dispatch_notifications", s.cfg.DispatchNotifications, s.dispatchNotifications},
		{"purge_idempotency_keys", "0 30 3 * * *", s.jobs.PurgeIdempotencyKeys},
	}
	for _, e := range entries {
		if e.spec == "" {
			continue
		}
		if _, err := s.cron.AddFunc(e.spec, s.wrap(e.name, e.run)); err != nil {
			slog.Error("failed to register job", "job", e.name, "spec", e.spec, "error", err)
			return err
		}
	}
	slog.Info("cron jobs registered", "count", len(s.cron.Entries()))
	return nil
}

// wrap gives each run its own timeout and logs the outcome.
func (s *Scheduler) wrap(name string, run func(ctx context.Context) (int64, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		n, err := run(ctx)
		if err != nil {
			slog.Error("job failed", "job", name, "duration", time.Since(start), "error", err)
			return
		}
		slog.Info("job finished", "job", name, "affected", n, "duration", time.Since(start))
	}
}

func (s *Scheduler) markOverdue(ctx context.Context) (int64, error) {
	n, err := s.jobs.MarkOverdue(ctx)
	return int64(n), err
}

func (s *Scheduler) sendReturnReminders(ctx context.Context) (int64, error) {
	window := time.Duration(s.cfg.ReminderWindowDays) * 24 * time.Hour
	n, err := s.jobs.QueueReturnReminders(ctx, window)
	return int64(n), err
}

func (s *Scheduler) dispatchNotifications(ctx context.Context) (int64, error) {
	n, err := s.jobs.DispatchNotifications(ctx, s.cfg.DispatchBatchSize)
	return int64(n), err
}

func (s *Scheduler) Start() {
	slog.Info("starting cron scheduler")
	s.cron.Start()
}

// Stop waits for running jobs to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("cron scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
