package bootstrap

import (
	"context"
	"log/slog"

	"rental-core/internal/infra/scheduler"
	"rental-core/internal/pkg/config"
	"rental-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, jobs commands.JobCommands) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("cron scheduler disabled")
		return nil
	}

	s, err := scheduler.New(jobs, cfg.Scheduler)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
