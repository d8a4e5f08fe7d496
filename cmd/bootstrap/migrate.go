package bootstrap

import (
	"context"
	"log/slog"

	"rental-core/internal/infra/migrate"
	"rental-core/internal/pkg/config"

	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

// RunMigrations applies pending migrations on start when MIGRATE_ON_START is
// set. It is registered before the HTTP server so no request sees an old
// schema.
func RunMigrations(lc fx.Lifecycle, cfg config.Config) error {
	if !cfg.Migration.Enabled {
		return nil
	}

	runner, err := migrate.NewRunner(cfg.Migration, cfg.DB)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			n, err := runner.Apply(ctx)
			if err != nil {
				return err
			}
			slog.Info("schema up to date", "applied", n)
			return nil
		},
	})
	return nil
}
