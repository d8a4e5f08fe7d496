package migrate

import (
	"context"
	"log/slog"

	"rental-core/internal/pkg/config"
	"rental-core/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// applier is the part of *atlasexec.Client used here.
type applier interface {
	MigrateApply(ctx context.Context, params *atlasexec.MigrateApplyParams) (*atlasexec.MigrateApply, error)
}

// Runner applies the versioned SQL files in cfg.Dir with the atlas CLI.
type Runner struct {
	client applier
	dir    string
	dsn    string
}

func NewRunner(cfg config.MigrationConfig, db config.DBConfig) (*Runner, error) {
	client, err := atlasexec.NewClient(".", cfg.Binary)
	if err != nil {
		return nil, errs.Wrap(err, "failed to init atlas client")
	}
	return &Runner{client: client, dir: cfg.Dir, dsn: db.BuildDSN()}, nil
}

// Apply runs pending migrations and reports how many were applied.
func (r *Runner) Apply(ctx context.Context) (int, error) {
	res, err := r.client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    r.dsn,
		DirURL: r.dir,
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to apply migrations")
	}
	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return len(res.Applied), nil
}
