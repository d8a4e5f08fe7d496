package bootstrap

import (
	"time"

	"rental-core/internal/pkg/clock"
	"rental-core/internal/pkg/config"
	"rental-core/internal/pkg/jwt"

	"github.com/cockroachdb/errors"
	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	if duration <= 0 {
		return nil, errors.Newf("JWT_DURATION must be positive, got %s", duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration, jwt.WithIssuer(cfg.JWT.Issuer), jwt.WithClock(clk)), nil
}
