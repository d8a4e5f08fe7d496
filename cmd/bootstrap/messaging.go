package bootstrap

import (
	"context"
	"log/slog"

	"rental-core/internal/infra/messaging"
	"rental-core/internal/pkg/config"
	"rental-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotificationPublisher,
	),
)

// NewNotificationPublisher connects to RabbitMQ when AMQP_URL is set and
// falls back to logging notifications otherwise.
func NewNotificationPublisher(lc fx.Lifecycle, cfg config.Config) (commands.NotificationPublisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Warn("AMQP_URL not set, notifications will only be logged")
		return messaging.LogPublisher{}, nil
	}

	pub, err := messaging.Dial(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
