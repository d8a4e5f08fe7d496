package components

import (
	"log/slog"

	"rental-core/internal/infra/gateway"
	"rental-core/internal/pkg/config"
	"rental-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewPaymentGateway,
	),
)

// NewPaymentGateway picks the in-process sandbox unless GATEWAY_SANDBOX is
// turned off.
func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	if cfg.Gateway.Sandbox {
		slog.Warn("payment gateway running in sandbox mode")
		return gateway.NewSandbox(cfg.Gateway)
	}
	return gateway.NewRazorpayClient(cfg.Gateway)
}
