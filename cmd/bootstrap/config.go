package bootstrap

import (
	"rental-core/internal/domain/pricing"
	"rental-core/internal/pkg/config"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPricingPolicy,
	),
)

// NewPricingPolicy converts the env settings into the decimal policy the use
// cases work with.
func NewPricingPolicy(cfg config.Config) pricing.Policy {
	p := cfg.Pricing
	return pricing.Policy{
		TaxRate:           decimal.NewFromFloat(p.TaxRate),
		LateFeePercentage: decimal.NewFromFloat(p.LateFeePercentage),
		LateFeePerDay:     decimal.NewFromFloat(p.LateFeePerDay),
		InvoiceDueDays:    p.InvoiceDueDays,
		InterStateSupply:  p.InterStateSupply,
		Currency:          p.Currency,
	}
}
