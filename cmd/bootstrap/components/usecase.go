package components

import (
	"rental-core/internal/pkg/clock"
	"rental-core/internal/usecase"
	"rental-core/internal/usecase/commands"
	"rental-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		commands.NewInvoiceCommands,
		commands.NewOrderCommands,
		commands.NewPaymentCommands,
		commands.NewReviewCommands,
		commands.NewJobCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewInvoiceQueries,
		queries.NewPaymentQueries,
		queries.NewAvailabilityQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
