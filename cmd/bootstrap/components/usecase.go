package components

import (
	"golden-travel/internal/pkg/clock"
	"golden-travel/internal/usecase"
	"golden-travel/internal/usecase/commands"
	"golden-travel/internal/usecase/queries"

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
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewDealQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
