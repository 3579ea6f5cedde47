package components

import (
	"book-courier/internal/pkg/clock"
	"book-courier/internal/usecase"
	"book-courier/internal/usecase/commands"
	"book-courier/internal/usecase/queries"

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
		commands.NewUserCommands,
		commands.NewBookCommands,
		commands.NewCheckoutCommands,
		commands.NewOrderCommands,
		commands.NewSellerRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookQueries,
		queries.NewOrderQueries,
		queries.NewSellerRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewIdentityVerifier,
	),
)
