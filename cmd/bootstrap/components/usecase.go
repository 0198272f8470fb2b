package components

import (
	"campus-barter/internal/domain/matching"
	"campus-barter/internal/usecase"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		matching.NewEngine,
		usecase.NewTokenValidator,

		commands.NewAuthCommands,
		commands.NewItemCommands,
		commands.NewIntentCommands,
		commands.NewMatchCommands,
		commands.NewLostFoundCommands,

		queries.NewUserQueries,
		queries.NewItemQueries,
		queries.NewIntentQueries,
		queries.NewMatchQueries,
		queries.NewCreditQueries,
		queries.NewLostFoundQueries,
	),
)
