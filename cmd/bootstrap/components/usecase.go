package components

import (
	"gas-agency/internal/pkg/clock"
	"gas-agency/internal/pkg/config"
	"gas-agency/internal/usecase"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/fanout"
	"gas-agency/internal/usecase/queries"
	"gas-agency/internal/usecase/shared"

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
	fx.Annotate(
		fanout.NewDispatcher,
		fx.As(new(commands.SideEffects)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewNoticeCommands,
		NewBookingCommands,
	),
)

func NewBookingCommands(
	uowInst shared.UnitOfWork,
	effects commands.SideEffects,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(uowInst, effects, clk, cfg.Agency.AdminEmail)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCustomerQueries,
		queries.NewNoticeQueries,
		queries.NewStatsQueries,
		queries.NewAuditLogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
