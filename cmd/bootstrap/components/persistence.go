package components

import (
	"gas-agency/internal/infra/readstore"
	"gas-agency/internal/infra/relay"
	repo_impl "gas-agency/internal/infra/repository"
	"gas-agency/internal/infra/session"
	"gas-agency/internal/infra/uow"
	"gas-agency/internal/pkg/config"
	"gas-agency/internal/usecase/commands"
	"gas-agency/internal/usecase/fanout"
	"gas-agency/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(commands.CustomerWriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewNoticeRepository,
			fx.As(new(commands.NoticeWriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewAdminRegistry,
			fx.As(new(commands.AdminRegistry)),
		),
		fx.Annotate(
			repo_impl.NewAuditRepository,
			fx.As(new(fanout.AuditAppender)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewNoticeReadStore,
			fx.As(new(queries.NoticeReadStore)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
		fx.Annotate(
			readstore.NewAuditLogReadStore,
			fx.As(new(queries.AuditLogReadStore)),
		),
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
		),
		fx.Annotate(
			NewRelayClient,
			fx.As(new(fanout.Relay)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}

func NewSessionStore(client *redis.Client, cfg config.Config) *session.Store {
	return session.NewStore(client, cfg.JWT.SessionDuration)
}

func NewRelayClient(cfg config.Config) *relay.Client {
	return relay.NewClient(cfg.Relay)
}
