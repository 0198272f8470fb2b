package components

import (
	"campus-barter/internal/domain/matching"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/infra/readstore"
	"campus-barter/internal/infra/uow"
	"campus-barter/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork (write side; repositories are tx-bound inside it)
		uow.NewPostgresUoW,
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Item
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Intent: also feeds the matching engine with the active intent pool
		fx.Annotate(
			readstore.NewIntentReadStore,
			fx.As(new(queries.IntentReadStore)),
			fx.As(new(matching.Source)),
		),
		// Match
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
		// Credit
		fx.Annotate(
			readstore.NewCreditReadStore,
			fx.As(new(queries.CreditReadStore)),
		),
		// Lost & Found
		fx.Annotate(
			readstore.NewLostFoundReadStore,
			fx.As(new(queries.LostFoundReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
