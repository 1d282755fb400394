package components

import (
	"golden-travel/internal/infra"
	"golden-travel/internal/infra/readstore"
	"golden-travel/internal/infra/uow"
	"golden-travel/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
