package components

import (
	"locker-hub/internal/infra/readstore"
	sqlc "locker-hub/internal/infra/sqlc/generated"
	"locker-hub/internal/infra/uow"
	"locker-hub/internal/usecase/queries"
	"locker-hub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Locker
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LockerViewQueries)),
		),
		fx.Annotate(
			readstore.NewLockerReadStore,
			fx.As(new(queries.LockerReadStore)),
		),
		// Location
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LocationViewQueries)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationFinder)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// repositories are built per transaction by the unit of work
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
