package components

import (
	"wescoot-api/internal/infra/paymentstore"
	"wescoot-api/internal/infra/readstore"
	"wescoot-api/internal/usecase/queries"
	"wescoot-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewReadDB,
		// Scooter
		fx.Annotate(
			readstore.NewScooterReadStore,
			fx.As(new(queries.ScooterReadStore)),
		),
		// Payment intents live in process memory; swap this provider
		// for a durable store when real payments land.
		fx.Annotate(
			paymentstore.NewMemory,
			fx.As(new(shared.IntentStore)),
		),
	),
)

func NewReadDB(pool *pgxpool.Pool) readstore.DB {
	return pool
}
