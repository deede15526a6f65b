package queries

import (
	"context"

	"wescoot-api/internal/domain/payment"
	"wescoot-api/internal/usecase/shared"
)

type PaymentQueries interface {
	// Get is a pure lookup; it never mutates intent state.
	Get(ctx context.Context, id string) (*payment.Intent, error)
}

type paymentQueriesImpl struct {
	store shared.IntentStore
}

func NewPaymentQueries(store shared.IntentStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) Get(ctx context.Context, id string) (*payment.Intent, error) {
	return q.store.Get(ctx, id)
}
