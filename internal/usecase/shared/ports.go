package shared

import (
	"context"

	"wescoot-api/internal/domain/payment"
)

// IntentStore owns all payment intent state. Implementations must make
// CompareAndSwapStatus atomic per intent so that two concurrent confirms
// cannot both finalize; exactly one writer wins, the other observes a
// finalized intent.
type IntentStore interface {
	Put(ctx context.Context, intent *payment.Intent) error

	// Get returns a copy of the stored intent, or errs.ErrIntentNotFound.
	Get(ctx context.Context, id string) (*payment.Intent, error)

	// CompareAndSwapStatus transitions the intent from `from` to `to` and
	// returns the updated copy. It fails with errs.ErrIntentNotFound when
	// the id is unknown and errs.ErrIntentFinalized when the intent is no
	// longer in `from`.
	CompareAndSwapStatus(ctx context.Context, id string, from, to payment.Status) (*payment.Intent, error)
}
