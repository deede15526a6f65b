package paymentstore

import (
	"context"
	"sync"

	"wescoot-api/internal/domain/payment"
	"wescoot-api/internal/pkg/errs"
	"wescoot-api/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// Memory keeps intents for the lifetime of the process. State never
// leaves the map except as a copy, so callers cannot mutate stored
// intents behind the lock's back.
type Memory struct {
	mu      sync.RWMutex
	intents map[string]*payment.Intent
}

func NewMemory() *Memory {
	return &Memory{
		intents: make(map[string]*payment.Intent),
	}
}

var _ shared.IntentStore = (*Memory)(nil)

func (s *Memory) Put(_ context.Context, intent *payment.Intent) error {
	if intent == nil || intent.ID == "" {
		return errs.New("intent must have an id")
	}

	cp, err := clone(intent)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.intents[intent.ID] = cp
	return nil
}

func (s *Memory) Get(_ context.Context, id string) (*payment.Intent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	intent, ok := s.intents[id]
	if !ok {
		return nil, errs.ErrIntentNotFound
	}
	return clone(intent)
}

func (s *Memory) CompareAndSwapStatus(_ context.Context, id string, from, to payment.Status) (*payment.Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, ok := s.intents[id]
	if !ok {
		return nil, errs.ErrIntentNotFound
	}
	if intent.Status != from {
		// The only way a mock intent leaves the initial status is
		// finalization, so a mismatch means someone got here first.
		return nil, errs.ErrIntentFinalized
	}

	intent.Status = to
	return clone(intent)
}

// clone deep-copies an intent (including the metadata map).
func clone(intent *payment.Intent) (*payment.Intent, error) {
	var cp payment.Intent
	if err := copier.CopyWithOption(&cp, intent, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "failed to copy intent")
	}
	return &cp, nil
}
