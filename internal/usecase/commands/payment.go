package commands

import (
	"context"
	"log/slog"

	reqdto "wescoot-api/internal/handler/dto/request"

	"wescoot-api/internal/domain/payment"
	"wescoot-api/internal/pkg/clock"
	"wescoot-api/internal/usecase/shared"
)

const (
	declineMessage = "Your card was declined."
	successMessage = "Payment succeeded"
)

type ConfirmResult struct {
	Intent *payment.Intent
	// Approved is false only for the decline-card outcome; store-level
	// failures (unknown id, already finalized) surface as errors instead.
	Approved bool
	Message  string
}

type PaymentCommands interface {
	Create(ctx context.Context, req reqdto.CreatePaymentIntentRequest) (*payment.Intent, error)
	Confirm(ctx context.Context, req reqdto.ConfirmPaymentRequest) (*ConfirmResult, error)
}

type paymentCommandsImpl struct {
	store shared.IntentStore
	clock clock.Clock
}

func NewPaymentCommands(store shared.IntentStore, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{store: store, clock: clk}
}

func (c *paymentCommandsImpl) Create(ctx context.Context, req reqdto.CreatePaymentIntentRequest) (*payment.Intent, error) {
	intent, err := payment.NewIntent(req.Amount, req.Currency, req.Metadata, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, intent); err != nil {
		return nil, err
	}

	slog.Info("payment intent created",
		"intent_id", intent.ID,
		"amount", intent.Amount,
		"currency", intent.Currency)

	return intent, nil
}

func (c *paymentCommandsImpl) Confirm(ctx context.Context, req reqdto.ConfirmPaymentRequest) (*ConfirmResult, error) {
	if payment.Declined(req.PaymentMethod.Card.Number) {
		intent, err := c.store.CompareAndSwapStatus(ctx, req.PaymentIntentID,
			payment.StatusRequiresPaymentMethod, payment.StatusCanceled)
		if err != nil {
			return nil, err
		}

		slog.Info("payment declined",
			"intent_id", intent.ID,
			"card_last4", req.CardLast4())

		return &ConfirmResult{Intent: intent, Approved: false, Message: declineMessage}, nil
	}

	intent, err := c.store.CompareAndSwapStatus(ctx, req.PaymentIntentID,
		payment.StatusRequiresPaymentMethod, payment.StatusSucceeded)
	if err != nil {
		return nil, err
	}

	slog.Info("payment confirmed",
		"intent_id", intent.ID,
		"amount", intent.Amount,
		"card_last4", req.CardLast4())

	return &ConfirmResult{Intent: intent, Approved: true, Message: successMessage}, nil
}
