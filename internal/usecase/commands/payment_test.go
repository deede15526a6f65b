//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"wescoot-api/internal/domain/payment"
	reqdto "wescoot-api/internal/handler/dto/request"
	"wescoot-api/internal/infra/paymentstore"
	"wescoot-api/internal/pkg/clock"
	"wescoot-api/internal/pkg/errs"
	"wescoot-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommands(t *testing.T) (commands.PaymentCommands, *paymentstore.Memory, *clock.MockClock) {
	t.Helper()
	store := paymentstore.NewMemory()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewPaymentCommands(store, clk), store, clk
}

func confirmRequest(intentID, cardNumber string) reqdto.ConfirmPaymentRequest {
	return reqdto.ConfirmPaymentRequest{
		PaymentIntentID: intentID,
		PaymentMethod: reqdto.PaymentMethod{
			Type: "card",
			Card: reqdto.CardDetails{
				Number:   cardNumber,
				ExpMonth: 12,
				ExpYear:  2030,
				CVC:      "123",
			},
		},
	}
}

func TestPaymentCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and stores an intent", func(t *testing.T) {
		cmds, store, clk := newTestCommands(t)

		intent, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{
			Amount:   4999,
			Currency: "usd",
			Metadata: map[string]string{"order": "42"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(4999), intent.Amount)
		assert.Equal(t, payment.StatusRequiresPaymentMethod, intent.Status)
		assert.Equal(t, clk.Now().Unix(), intent.Created)

		stored, err := store.Get(ctx, intent.ID)
		require.NoError(t, err)
		assert.Equal(t, intent.ID, stored.ID)
	})

	t.Run("rejects invalid amount", func(t *testing.T) {
		cmds, _, _ := newTestCommands(t)

		_, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 0})
		assert.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("successive intents get distinct ids", func(t *testing.T) {
		cmds, _, _ := newTestCommands(t)

		a, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 100})
		require.NoError(t, err)
		b, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 100})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestPaymentCommands_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a regular card", func(t *testing.T) {
		cmds, _, _ := newTestCommands(t)
		intent, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 4999})
		require.NoError(t, err)

		res, err := cmds.Confirm(ctx, confirmRequest(intent.ID, "4242424242424242"))
		require.NoError(t, err)

		assert.True(t, res.Approved)
		assert.Equal(t, payment.StatusSucceeded, res.Intent.Status)
		assert.Equal(t, "Payment succeeded", res.Message)
	})

	t.Run("declines the decline test card", func(t *testing.T) {
		cmds, store, _ := newTestCommands(t)
		intent, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 4999})
		require.NoError(t, err)

		res, err := cmds.Confirm(ctx, confirmRequest(intent.ID, payment.DeclinedTestCard))
		require.NoError(t, err)

		assert.False(t, res.Approved)
		assert.Equal(t, payment.StatusCanceled, res.Intent.Status)
		assert.Equal(t, "Your card was declined.", res.Message)

		// The cancellation is persisted, not just reported.
		stored, err := store.Get(ctx, intent.ID)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusCanceled, stored.Status)
	})

	t.Run("second confirmation is rejected", func(t *testing.T) {
		cmds, _, _ := newTestCommands(t)
		intent, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 4999})
		require.NoError(t, err)

		_, err = cmds.Confirm(ctx, confirmRequest(intent.ID, "4242424242424242"))
		require.NoError(t, err)

		_, err = cmds.Confirm(ctx, confirmRequest(intent.ID, "4242424242424242"))
		assert.ErrorIs(t, err, errs.ErrIntentFinalized)
	})

	t.Run("retry after decline is also rejected", func(t *testing.T) {
		cmds, _, _ := newTestCommands(t)
		intent, err := cmds.Create(ctx, reqdto.CreatePaymentIntentRequest{Amount: 4999})
		require.NoError(t, err)

		_, err = cmds.Confirm(ctx, confirmRequest(intent.ID, payment.DeclinedTestCard))
		require.NoError(t, err)

		_, err = cmds.Confirm(ctx, confirmRequest(intent.ID, "4242424242424242"))
		assert.ErrorIs(t, err, errs.ErrIntentFinalized)
	})

	t.Run("unknown intent id", func(t *testing.T) {
		cmds, _, _ := newTestCommands(t)

		_, err := cmds.Confirm(ctx, confirmRequest("pi_mock_missing", "4242424242424242"))
		assert.ErrorIs(t, err, errs.ErrIntentNotFound)
	})
}
