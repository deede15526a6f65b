package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jaevor/go-nanoid"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// Status mirrors the Stripe payment intent status vocabulary. Only the
// initial and terminal values are ever assigned by this mock processor;
// the rest exist for API compatibility.
type Status string

const (
	StatusRequiresPaymentMethod Status = "requires_payment_method"
	StatusRequiresConfirmation  Status = "requires_confirmation"
	StatusRequiresAction        Status = "requires_action"
	StatusProcessing            Status = "processing"
	StatusSucceeded             Status = "succeeded"
	StatusCanceled              Status = "canceled"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusCanceled
}

const DefaultCurrency = "usd"

// DeclinedTestCard is the card number prefix that always declines,
// mirroring Stripe's test card for declined charges.
const DeclinedTestCard = "4000000000000002"

// Declined applies the mock authorization decision rule: deterministic,
// two outcomes, keyed on the card number alone.
func Declined(cardNumber string) bool {
	return strings.HasPrefix(cardNumber, DeclinedTestCard)
}

// Intent is a plain record; lifecycle transitions are enforced by the
// store's compare-and-swap, not by mutating methods here.
type Intent struct {
	ID           string
	Amount       int64 // minor currency units
	Currency     string
	Status       Status
	ClientSecret string
	Metadata     map[string]string
	Created      int64 // epoch seconds
}

// Matches the 13-char lowercase alphanumeric entropy of the mock ids
// the frontend already knows how to display. Not cryptographically
// significant; uniqueness within a process lifetime is all that matters.
var newEntropy = mustEntropyGenerator()

func mustEntropyGenerator() func() string {
	gen, err := nanoid.CustomASCII("0123456789abcdefghijklmnopqrstuvwxyz", 13)
	if err != nil {
		panic(err)
	}
	return gen
}

func NewIntent(amount int64, currency string, metadata map[string]string, now time.Time) (*Intent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	id := fmt.Sprintf("pi_mock_%d_%s", now.UnixMilli(), newEntropy())

	return &Intent{
		ID:           id,
		Amount:       amount,
		Currency:     currency,
		Status:       StatusRequiresPaymentMethod,
		ClientSecret: fmt.Sprintf("%s_secret_%s", id, newEntropy()),
		Metadata:     metadata,
		Created:      now.Unix(),
	}, nil
}

func (i *Intent) Finalized() bool {
	return i.Status.Terminal()
}
