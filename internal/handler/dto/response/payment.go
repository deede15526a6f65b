package response

import (
	"wescoot-api/internal/domain/payment"
)

// PaymentIntentData uses Stripe-style snake_case keys so the existing
// checkout frontend can consume it unchanged.
type PaymentIntentData struct {
	ID           string            `json:"id"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	ClientSecret string            `json:"client_secret"`
	Created      int64             `json:"created"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type PaymentIntentResponse struct {
	PaymentIntent *PaymentIntentData `json:"paymentIntent"`
	Success       bool               `json:"success"`
	Message       string             `json:"message,omitempty"`
}

func FromIntent(intent *payment.Intent, success bool, message string) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntent: &PaymentIntentData{
			ID:           intent.ID,
			Amount:       intent.Amount,
			Currency:     intent.Currency,
			Status:       string(intent.Status),
			ClientSecret: intent.ClientSecret,
			Created:      intent.Created,
			Metadata:     intent.Metadata,
		},
		Success: success,
		Message: message,
	}
}
