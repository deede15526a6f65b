package request

type CreatePaymentIntentRequest struct {
	Amount   int64             `json:"amount" binding:"required,gt=0"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

type CardDetails struct {
	Number   string `json:"number" binding:"required"`
	ExpMonth int    `json:"exp_month" binding:"required"`
	ExpYear  int    `json:"exp_year" binding:"required"`
	CVC      string `json:"cvc" binding:"required"`
}

type PaymentMethod struct {
	Type string      `json:"type" binding:"required"`
	Card CardDetails `json:"card" binding:"required"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string        `json:"paymentIntentId" binding:"required"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" binding:"required"`
}

// CardLast4 is what gets logged; the full number never leaves the request.
func (r ConfirmPaymentRequest) CardLast4() string {
	n := r.PaymentMethod.Card.Number
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}
