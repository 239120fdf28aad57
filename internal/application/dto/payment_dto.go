package dto

import "github.com/google/uuid"

// SubmitPaymentRequest is the input DTO for an authorization attempt.
// It is transient: the card number and CVV exist only for the duration of
// one pipeline invocation and are never persisted as-is.
type SubmitPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int    `json:"amount"`
	Cvv         string `json:"cvv"`
}

// PaymentResponse is the output DTO for a finalized payment record.
// It carries the masked card fragment only.
type PaymentResponse struct {
	ID                 uuid.UUID `json:"id"`
	Status             string    `json:"status"`
	CardNumberLastFour string    `json:"card_number_last_four"`
	ExpiryMonth        int       `json:"expiry_month"`
	ExpiryYear         int       `json:"expiry_year"`
	Currency           string    `json:"currency"`
	Amount             int       `json:"amount"`
}
