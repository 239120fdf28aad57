package event

import (
	"encoding/json"

	"github.com/google/uuid"
)

// eventPayload is the serialized body shared by both terminal payment events.
// It carries the masked card fragment only, never the full PAN.
type eventPayload struct {
	PaymentID          uuid.UUID `json:"payment_id"`
	CardNumberLastFour string    `json:"card_number_last_four"`
	Currency           string    `json:"currency"`
	Amount             int       `json:"amount"`
}

// PaymentAuthorized is emitted when the acquiring bank authorizes a payment.
type PaymentAuthorized struct {
	envelope
	CardNumberLastFour string
	Currency           string
	Amount             int
}

func NewPaymentAuthorized(paymentID uuid.UUID, lastFour, currency string, amount int) PaymentAuthorized {
	payload, _ := json.Marshal(eventPayload{
		PaymentID:          paymentID,
		CardNumberLastFour: lastFour,
		Currency:           currency,
		Amount:             amount,
	})

	return PaymentAuthorized{
		envelope:           newEnvelope("payment.authorized", paymentID, payload),
		CardNumberLastFour: lastFour,
		Currency:           currency,
		Amount:             amount,
	}
}

// PaymentDeclined is emitted when the acquiring bank declines a payment.
type PaymentDeclined struct {
	envelope
	CardNumberLastFour string
	Currency           string
	Amount             int
}

func NewPaymentDeclined(paymentID uuid.UUID, lastFour, currency string, amount int) PaymentDeclined {
	payload, _ := json.Marshal(eventPayload{
		PaymentID:          paymentID,
		CardNumberLastFour: lastFour,
		Currency:           currency,
		Amount:             amount,
	})

	return PaymentDeclined{
		envelope:           newEnvelope("payment.declined", paymentID, payload),
		CardNumberLastFour: lastFour,
		Currency:           currency,
		Amount:             amount,
	}
}
