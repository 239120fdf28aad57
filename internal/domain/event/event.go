package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded against a payment. Every event in this
// service belongs to exactly one payment, so the envelope carries the payment
// identifier directly rather than a generic aggregate reference.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	PaymentID() uuid.UUID
	OccurredAt() time.Time
	Payload() []byte
}

// envelope carries the metadata shared by every payment event. Concrete
// events embed it and add their typed fields on top.
type envelope struct {
	id         uuid.UUID
	eventType  string
	paymentID  uuid.UUID
	occurredAt time.Time
	payload    []byte
}

func newEnvelope(eventType string, paymentID uuid.UUID, payload []byte) envelope {
	return envelope{
		id:         uuid.New(),
		eventType:  eventType,
		paymentID:  paymentID,
		occurredAt: time.Now().UTC(),
		payload:    payload,
	}
}

func (e envelope) EventID() uuid.UUID { return e.id }

func (e envelope) EventType() string { return e.eventType }

func (e envelope) PaymentID() uuid.UUID { return e.paymentID }

func (e envelope) OccurredAt() time.Time { return e.occurredAt }

func (e envelope) Payload() []byte { return e.payload }
