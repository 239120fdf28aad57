package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/domain/event"
	"github.com/acquiropay/gateway/internal/domain/valueobject"
)

// Payment is the persisted record of a finalized authorization attempt.
// It is created only after the acquiring bank returns AUTHORIZED or DECLINED
// and is immutable for its lifetime: there is no update path, and a given
// identifier maps to at most one record.
type Payment struct {
	id           uuid.UUID
	status       valueobject.PaymentStatus
	maskedCard   valueobject.MaskedCardNumber
	expiryMonth  int
	expiryYear   int
	currency     string
	amount       int
	domainEvents []event.DomainEvent
}

// NewPayment builds a Payment record from a finalized attempt. The raw card
// number is reduced to its masked form here; the full PAN is never retained.
func NewPayment(
	id uuid.UUID,
	status valueobject.PaymentStatus,
	cardNumber string,
	expiryMonth, expiryYear int,
	currency string,
	amount int,
) (Payment, error) {
	if id == uuid.Nil {
		return Payment{}, fmt.Errorf("payment ID is required")
	}
	if !status.IsFinal() {
		return Payment{}, fmt.Errorf("payment record requires a final status, got: %q", status.String())
	}

	masked, ok := valueobject.NewMaskedCardNumber(cardNumber)
	if !ok {
		return Payment{}, fmt.Errorf("card number cannot be masked")
	}

	p := Payment{
		id:          id,
		status:      status,
		maskedCard:  masked,
		expiryMonth: expiryMonth,
		expiryYear:  expiryYear,
		currency:    currency,
		amount:      amount,
	}

	switch status {
	case valueobject.StatusAuthorized:
		p.domainEvents = append(p.domainEvents,
			event.NewPaymentAuthorized(id, masked.LastFour(), currency, amount),
		)
	case valueobject.StatusDeclined:
		p.domainEvents = append(p.domainEvents,
			event.NewPaymentDeclined(id, masked.LastFour(), currency, amount),
		)
	}

	return p, nil
}

// Accessors

func (p Payment) ID() uuid.UUID { return p.id }

func (p Payment) Status() valueobject.PaymentStatus { return p.status }

func (p Payment) MaskedCard() valueobject.MaskedCardNumber { return p.maskedCard }

func (p Payment) ExpiryMonth() int { return p.expiryMonth }

func (p Payment) ExpiryYear() int { return p.expiryYear }

func (p Payment) Currency() string { return p.currency }

func (p Payment) Amount() int { return p.amount }

func (p Payment) DomainEvents() []event.DomainEvent { return p.domainEvents }

// ClearDomainEvents returns the collected domain events and a copy of the
// Payment with events cleared.
func (p Payment) ClearDomainEvents() ([]event.DomainEvent, Payment) {
	evts := p.domainEvents
	p.domainEvents = nil
	return evts, p
}
