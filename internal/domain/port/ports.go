package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/domain/event"
	"github.com/acquiropay/gateway/internal/domain/model"
	"github.com/acquiropay/gateway/internal/domain/valueobject"
)

// PaymentRepository defines persistence operations for finalized payments.
// The pipeline is the sole writer; each identifier is written at most once.
type PaymentRepository interface {
	// Put stores a payment record, keyed by its identifier.
	Put(record model.Payment)
	// TryGet retrieves a payment record by identifier. The second return
	// value reports whether a record exists; absence is not an error.
	TryGet(id uuid.UUID) (model.Payment, bool)
}

// BankRequest is the internal shape of an authorization attempt sent to the
// acquiring bank. It carries the full PAN and CVV and must never be persisted
// or logged.
type BankRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int
	Cvv         string
}

// AcquiringBank is the port for the external bank that decides authorization
// attempts. Authorize resolves every outcome to a status: transport failures,
// exhausted retries, and unparseable responses all map to the None sentinel
// rather than an error.
type AcquiringBank interface {
	Authorize(ctx context.Context, req BankRequest) valueobject.PaymentStatus
}

// CurrencyCodes is the injected whitelist of accepted currency codes.
type CurrencyCodes interface {
	Contains(code string) bool
}

// Clock supplies the current time so that time-dependent rules stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...event.DomainEvent) error
}
