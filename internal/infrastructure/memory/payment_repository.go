package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/domain/model"
	"github.com/acquiropay/gateway/internal/domain/port"
)

// Compile-time interface check.
var _ port.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository is the in-memory, process-local store of finalized
// payment records. Records are written once and read many times under
// disjoint keys, which is the sync.Map fast path; per-key operations are
// atomic without a global lock. No eviction, no expiry, no durability
// across restarts.
type PaymentRepository struct {
	payments sync.Map // uuid.UUID -> model.Payment
}

// NewPaymentRepository creates an empty repository. Construct one per
// process (or per test) and pass it explicitly; there is no hidden
// singleton.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// Put stores a record keyed by its identifier. Last write wins; in practice
// each identifier is written at most once.
func (r *PaymentRepository) Put(record model.Payment) {
	r.payments.Store(record.ID(), record)
}

// TryGet retrieves a record by identifier.
func (r *PaymentRepository) TryGet(id uuid.UUID) (model.Payment, bool) {
	v, ok := r.payments.Load(id)
	if !ok {
		return model.Payment{}, false
	}
	return v.(model.Payment), true
}
