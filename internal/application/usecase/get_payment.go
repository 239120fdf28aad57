package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/application/dto"
	"github.com/acquiropay/gateway/internal/domain/port"
)

// GetPayment serves point lookups of finalized payment records.
type GetPayment struct {
	repo port.PaymentRepository
}

func NewGetPayment(repo port.PaymentRepository) *GetPayment {
	return &GetPayment{repo: repo}
}

// Execute looks up a payment by identifier. Absence is reported through the
// boolean, not an error: no record for an id is an expected outcome.
func (uc *GetPayment) Execute(_ context.Context, id uuid.UUID) (dto.PaymentResponse, bool) {
	record, ok := uc.repo.TryGet(id)
	if !ok {
		return dto.PaymentResponse{}, false
	}
	return toPaymentResponse(record), true
}
