package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/application/dto"
	"github.com/acquiropay/gateway/internal/application/validation"
	"github.com/acquiropay/gateway/internal/domain/model"
	"github.com/acquiropay/gateway/internal/domain/port"
	"github.com/acquiropay/gateway/internal/domain/valueobject"
)

const TopicPayments = "acquiropay.payments"

// SubmitPayment orchestrates one authorization attempt: validation, the bank
// call, status resolution, conditional persistence, and response shaping.
// Each invocation is independent; the store is the only shared state.
type SubmitPayment struct {
	validator *validation.RequestValidator
	bank      port.AcquiringBank
	repo      port.PaymentRepository
	publisher port.EventPublisher
	clock     port.Clock
	logger    *slog.Logger
}

func NewSubmitPayment(
	validator *validation.RequestValidator,
	bank port.AcquiringBank,
	repo port.PaymentRepository,
	publisher port.EventPublisher,
	clock port.Clock,
	logger *slog.Logger,
) *SubmitPayment {
	return &SubmitPayment{
		validator: validator,
		bank:      bank,
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Execute runs the pipeline for a single attempt. Outcomes:
//   - field-level violations: *ValidationError, the bank is never called;
//   - bank could not decide (transport failure, exhausted retries,
//     unparseable body): ErrInternal, nothing persisted;
//   - bank rejected the submission itself: ErrPaymentRejected, nothing
//     persisted;
//   - AUTHORIZED or DECLINED: the record is stored under a freshly generated
//     identifier and returned.
func (uc *SubmitPayment) Execute(ctx context.Context, req dto.SubmitPaymentRequest) (dto.PaymentResponse, error) {
	if failures := uc.validator.Validate(req, uc.clock.Now().UTC()); len(failures) > 0 {
		return dto.PaymentResponse{}, &ValidationError{Fields: failures}
	}

	paymentID := uuid.New()

	status := uc.bank.Authorize(ctx, port.BankRequest{
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		Cvv:         req.Cvv,
	})

	if status.IsZero() {
		return dto.PaymentResponse{}, ErrInternal
	}

	if status == valueobject.StatusRejected {
		masked, _ := valueobject.NewMaskedCardNumber(req.CardNumber)
		uc.logger.Warn("payment rejected by bank",
			"payment_id", paymentID,
			"card_number", masked.String(),
			"currency", req.Currency,
			"amount", req.Amount,
		)
		return dto.PaymentResponse{}, ErrPaymentRejected
	}

	record, err := model.NewPayment(paymentID, status, req.CardNumber, req.ExpiryMonth, req.ExpiryYear, req.Currency, req.Amount)
	if err != nil {
		masked, _ := valueobject.NewMaskedCardNumber(req.CardNumber)
		uc.logger.Error("failed to build payment record",
			"payment_id", paymentID,
			"card_number", masked.String(),
			"error", err,
		)
		return dto.PaymentResponse{}, ErrInternal
	}

	evts, record := record.ClearDomainEvents()
	uc.repo.Put(record)

	// Publishing is best-effort: the record is already committed and the
	// caller-visible outcome must not depend on the broker.
	if len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, TopicPayments, evts...); err != nil {
			uc.logger.Warn("failed to publish payment events",
				"payment_id", paymentID,
				"error", err,
			)
		}
	}

	return toPaymentResponse(record), nil
}

func toPaymentResponse(record model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:                 record.ID(),
		Status:             record.Status().String(),
		CardNumberLastFour: record.MaskedCard().LastFour(),
		ExpiryMonth:        record.ExpiryMonth(),
		ExpiryYear:         record.ExpiryYear(),
		Currency:           record.Currency(),
		Amount:             record.Amount(),
	}
}
