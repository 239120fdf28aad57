package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/application/dto"
	"github.com/acquiropay/gateway/internal/application/usecase"
	"github.com/acquiropay/gateway/internal/observability"
)

// maxRequestBodyBytes caps the payment request body. A valid payment request
// is well under this; anything larger is rejected with 413.
const maxRequestBodyBytes = 256

const (
	undefinedErrorKey           = "Undefined"
	paymentRejectedErrorMessage = "Payment was rejected by the bank."
)

// PaymentSubmitter is the narrow writer capability the handler needs from
// the pipeline.
type PaymentSubmitter interface {
	Execute(ctx context.Context, req dto.SubmitPaymentRequest) (dto.PaymentResponse, error)
}

// PaymentFinder is the narrow reader capability the handler needs from the
// pipeline.
type PaymentFinder interface {
	Execute(ctx context.Context, id uuid.UUID) (dto.PaymentResponse, bool)
}

// PaymentsHandler maps pipeline results to transport-level responses.
type PaymentsHandler struct {
	submitter PaymentSubmitter
	finder    PaymentFinder
	logger    *slog.Logger
}

func NewPaymentsHandler(submitter PaymentSubmitter, finder PaymentFinder, logger *slog.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		submitter: submitter,
		finder:    finder,
		logger:    logger,
	}
}

// RegisterRoutes registers the payment routes on the provided mux.
func (h *PaymentsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payments", h.SubmitPayment)
	mux.HandleFunc("GET /api/payments/{id}", h.GetPayment)
}

// SubmitPayment handles POST /api/payments.
func (h *PaymentsHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req dto.SubmitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeProblem(w, http.StatusRequestEntityTooLarge, "Request body too large.", nil)
			return
		}
		writeProblem(w, http.StatusBadRequest, "The request body could not be parsed.", nil)
		return
	}

	resp, err := h.submitter.Execute(r.Context(), req)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			observability.PaymentOutcomes.WithLabelValues("validation_failed").Inc()
			writeProblem(w, http.StatusBadRequest, "One or more validation errors occurred.", validationErr.Fields)
		case errors.Is(err, usecase.ErrPaymentRejected):
			observability.PaymentOutcomes.WithLabelValues("rejected").Inc()
			writeProblem(w, http.StatusBadRequest, "One or more validation errors occurred.", map[string]string{
				undefinedErrorKey: paymentRejectedErrorMessage,
			})
		default:
			observability.PaymentOutcomes.WithLabelValues("internal_error").Inc()
			writeProblem(w, http.StatusInternalServerError, "Internal server error", nil)
		}
		return
	}

	observability.PaymentOutcomes.WithLabelValues(resp.Status).Inc()
	writeJSON(w, http.StatusOK, resp)
}

// GetPayment handles GET /api/payments/{id}. A malformed identifier is
// indistinguishable from an unknown one: both are 404.
func (h *PaymentsHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Payment not found.", nil)
		return
	}

	resp, found := h.finder.Execute(r.Context(), id)
	if !found {
		writeProblem(w, http.StatusNotFound, "Payment not found.", nil)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// problemResponse is the RFC 7807 style error body.
type problemResponse struct {
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title string, fieldErrors map[string]string) {
	writeJSON(w, status, problemResponse{
		Title:  title,
		Status: status,
		Errors: fieldErrors,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
