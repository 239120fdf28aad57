package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/acquiropay/gateway/internal/domain/port"
	"github.com/acquiropay/gateway/internal/domain/valueobject"
	"github.com/acquiropay/gateway/internal/observability"
)

// Compile-time interface check.
var _ port.AcquiringBank = (*Client)(nil)

// Config holds the bank client configuration. Timeout bounds a single
// attempt; MaxRetries and BaseDelay shape the backoff policy across attempts.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries uint64
	BaseDelay  time.Duration
}

// Client implements port.AcquiringBank against the acquiring bank's HTTP API.
//
// One logical authorization runs under a resilience policy: transport
// failures and 5xx/408 responses are retried with exponential backoff and
// jitter, everything else short-circuits. The caller's context interrupts
// both in-flight requests and pending backoff delays.
type Client struct {
	baseURL    string
	maxRetries uint64
	baseDelay  time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a bank client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// bankRequest is the bank's wire shape for an authorization attempt.
type bankRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int    `json:"amount"`
	Cvv        string `json:"cvv"`
}

// bankResponse is the bank's 2xx response body.
type bankResponse struct {
	Authorized        bool      `json:"authorized"`
	AuthorizationCode uuid.UUID `json:"authorization_code"`
}

// Authorize sends one logical authorization to the bank and maps the outcome
// to a payment status. Every failure mode resolves to a status rather than an
// error: a bank-level 400 is REJECTED, an undecidable attempt (retries
// exhausted, unparseable body, transport fault, cancellation) is the None
// sentinel.
func (c *Client) Authorize(ctx context.Context, req port.BankRequest) valueobject.PaymentStatus {
	masked, _ := valueobject.NewMaskedCardNumber(req.CardNumber)

	payload, err := json.Marshal(bankRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%d", req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		Cvv:        req.Cvv,
	})
	if err != nil {
		c.logger.Error("failed to encode bank request",
			"card_number", masked.String(),
			"error", err,
		)
		return valueobject.StatusNone
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.baseDelay
	policy.MaxElapsedTime = 0 // attempts are bounded by count and context, not wall time

	status, err := backoff.RetryWithData(
		func() (valueobject.PaymentStatus, error) {
			return c.attempt(ctx, payload, masked)
		},
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx),
	)
	if err != nil {
		c.logger.Error("bank authorization attempt failed",
			"card_number", masked.String(),
			"error", err,
		)
		return valueobject.StatusNone
	}
	return status
}

// attempt performs a single HTTP call. Returning a plain error marks the
// attempt retryable; backoff.Permanent stops the policy immediately.
func (c *Client) attempt(ctx context.Context, payload []byte, masked valueobject.MaskedCardNumber) (valueobject.PaymentStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(payload))
	if err != nil {
		return valueobject.StatusNone, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return valueobject.StatusNone, fmt.Errorf("bank request failed: %w", err)
	}
	defer resp.Body.Close()

	// The bank refused the submission itself (e.g. malformed card).
	// Not retryable and not an internal failure.
	if resp.StatusCode == http.StatusBadRequest {
		return valueobject.StatusRejected, nil
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusRequestTimeout {
		return valueobject.StatusNone, fmt.Errorf("bank responded with status %d", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return valueobject.StatusNone, backoff.Permanent(fmt.Errorf("bank responded with status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return valueobject.StatusNone, fmt.Errorf("failed to read bank response: %w", err)
	}

	var bankResp bankResponse
	if err := json.Unmarshal(body, &bankResp); err != nil {
		observability.BankUnparseableResponses.Inc()
		c.logger.Warn("bank response could not be decoded",
			"card_number", masked.String(),
			"status_code", resp.StatusCode,
			"error", err,
		)
		return valueobject.StatusNone, nil
	}

	if bankResp.Authorized {
		return valueobject.StatusAuthorized, nil
	}
	return valueobject.StatusDeclined, nil
}
