package bank_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/acquiropay/gateway/internal/domain/port"
	"github.com/acquiropay/gateway/internal/domain/valueobject"
	"github.com/acquiropay/gateway/internal/infrastructure/bank"
)

func newClient(t *testing.T, baseURL string) *bank.Client {
	t.Helper()
	return bank.NewClient(bank.Config{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
	}, slog.New(slog.DiscardHandler))
}

func bankRequestFixture() port.BankRequest {
	return port.BankRequest{
		CardNumber:  "11111111111111",
		ExpiryMonth: 4,
		ExpiryYear:  2030,
		Currency:    "GBP",
		Amount:      100,
		Cvv:         "123",
	}
}

func TestAuthorize_Authorized(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"authorized":         true,
			"authorization_code": uuid.New().String(),
		})
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusAuthorized, status)
	assert.Equal(t, "11111111111111", received["card_number"])
	assert.Equal(t, "04/2030", received["expiry_date"])
	assert.Equal(t, "GBP", received["currency"])
	assert.Equal(t, float64(100), received["amount"])
	assert.Equal(t, "123", received["cvv"])
}

func TestAuthorize_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"authorized": false})
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusDeclined, status)
}

func TestAuthorize_BadRequestIsRejectedWithoutRetry(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusRejected, status)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestAuthorize_ServerErrorThenSuccessIsRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"authorized": true})
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusAuthorized, status)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestAuthorize_RequestTimeoutStatusIsRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusRequestTimeout)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"authorized": false})
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusDeclined, status)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestAuthorize_RetriesExhausted(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusNone, status)
	// Initial attempt plus MaxRetries.
	assert.Equal(t, int32(4), attempts.Load())
}

func TestAuthorize_UnexpectedStatusIsPermanent(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusNone, status)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestAuthorize_UnparseableBodyIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusNone, status)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestAuthorize_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connections now refused

	status := newClient(t, server.URL).Authorize(context.Background(), bankRequestFixture())

	assert.Equal(t, valueobject.StatusNone, status)
}

func TestAuthorize_ContextCancellationStopsRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := bank.NewClient(bank.Config{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: 10,
		BaseDelay:  time.Hour, // cancellation must interrupt the pending delay
	}, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	status := client.Authorize(ctx, bankRequestFixture())

	assert.Equal(t, valueobject.StatusNone, status)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int32(1), attempts.Load())
}
