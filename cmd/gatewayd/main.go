package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/acquiropay/gateway/internal/application/usecase"
	"github.com/acquiropay/gateway/internal/application/validation"
	"github.com/acquiropay/gateway/internal/domain/port"
	"github.com/acquiropay/gateway/internal/infrastructure/bank"
	"github.com/acquiropay/gateway/internal/infrastructure/clock"
	"github.com/acquiropay/gateway/internal/infrastructure/config"
	"github.com/acquiropay/gateway/internal/infrastructure/memory"
	"github.com/acquiropay/gateway/internal/infrastructure/messaging"
	"github.com/acquiropay/gateway/internal/observability"
	"github.com/acquiropay/gateway/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load and validate configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting payment-gateway",
		"http_port", cfg.HTTPPort,
		"bank_base_url", cfg.Bank.BaseURL,
	)

	// Event publisher: Kafka when brokers are configured, noop otherwise.
	var publisher port.EventPublisher = messaging.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := messaging.NewKafkaPublisher(cfg.Kafka.Brokers)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Wire dependencies (DI via constructors).
	repo := memory.NewPaymentRepository()
	currencyCodes := config.NewCurrencyCodesStore(cfg.Currency)
	validator := validation.NewRequestValidator(currencyCodes)
	bankClient := bank.NewClient(bank.Config{
		BaseURL:    cfg.Bank.BaseURL,
		Timeout:    time.Duration(cfg.Bank.TimeoutSeconds) * time.Second,
		MaxRetries: uint64(cfg.Bank.MaxRetries),
		BaseDelay:  time.Duration(cfg.Bank.BaseDelayMs) * time.Millisecond,
	}, logger)

	// Use cases.
	submitPaymentUC := usecase.NewSubmitPayment(validator, bankClient, repo, publisher, clock.System{}, logger)
	getPaymentUC := usecase.NewGetPayment(repo)

	// HTTP server.
	mux := http.NewServeMux()
	paymentsHandler := rest.NewPaymentsHandler(submitPaymentUC, getPaymentUC, logger)
	paymentsHandler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", rest.LivenessHandler())
	mux.Handle("GET /metrics", observability.MetricsHandler())

	var handler http.Handler = mux
	handler = rest.RateLimit(cfg.RateLimit.PermitLimit, cfg.RateLimit.WindowSeconds)(handler)
	handler = rest.Metrics()(handler)
	handler = rest.RequestLogger(logger)(handler)
	handler = rest.Recover(logger)(handler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: handler,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("payment-gateway stopped")
}
