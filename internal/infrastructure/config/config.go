package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort  int
	Bank      BankConfig
	RateLimit RateLimitConfig
	Currency  CurrencyConfig
	Kafka     KafkaConfig
	LogLevel  string
	LogFormat string
}

type BankConfig struct {
	BaseURL        string
	TimeoutSeconds int
	MaxRetries     int
	BaseDelayMs    int
}

type RateLimitConfig struct {
	PermitLimit   int
	WindowSeconds int
}

type CurrencyConfig struct {
	Codes []string
}

type KafkaConfig struct {
	Brokers []string // empty disables event publishing
}

// Validate checks required configuration values.
func (c Config) Validate() {
	if c.Bank.BaseURL == "" {
		panic("BANK_BASE_URL environment variable is required")
	}
	if c.Bank.TimeoutSeconds <= 0 {
		panic("BANK_TIMEOUT_SECONDS must be greater than 0")
	}
	if c.Bank.MaxRetries < 0 {
		panic("BANK_MAX_RETRIES must be greater than or equal to 0")
	}
	if c.Bank.BaseDelayMs <= 0 {
		panic("BANK_BASE_DELAY_MS must be greater than 0")
	}
	if len(c.Currency.Codes) == 0 {
		panic("CURRENCY_CODES must contain at least one entry")
	}
	if c.RateLimit.PermitLimit <= 0 {
		panic("RATE_LIMIT_PERMITS must be greater than 0")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		panic("RATE_LIMIT_WINDOW_SECONDS must be greater than 0")
	}
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		Bank: BankConfig{
			BaseURL:        getEnv("BANK_BASE_URL", "http://localhost:8081"),
			TimeoutSeconds: getEnvInt("BANK_TIMEOUT_SECONDS", 30),
			MaxRetries:     getEnvInt("BANK_MAX_RETRIES", 3),
			BaseDelayMs:    getEnvInt("BANK_BASE_DELAY_MS", 200),
		},
		RateLimit: RateLimitConfig{
			PermitLimit:   getEnvInt("RATE_LIMIT_PERMITS", 100),
			WindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 1),
		},
		Currency: CurrencyConfig{
			Codes: getEnvList("CURRENCY_CODES", []string{"USD", "EUR", "GBP"}),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvList("KAFKA_BROKERS", nil),
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
