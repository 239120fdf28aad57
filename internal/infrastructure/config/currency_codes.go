package config

import "github.com/acquiropay/gateway/internal/domain/port"

// Compile-time interface check.
var _ port.CurrencyCodes = (*CurrencyCodesStore)(nil)

// CurrencyCodesStore is the config-derived whitelist of accepted currency
// codes.
type CurrencyCodesStore struct {
	codes map[string]struct{}
}

// NewCurrencyCodesStore builds the whitelist from the configured code list.
func NewCurrencyCodesStore(cfg CurrencyConfig) *CurrencyCodesStore {
	codes := make(map[string]struct{}, len(cfg.Codes))
	for _, c := range cfg.Codes {
		codes[c] = struct{}{}
	}
	return &CurrencyCodesStore{codes: codes}
}

// Contains reports whether the code is an accepted currency.
func (s *CurrencyCodesStore) Contains(code string) bool {
	_, ok := s.codes[code]
	return ok
}
