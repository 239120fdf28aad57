package validation

import (
	"fmt"
	"time"
	"unicode"

	"github.com/acquiropay/gateway/internal/application/dto"
	"github.com/acquiropay/gateway/internal/domain/port"
)

const (
	minCardNumberLength = 14
	maxCardNumberLength = 19
	minMonth            = 1
	maxMonth            = 12
	currencyLength      = 3
	minAmount           = 1
	minCvvLength        = 3
	maxCvvLength        = 4
)

// Field keys under which validation failures are reported.
const (
	FieldCardNumber  = "CardNumber"
	FieldExpiryMonth = "ExpiryMonth"
	FieldExpiryDate  = "ExpiryDate"
	FieldCurrency    = "Currency"
	FieldAmount      = "Amount"
	FieldCvv         = "Cvv"
)

// RequestValidator evaluates an incoming payment request against the business
// rules. It is stateless: the reference time is passed per call and the
// currency whitelist is injected, so validation never touches the wall clock
// or ambient configuration.
type RequestValidator struct {
	currencyCodes port.CurrencyCodes
}

func NewRequestValidator(currencyCodes port.CurrencyCodes) *RequestValidator {
	return &RequestValidator{currencyCodes: currencyCodes}
}

// Validate evaluates all rules independently and returns every violation
// keyed by field. An empty map means the request is valid.
func (v *RequestValidator) Validate(req dto.SubmitPaymentRequest, asOf time.Time) map[string]string {
	failures := make(map[string]string)

	switch {
	case req.CardNumber == "":
		failures[FieldCardNumber] = "CardNumber must not be empty."
	case len(req.CardNumber) < minCardNumberLength || len(req.CardNumber) > maxCardNumberLength:
		failures[FieldCardNumber] = fmt.Sprintf("CardNumber must be between %d and %d characters.", minCardNumberLength, maxCardNumberLength)
	case !isDigits(req.CardNumber):
		failures[FieldCardNumber] = "CardNumber must contain numerical characters only."
	}

	if req.ExpiryMonth < minMonth || req.ExpiryMonth > maxMonth {
		failures[FieldExpiryMonth] = fmt.Sprintf("ExpiryMonth must be between %d and %d.", minMonth, maxMonth)
	}

	// The expiry pair is compared by (year, month) only; day-of-month is not
	// considered. Reported under a combined field, separate from the raw
	// month-range rule.
	if !dateIsInFuture(req.ExpiryMonth, req.ExpiryYear, asOf) {
		failures[FieldExpiryDate] = "ExpiryMonth and ExpiryYear must be in the future."
	}

	switch {
	case req.Currency == "":
		failures[FieldCurrency] = "Currency must not be empty."
	case len(req.Currency) != currencyLength:
		failures[FieldCurrency] = fmt.Sprintf("Currency must be %d characters.", currencyLength)
	case !v.currencyCodes.Contains(req.Currency):
		failures[FieldCurrency] = "Currency was not recognised."
	}

	if req.Amount < minAmount {
		failures[FieldAmount] = fmt.Sprintf("Amount must be greater than or equal to %d.", minAmount)
	}

	switch {
	case req.Cvv == "":
		failures[FieldCvv] = "Cvv must not be empty."
	case len(req.Cvv) < minCvvLength || len(req.Cvv) > maxCvvLength:
		failures[FieldCvv] = fmt.Sprintf("Cvv must be between %d and %d characters.", minCvvLength, maxCvvLength)
	case !isDigits(req.Cvv):
		failures[FieldCvv] = "Cvv must contain numerical characters only."
	}

	return failures
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func dateIsInFuture(month, year int, asOf time.Time) bool {
	return year > asOf.Year() || (year == asOf.Year() && month > int(asOf.Month()))
}
