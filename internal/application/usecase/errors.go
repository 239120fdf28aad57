package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrPaymentRejected indicates the bank itself refused the submission
// (bank-level 400). Distinct from validation failure and from internal
// error so callers can disambiguate the two.
var ErrPaymentRejected = errors.New("payment was rejected by the bank")

// ErrInternal masks all underlying causes of a failed attempt. Diagnostic
// context is logged internally; nothing crosses the boundary.
var ErrInternal = errors.New("internal server error")

// ValidationError carries field-level rule violations. The request never
// reached the bank or the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
