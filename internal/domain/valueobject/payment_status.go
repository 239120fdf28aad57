package valueobject

import "fmt"

// PaymentStatus is the terminal outcome of an authorization attempt.
type PaymentStatus struct {
	value string
}

var (
	// StatusNone is the sentinel for an attempt whose outcome could not be
	// determined. It is never persisted and never returned to a caller.
	StatusNone       = PaymentStatus{}
	StatusAuthorized = PaymentStatus{"AUTHORIZED"}
	StatusDeclined   = PaymentStatus{"DECLINED"}
	StatusRejected   = PaymentStatus{"REJECTED"}
)

var validStatuses = map[string]PaymentStatus{
	"AUTHORIZED": StatusAuthorized,
	"DECLINED":   StatusDeclined,
	"REJECTED":   StatusRejected,
}

// NewPaymentStatus validates and creates a PaymentStatus from a string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	if status, ok := validStatuses[s]; ok {
		return status, nil
	}
	return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
}

// String returns the string representation of the payment status.
func (s PaymentStatus) String() string {
	return s.value
}

// IsFinal returns true for the outcomes that produce a retrievable record
// (AUTHORIZED or DECLINED). REJECTED and the None sentinel leave no trace.
func (s PaymentStatus) IsFinal() bool {
	return s == StatusAuthorized || s == StatusDeclined
}

// IsZero returns true if the status is the undetermined sentinel.
func (s PaymentStatus) IsZero() bool {
	return s.value == ""
}
