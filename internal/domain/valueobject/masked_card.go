package valueobject

import "strings"

const lastFourLength = 4

// MaskedCardNumber holds the only card-number fragment that may ever be
// logged, persisted, or returned: the last four characters. The full PAN
// never leaves the request that carried it.
// This is an immutable value object.
type MaskedCardNumber struct {
	lastFour string
}

// NewMaskedCardNumber derives a display-safe representation from a raw card
// number. ok is false when the input is blank or shorter than four
// characters; callers must branch on it before using the value.
func NewMaskedCardNumber(cardNumber string) (MaskedCardNumber, bool) {
	if strings.TrimSpace(cardNumber) == "" || len(cardNumber) < lastFourLength {
		return MaskedCardNumber{}, false
	}
	return MaskedCardNumber{lastFour: cardNumber[len(cardNumber)-lastFourLength:]}, true
}

// LastFour returns the last four characters of the card number.
func (m MaskedCardNumber) LastFour() string {
	return m.lastFour
}

// String returns a masked representation like **** **** **** 1234.
func (m MaskedCardNumber) String() string {
	return "**** **** **** " + m.lastFour
}
