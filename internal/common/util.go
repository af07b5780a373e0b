package common

import (
	"net/mail"
	"strings"
)

// NormalizeEmail is the comparison key for emails: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail reports whether a and b name the same account.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}

// ValidateEmail accepts a bare address such as "owner@site.com".
// Display-name forms like "Owner <owner@site.com>" are rejected.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// WipeByteArray overwrites b with zeros. Used for passwords read from
// the terminal. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
