// Package common defines sentinel errors and small helpers shared by the
// portal client layers. Callers should use errors.Is to match the errors.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Login protocol outcomes.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrLoginInProgress    = errors.New("login already in progress")

	// Session gate.
	ErrNoSession = errors.New("not logged in")
	ErrForbidden = errors.New("forbidden")

	// Validation errors surfaced to the user.
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPassword       = errors.New("password must not be empty")
	ErrAlreadyRegistered   = errors.New("an admin with this email already exists")
	ErrLastAdmin           = errors.New("cannot remove the last admin")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
