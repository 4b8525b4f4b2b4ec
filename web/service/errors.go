package service

import "errors"

// Recoverable outcomes of the authentication paths. Anything else returned
// by a service is a storage failure and propagates unmodified.
var (
	// ErrAuthenticationFailed covers both an unknown username and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	// ErrDuplicateUsername signals a registration conflict.
	ErrDuplicateUsername = errors.New("username is already taken")
)
