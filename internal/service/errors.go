package service

import "errors"

// Common service-level errors
var (
	// ErrInvalidCredentials indicates a signin attempt with an unknown
	// username or a wrong password. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
