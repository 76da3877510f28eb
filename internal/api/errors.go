package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/devhussain7/medium-api/internal/domain"
	"github.com/devhussain7/medium-api/internal/service"
	"github.com/devhussain7/medium-api/internal/service/auth"
	"github.com/devhussain7/medium-api/internal/store"
)

// Stable error codes returned in response bodies. Each failure kind maps to
// exactly one (status, code) pair.
const (
	CodeValidationFailed   = "validation_failed"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeUsernameExists     = "username_exists"
	CodePostNotFound       = "post_not_found"
	CodeUserNotFound       = "user_not_found"
	CodeInternalError      = "internal_error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, ErrInvalidPathID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToCode returns the stable machine-readable code for an error.
func MapErrorToCode(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return CodeUnauthorized
	case errors.Is(err, store.ErrUsernameExists):
		return CodeUsernameExists
	case errors.Is(err, store.ErrPostNotFound):
		return CodePostNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, ErrInvalidPathID),
		isDomainValidationError(err):
		return CodeValidationFailed
	default:
		return CodeInternalError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, ErrInvalidPathID):
		return "Invalid id"

	case isDomainValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// isDomainValidationError reports whether err is one of the domain
// validation sentinels. Their messages are already user-facing.
func isDomainValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrPasswordTooShort) ||
		errors.Is(err, domain.ErrPasswordTooLong) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrEmptyAuthorID)
}

// SanitizeValidationError removes sensitive details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'SignupRequest.Username' Error:Field validation
	// for 'Username' failed on the 'email' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
