package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("username cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The minimum matches the signup contract; the
// maximum is bcrypt's practical input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User represents a registered author. The username is an email-shaped
// string and is unique across the store. The ID is assigned by the store
// on creation and is immutable afterwards.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name,omitempty"`
	Password       string    `json:"-"` // Plaintext, held only between signup and hashing
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, display name and
// password and sets the creation/update timestamps. The ID is left zero
// until the store assigns one. Returns an error if validation fails.
//
// NOTE: the plaintext password is carried only so the caller can hash it;
// it must never reach the store.
func NewUser(username, name, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:  username,
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Username) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else {
		// Users loaded from the store carry only the hash.
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateEmailFormat performs basic validation of email format: a single
// non-leading, non-trailing @ followed by a domain containing an interior
// dot. Deliberately loose; the store's uniqueness constraint is the real
// gatekeeper.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
