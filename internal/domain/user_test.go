package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "a@b.com", password: "abcdef"},
		{name: "valid with subdomain", username: "user@mail.example.org", password: "longer-password"},
		{name: "empty username", username: "", password: "abcdef", wantErr: ErrEmptyEmail},
		{name: "no at sign", username: "not-an-email", password: "abcdef", wantErr: ErrInvalidEmail},
		{name: "missing domain dot", username: "a@bcom", password: "abcdef", wantErr: ErrInvalidEmail},
		{name: "trailing at", username: "a@", password: "abcdef", wantErr: ErrInvalidEmail},
		{name: "password too short", username: "a@b.com", password: "abcde", wantErr: ErrPasswordTooShort},
		{name: "empty password", username: "a@b.com", password: "", wantErr: ErrEmptyPassword},
		{
			name:     "password too long",
			username: "a@b.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.username, "Some Name", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.Equal(t, "Some Name", user.Name)
			assert.Zero(t, user.ID, "the store assigns ids, not the constructor")
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidate_StoredUserNeedsHash(t *testing.T) {
	t.Parallel()

	user := &User{Username: "a@b.com"}
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)

	user.HashedPassword = "some-hash"
	assert.NoError(t, user.Validate())
}
