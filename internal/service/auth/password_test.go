package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier_HashAndCompare(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier()

	hashed, err := v.Hash("abcdef")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "abcdef", hashed, "the stored value must never be the plaintext")

	assert.NoError(t, v.Compare(hashed, "abcdef"))
	assert.Error(t, v.Compare(hashed, "abcdeg"))
	assert.Error(t, v.Compare(hashed, ""))
}

func TestBcryptVerifier_HashesAreSalted(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier()

	first, err := v.Hash("abcdef")
	require.NoError(t, err)
	second, err := v.Hash("abcdef")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
