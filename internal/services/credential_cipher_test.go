package services

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) [32]byte {
	t.Helper()
	var key [32]byte
	_, err := rand.Read(key[:])
	require.NoError(t, err)
	return key
}

func TestSecretboxCipher_RoundTrip(t *testing.T) {
	cipher := NewSecretboxCipher(newTestKey(t))

	sealed, err := cipher.Seal([]byte("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "payload")

	opened, err := cipher.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.payload.sig", string(opened))
}

func TestSecretboxCipher_FreshNoncePerSeal(t *testing.T) {
	cipher := NewSecretboxCipher(newTestKey(t))

	first, err := cipher.Seal([]byte("T1"))
	require.NoError(t, err)
	second, err := cipher.Seal([]byte("T1"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSecretboxCipher_WrongKey(t *testing.T) {
	sealed, err := NewSecretboxCipher(newTestKey(t)).Seal([]byte("T1"))
	require.NoError(t, err)

	_, err = NewSecretboxCipher(newTestKey(t)).Open(sealed)
	assert.ErrorIs(t, err, ErrCredentialCorrupt)
}

func TestSecretboxCipher_Tampered(t *testing.T) {
	cipher := NewSecretboxCipher(newTestKey(t))
	sealed, err := cipher.Seal([]byte("T1"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = cipher.Open(sealed)
	assert.ErrorIs(t, err, ErrCredentialCorrupt)
}

func TestSecretboxCipher_Truncated(t *testing.T) {
	cipher := NewSecretboxCipher(newTestKey(t))

	_, err := cipher.Open([]byte("short"))
	assert.ErrorIs(t, err, ErrCredentialCorrupt)

	_, err = cipher.Open(nil)
	assert.ErrorIs(t, err, ErrCredentialCorrupt)
}
