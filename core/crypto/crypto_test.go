package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

func TestNew(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = New("too-short")
	assert.ErrorIs(t, err, ErrInvalidKey)

	e, err := New(testKey)
	require.NoError(t, err)
	assert.Zero(t, e.TTL())
}

func TestEncryptDecrypt(t *testing.T) {
	e, err := New(testKey)
	require.NoError(t, err)

	for _, plain := range []string{"s3cret", "", "ünïcødé ✓"} {
		tok, err := e.Encrypt(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, tok)

		got, err := e.Decrypt(tok)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}

	tok1, _ := e.Encrypt("same")
	tok2, _ := e.Encrypt("same")
	assert.NotEqual(t, tok1, tok2, "tokens carry a random IV")
}

func TestDecrypt_Rejects(t *testing.T) {
	e, err := New(testKey)
	require.NoError(t, err)

	otherKey, err := GenerateKey()
	require.NoError(t, err)
	other, err := New(otherKey)
	require.NoError(t, err)

	tok, err := other.Encrypt("payload")
	require.NoError(t, err)

	_, err = e.Decrypt(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = e.Decrypt("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	mine, err := e.Encrypt("payload")
	require.NoError(t, err)
	tampered := []byte(mine)
	tampered[len(tampered)/2] ^= 1
	_, err = e.Decrypt(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestKeyRotation(t *testing.T) {
	newKey, err := GenerateKey()
	require.NoError(t, err)

	old, err := New(testKey)
	require.NoError(t, err)
	rotated, err := New(newKey + ", " + testKey)
	require.NoError(t, err)

	tok, err := old.Encrypt("legacy")
	require.NoError(t, err)
	got, err := rotated.Decrypt(tok)
	require.NoError(t, err)
	assert.Equal(t, "legacy", got)

	tok, err = rotated.Encrypt("fresh")
	require.NoError(t, err)
	_, err = old.Decrypt(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTTL(t *testing.T) {
	e, err := New(testKey)
	require.NoError(t, err)

	tok, err := e.Encrypt("short lived")
	require.NoError(t, err)

	got, err := e.WithTTL(time.Hour).Decrypt(tok)
	require.NoError(t, err)
	assert.Equal(t, "short lived", got)
	assert.Equal(t, time.Hour, e.WithTTL(time.Hour).TTL())
	assert.Zero(t, e.TTL(), "WithTTL copies")
}
