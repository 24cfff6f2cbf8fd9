package crypto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
)

var (
	// ErrMissingKey is returned by New when no key is configured.
	ErrMissingKey = errors.New("encryption key is not configured")
	// ErrInvalidKey is returned by New for keys that are not 32 url-safe base64 bytes.
	ErrInvalidKey = errors.New("invalid encryption key")
	// ErrInvalidToken is returned by Decrypt for tampered, foreign or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Encryptor encrypts and decrypts strings as Fernet tokens.
// It is safe for concurrent use.
type Encryptor struct {
	keys []*fernet.Key
	ttl  time.Duration
}

// New parses key, a url-safe base64 Fernet key. A comma-separated list
// rotates keys: the first encrypts, any of them decrypts.
func New(key string) (*Encryptor, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrMissingKey
	}

	var keys []*fernet.Key
	for _, raw := range strings.Split(key, ",") {
		k, err := fernet.DecodeKey(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		keys = append(keys, k)
	}
	return &Encryptor{keys: keys}, nil
}

// WithTTL returns a copy that rejects tokens older than ttl. Zero disables expiry.
func (e *Encryptor) WithTTL(ttl time.Duration) *Encryptor {
	cp := *e
	cp.ttl = ttl
	return &cp
}

// TTL returns the maximum token age accepted by Decrypt, zero when unlimited.
func (e *Encryptor) TTL() time.Duration {
	return e.ttl
}

// Encrypt returns plaintext as a token string.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	return e.EncryptBytes([]byte(plaintext))
}

// EncryptBytes returns plaintext as a token string.
func (e *Encryptor) EncryptBytes(plaintext []byte) (string, error) {
	tok, err := fernet.EncryptAndSign(plaintext, e.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}
	return string(tok), nil
}

// Decrypt returns the plaintext of token.
func (e *Encryptor) Decrypt(token string) (string, error) {
	ttl := e.ttl
	if ttl <= 0 {
		ttl = -1
	}
	msg := fernet.VerifyAndDecrypt([]byte(strings.TrimSpace(token)), ttl, e.keys)
	if msg == nil {
		return "", ErrInvalidToken
	}
	return string(msg), nil
}

// GenerateKey returns a new random key in the encoding New accepts.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return k.Encode(), nil
}
