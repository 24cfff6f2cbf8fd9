package crypto

import "time"

// Config holds configuration for value encryption.
type Config struct {
	// Key is a url-safe base64 Fernet key, or a comma-separated list when rotating.
	Key string `mapstructure:"key" default:""`
	// TTLSeconds rejects older tokens on decrypt; 0 accepts any age.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"0"`
}

// FromConfig builds an Encryptor from cfg.
func FromConfig(cfg Config) (*Encryptor, error) {
	e, err := New(cfg.Key)
	if err != nil {
		return nil, err
	}
	if cfg.TTLSeconds > 0 {
		e = e.WithTTL(time.Duration(cfg.TTLSeconds) * time.Second)
	}
	return e, nil
}
