// Package secret encrypts small secrets (the feed API key) at rest using
// fernet tokens. With no key configured, values pass through unchanged so
// local development works without setup.
package secret

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Codec encrypts and decrypts strings with a fernet key.
type Codec struct {
	key *fernet.Key
}

// NewCodec builds a Codec from a base64 fernet key. An empty key yields a
// pass-through codec.
func NewCodec(encodedKey string) (*Codec, error) {
	if encodedKey == "" {
		return &Codec{}, nil
	}
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &Codec{key: key}, nil
}

// Encrypt returns the fernet token for value, or value itself when no key is
// configured.
func (c *Codec) Encrypt(value string) (string, error) {
	if c.key == nil {
		return value, nil
	}
	token, err := fernet.EncryptAndSign([]byte(value), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(token), nil
}

// Decrypt reverses Encrypt. Tokens do not expire; the stored key stays valid
// until replaced.
func (c *Codec) Decrypt(token string) (string, error) {
	if c.key == nil {
		return token, nil
	}
	value := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{c.key})
	if value == nil {
		return "", fmt.Errorf("failed to decrypt value: invalid token")
	}
	return string(value), nil
}
