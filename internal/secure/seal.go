// Package secure wraps widget payloads in an authenticated encryption
// envelope for deployments that configure a shared encryption key.
package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Scheme names the only encryption scheme this package implements.
const Scheme = "aes-256-gcm"

// Envelope is the sealed response structure served in place of the
// plaintext widget JSON. The GCM tag rides at the end of Ciphertext, so the
// whole structure is integrity-checkable.
type Envelope struct {
	Scheme     string `json:"scheme"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// Sealer encrypts and decrypts widget payloads with a key derived once from
// the configured passphrase. Safe for concurrent use.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a 256-bit key from the passphrase with SHA-256 and
// prepares the AEAD. Passphrases of any length are accepted.
func NewSealer(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, errors.New("secure: empty encryption key")
	}
	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("secure: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("secure: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random nonce.
func (s *Sealer) Seal(plaintext []byte) (*Envelope, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("secure: nonce: %w", err)
	}
	ciphertext := s.aead.Seal(nil, nonce, plaintext, nil)
	return &Envelope{
		Scheme:     Scheme,
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Open verifies and decrypts a sealed envelope.
func (s *Sealer) Open(env *Envelope) ([]byte, error) {
	if env.Scheme != Scheme {
		return nil, fmt.Errorf("secure: unsupported scheme %q", env.Scheme)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("secure: nonce: %w", err)
	}
	if len(nonce) != s.aead.NonceSize() {
		return nil, errors.New("secure: bad nonce length")
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("secure: ciphertext: %w", err)
	}
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("secure: integrity check failed: %w", err)
	}
	return plaintext, nil
}
