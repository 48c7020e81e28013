package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/hkdf"
)

// Codec is the pluggable encode/decode capability applied to every
// record before it reaches disk. Decode failures are treated by callers
// as "no data", never as fatal corruption.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// ErrDecode wraps any decode failure so callers can fall back to a
// default value in one place.
var ErrDecode = errors.New("store: decode failed")

// jsonCodec serializes to plain JSON. Used in tests and as the inner
// layer of the sealed codec.
type jsonCodec struct{}

// NewJSONCodec returns a Codec without encryption.
func NewJSONCodec() Codec { return jsonCodec{} }

func (jsonCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// sealedCodec is JSON wrapped in AES-256-GCM. The nonce is prepended to
// the ciphertext.
type sealedCodec struct {
	aead cipher.AEAD
}

// NewSealedCodec derives a 32-byte AES key from the given secret with
// HKDF-SHA256 and returns an encrypting Codec.
func NewSealedCodec(secret []byte) (Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("store: empty codec secret")
	}
	key := make([]byte, 32)
	h := hkdf.New(sha256.New, secret, nil, []byte("notepad-records"))
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, fmt.Errorf("store: derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("store: cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("store: gcm: %w", err)
	}
	return &sealedCodec{aead: aead}, nil
}

func (c *sealedCodec) Encode(v any) ([]byte, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return c.aead.Seal(nonce, nonce, plain, nil), nil
}

func (c *sealedCodec) Decode(data []byte, v any) error {
	if len(data) < c.aead.NonceSize() {
		return fmt.Errorf("%w: short ciphertext", ErrDecode)
	}
	nonce, ciphertext := data[:c.aead.NonceSize()], data[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(plain, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// LoadOrCreateSecret reads the codec secret from path, generating and
// persisting a fresh random one on first use.
func LoadOrCreateSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil && len(secret) > 0 {
		return secret, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: read secret: %w", err)
	}
	secret = make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("store: write secret: %w", err)
	}
	return secret, nil
}
