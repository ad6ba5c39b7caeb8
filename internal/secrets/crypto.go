package secrets

import (
	"crypto/cipher"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/memory"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the length of the random nonce that prefixes every envelope.
	NonceSize = chacha20poly1305.NonceSize

	// TagSize is the length of the authentication tag appended by the AEAD.
	TagSize = chacha20poly1305.Overhead

	// MinEnvelopeSize is the shortest possible envelope: a nonce and a tag
	// around an empty ciphertext.
	MinEnvelopeSize = NonceSize + TagSize
)

// newAEAD constructs the cipher; tests replace it to observe cipher use.
var newAEAD = chacha20poly1305.New

// Seal encrypts plaintext under key with a freshly drawn random nonce and no
// associated data. The result is nonce || ciphertext || tag.
func Seal(key Key, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(randReader, out); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(out, out[:NonceSize], plaintext, nil), nil
}

// Open authenticates and decrypts an envelope produced by Seal.
//
// Envelopes shorter than MinEnvelopeSize fail with ErrEnvelopeTooShort before
// any cipher is constructed. A tag that does not verify fails with
// ErrAuthenticationFailed and no plaintext is returned.
func Open(key Key, envelope []byte) ([]byte, error) {
	if len(envelope) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", kerrors.ErrEnvelopeTooShort, len(envelope), MinEnvelopeSize)
	}

	aead, err := newAEAD(key[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return open(aead, envelope)
}

func open(aead cipher.AEAD, envelope []byte) ([]byte, error) {
	nonce, ciphertext := envelope[:NonceSize], envelope[NonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, kerrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Encrypt serializes m and seals it into a self-contained envelope.
// A nil memory is encrypted as an empty one.
func Encrypt(m *memory.Memory, key Key) ([]byte, error) {
	plaintext, err := MarshalMemory(m)
	if err != nil {
		return nil, err
	}
	defer wipeBytes(plaintext)

	return Seal(key, plaintext)
}

// Decrypt opens an envelope and decodes the memory inside it.
//
// Returns ErrEnvelopeTooShort, ErrAuthenticationFailed or ErrMalformedPayload.
func Decrypt(envelope []byte, key Key) (*memory.Memory, error) {
	plaintext, err := Open(key, envelope)
	if err != nil {
		return nil, err
	}
	defer wipeBytes(plaintext)

	return UnmarshalMemory(plaintext)
}
