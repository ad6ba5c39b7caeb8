package secrets

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/utils"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the exact length of master key material.
const KeySize = chacha20poly1305.KeySize

// Key is symmetric master key material. Its fixed size makes truncated or
// padded keys unrepresentable.
type Key [KeySize]byte

// randReader is the entropy source for keys and nonces.
var randReader io.Reader = rand.Reader

// GenerateKey creates a new random master key.
func GenerateKey() (Key, error) {
	var key Key
	if _, err := io.ReadFull(randReader, key[:]); err != nil {
		return Key{}, fmt.Errorf("failed to read random bytes for key: %w", err)
	}
	return key, nil
}

// LoadKey validates raw key material. It succeeds only when b is exactly
// KeySize bytes long; the input is never truncated, padded or hashed.
func LoadKey(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("%w: expected %d bytes, got %d bytes", kerrors.ErrInvalidKeyLength, KeySize, len(b))
	}
	var key Key
	copy(key[:], b)
	return key, nil
}

// ReadKeyFile loads the master key store at path.
//
// Returns ErrKeyNotFound if the file does not exist, ErrIO if it cannot be
// read and ErrInvalidKeyLength if it does not hold exactly KeySize bytes.
func ReadKeyFile(path string) (Key, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Key{}, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, path)
	}
	if err != nil {
		return Key{}, fmt.Errorf("%w: reading master key: %v", kerrors.ErrIO, err)
	}
	defer wipeBytes(data)

	return LoadKey(data)
}

// WriteKeyFile atomically replaces the master key store at path with key.
func WriteKeyFile(path string, key Key) error {
	if err := utils.WriteFileAtomic(path, key[:], 0600); err != nil {
		return fmt.Errorf("%w: writing master key: %v", kerrors.ErrIO, err)
	}
	return nil
}

// Equal compares two keys in constant time.
func (k *Key) Equal(other *Key) bool {
	return subtle.ConstantTimeCompare(k[:], other[:]) == 1
}

// Wipe zeroes the key material.
func (k *Key) Wipe() {
	wipeBytes(k[:])
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
