package secrets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey_FreshEntropy(t *testing.T) {
	k1, err := GenerateKey()
	require.NoError(t, err)
	k2, err := GenerateKey()
	require.NoError(t, err)

	assert.False(t, k1.Equal(&k2), "two generated keys must differ")
	assert.NotEqual(t, Key{}, k1)
}

func TestGenerateKey_RandFailure(t *testing.T) {
	orig := randReader
	randReader = bytes.NewReader(make([]byte, 5))
	defer func() { randReader = orig }()

	_, err := GenerateKey()
	assert.Error(t, err)
}

func TestLoadKey_ExactLength(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAB}, KeySize)
	key, err := LoadKey(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, key[:])
}

func TestLoadKey_RejectsWrongLengths(t *testing.T) {
	for _, n := range []int{0, 1, 16, 31, 33, 64} {
		_, err := LoadKey(make([]byte, n))
		assert.ErrorIs(t, err, kerrors.ErrInvalidKeyLength, "length %d", n)
	}
}

func TestKeyFile_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "master.key")
	key, err := GenerateKey()
	require.NoError(t, err)

	require.NoError(t, WriteKeyFile(path, key))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, raw, KeySize, "key store holds raw bytes with no encoding")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := ReadKeyFile(path)
	require.NoError(t, err)
	assert.True(t, key.Equal(&loaded))
}

func TestReadKeyFile_Missing(t *testing.T) {
	_, err := ReadKeyFile(filepath.Join(t.TempDir(), "master.key"))
	assert.ErrorIs(t, err, kerrors.ErrKeyNotFound)
}

func TestReadKeyFile_WrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.key")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0600))

	_, err := ReadKeyFile(path)
	assert.ErrorIs(t, err, kerrors.ErrInvalidKeyLength)
}

func TestReadKeyFile_Unreadable(t *testing.T) {
	// A directory in place of the key file cannot be read as bytes.
	path := t.TempDir()
	_, err := ReadKeyFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kerrors.ErrIO))
}

func TestKey_Wipe(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)
	key.Wipe()
	assert.Equal(t, Key{}, key)
}
