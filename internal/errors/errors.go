package errors

import "errors"

// Key errors indicate problems with the master key material.
var (
	// ErrInvalidKeyLength indicates key material that is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid master key length")

	// ErrKeyNotFound indicates the master key store does not exist.
	ErrKeyNotFound = errors.New("master key not found")
)

// Envelope errors indicate failures while opening an encrypted memory snapshot.
var (
	// ErrEnvelopeTooShort indicates the envelope cannot hold a nonce and tag.
	ErrEnvelopeTooShort = errors.New("encrypted data too short")

	// ErrAuthenticationFailed indicates the AEAD tag did not verify. This covers
	// a wrong key as well as any corruption of nonce or ciphertext.
	ErrAuthenticationFailed = errors.New("authentication failed: wrong key or corrupted data")

	// ErrMalformedPayload indicates the tag verified but the plaintext could
	// not be decoded into a memory.
	ErrMalformedPayload = errors.New("decrypted payload is malformed")
)

// ErrIO indicates a backing store could not be read or written.
var ErrIO = errors.New("backing store i/o failure")

// Lifecycle errors indicate the store is not in the state an operation needs.
var (
	// ErrNotOnboarded indicates no master key exists yet.
	ErrNotOnboarded = errors.New("store has not been onboarded")

	// ErrAlreadyOnboarded indicates onboarding would overwrite an existing key.
	ErrAlreadyOnboarded = errors.New("store has already been onboarded")

	// ErrRecoveryTokenNotFound indicates the recovery token store is missing.
	ErrRecoveryTokenNotFound = errors.New("recovery token not found")

	// ErrInvalidRecoveryToken indicates the recovery token is structurally invalid.
	ErrInvalidRecoveryToken = errors.New("recovery token is invalid")

	// ErrBackupUnrecoverable indicates a backup was supplied but the key it was
	// encrypted under is no longer available.
	ErrBackupUnrecoverable = errors.New("backup cannot be restored without the previous master key")
)

// Input errors indicate a caller supplied an unusable value.
var (
	// ErrInvalidProfile indicates a profile identifier that cannot name a store.
	ErrInvalidProfile = errors.New("invalid profile name")

	// ErrInvalidLanguage indicates an unsupported language preference.
	ErrInvalidLanguage = errors.New("unsupported language")

	// ErrNetworkDisabled indicates network operations were not allowed at onboarding.
	ErrNetworkDisabled = errors.New("network operations are not enabled")

	// ErrInvalidDateFormat indicates a log filter date could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
