// Package errors provides typed error values for zlang.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Key errors: ErrInvalidKeyLength, ErrKeyNotFound
//   - Envelope errors: ErrEnvelopeTooShort, ErrAuthenticationFailed, ErrMalformedPayload
//   - Storage errors: ErrIO
//   - Lifecycle errors: ErrNotOnboarded, ErrRecoveryTokenNotFound, ErrBackupUnrecoverable, ...
//   - Input errors: ErrInvalidProfile, ErrInvalidLanguage, ErrNetworkDisabled, ErrInvalidDateFormat
//
// None of these are retried internally. The store and workflow packages wrap
// them with context and return them unchanged in kind:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrIO)
//
// and the CLI layer decides the user-facing message:
//
//	if errors.Is(err, zerrors.ErrAuthenticationFailed) {
//	    // wrong key or tampered file
//	}
package errors
