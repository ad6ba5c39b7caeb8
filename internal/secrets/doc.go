// Package secrets provides the cryptographic core of zlang.
//
// # Key Management
//
// The master key is exactly 32 bytes of random data stored raw (no encoding)
// in the master key store. Key material of any other length is rejected with
// ErrInvalidKeyLength; it is never truncated, padded or hashed to fit.
//
// # Envelope Format
//
// A memory snapshot is serialized to a BSON document and sealed with
// ChaCha20-Poly1305:
//
//	[12-byte nonce][ciphertext || 16-byte tag]
//
// A fresh random nonce is drawn for every encryption, so encrypting the same
// memory twice produces different envelopes. The nonce travels inside the
// envelope, which keeps each store a single self-describing blob.
//
// Decryption rejects envelopes shorter than nonce+tag before touching the
// cipher, verifies the tag before any plaintext is used, and only then
// decodes the document. Each stage has its own error: ErrEnvelopeTooShort,
// ErrAuthenticationFailed, ErrMalformedPayload.
//
// # Recovery Token
//
// Onboarding writes a RecoveryToken ({"id", "createdAt"} JSON) next to the
// key. It carries no key material; it only proves a store was set up here and
// gates the recovery workflow.
package secrets
