// Package store persists a profile's notes as a single encrypted envelope.
//
// A Store is opened per profile and holds an exclusive advisory lock on
// <dir>/profiles/<profile>/memory.lock until it is closed, so the
// read-decrypt-mutate-encrypt-write cycle of one process never interleaves
// with another's. Envelope writes are atomic: a crash leaves either the old
// or the new memory.bin on disk.
package store
