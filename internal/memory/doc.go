// Package memory holds the in-memory note model: a map from note key to Note
// plus an append-only history of operation tags used for undo.
//
// Every Save appends "save:<key>" to the history. Undo pops the last entry
// and, for a save entry, deletes the key. Undo does not remember earlier
// values, so saving the same key twice and undoing once removes the key.
//
// The package does no I/O. Persisting a Memory is the job of the store
// package, which encrypts the whole Memory after every mutation.
package memory
