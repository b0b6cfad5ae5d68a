package store

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Factory is a function type that creates a new store instance.
// This is used to abstract the creation of a store from the code using it
// (e.g. the shared test suite in the testing package).
type Factory func() IStore

// IStore is the generic interface for a shared key-value store of raw bytes.
// Keys and values are opaque byte sequences (the empty sequence included) and
// are never interpreted, validated or normalized by an implementation.
//
// All methods must be safe for concurrent use. A handle to an IStore may be
// shared between any number of goroutines, and all of them observe the same
// underlying records.
//
// No operation returns an error. Absence of a key is a normal result and is
// reported through the loaded flag of Get, not as an error.
type IStore interface {
	// Set inserts or updates a key-value pair.
	// If the key already exists, the old value is discarded and not returned.
	Set(key, value []byte)

	// Get returns the value for a key. The boolean return value indicates
	// whether a value for the key was found. The returned slice is a copy of
	// the stored bytes and safe for the caller to modify.
	Get(key []byte) (value []byte, loaded bool)

	// Remove deletes a key-value pair. Removing an absent key is a no-op.
	Remove(key []byte)

	// Stringer renders the current contents for logging and troubleshooting.
	// The format is not stable and must not be parsed.
	fmt.Stringer
}
