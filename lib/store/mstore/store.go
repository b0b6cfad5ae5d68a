package mstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mvogel/bKV/lib/store"
)

// records is the shared mapping guarded by the store mutex.
// Keys are string conversions of the caller's key bytes (a raw byte copy,
// nothing is interpreted), values are defensive copies of the caller's bytes.
type records = map[string][]byte

// storeImpl implements store.IStore with a single exclusive lock around one
// records map. Reads take the same lock as writes.
type storeImpl struct {
	mu      sync.Mutex
	records records
}

// NewStore creates a new in-memory store instance with empty records.
// It never fails.
//
// The returned handle is backed by a pointer: copies of the handle share the
// same records, and the records are reclaimed by the runtime once the last
// handle is dropped. There is no close or shutdown operation.
func NewStore() store.IStore {
	return &storeImpl{
		records: make(records),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

// Set inserts or updates a key-value pair.
// If the key already exists, the old value is overwritten and discarded.
// The value is copied before it is stored, so the caller may reuse or modify
// its buffer after the call.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (s *storeImpl) Set(key, value []byte) {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[string(key)] = valueCopy
}

// Get returns the value for a key. The boolean return value indicates
// whether a value for the key was found. The returned slice is a copy of the
// stored bytes and therefore safe for the caller to modify.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (s *storeImpl) Get(key []byte) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, loaded := s.records[string(key)]
	if !loaded {
		return nil, false
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy, true
}

// Remove deletes a key-value pair. Removing an absent key is a no-op and
// leaves every other entry untouched.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (s *storeImpl) Remove(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, string(key))
}

// --------------------------------------------------------------------------
// Debug Representation
// --------------------------------------------------------------------------

// String returns a formatted rendering of the current records for logging
// and troubleshooting. Entries appear in map iteration order; the format is
// not stable and must not be parsed.
//
// Thread-safety: This method is thread-safe, it takes the same exclusive
// lock as the store operations.
func (s *storeImpl) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("mstore (%d entries)", len(s.records)))
	for key, value := range s.records {
		sb.WriteString(fmt.Sprintf("\n  %q: %q", key, value))
	}
	return sb.String()
}
