// Package store defines the interface for a minimal thread-safe, in-memory
// key-value store mapping opaque byte sequences to opaque byte sequences.
// It is intended as a building block for higher-level services that need a
// shared, concurrently-accessible map without persistence, eviction or
// networking.
//
// The package focuses on:
//   - A unified interface (IStore) with exactly three operations: Set, Get
//     and Remove, plus a debug rendering of the current contents
//   - Pluggable implementations through the Factory pattern
//
// Key Components:
//
//   - IStore Interface: The core abstraction for interacting with the store.
//     Keys and values are raw bytes and are stored uninterpreted; absence of
//     a key is a normal result rather than an error, and no operation has an
//     error path at all. Implementations must be safe for concurrent use so
//     a single handle can be shared freely between goroutines.
//
//   - Factory: A function type that abstracts the creation of IStore
//     instances, allowing consumers (and the shared conformance test suite)
//     to work against any implementation without code changes.
//
// Implementations:
//
//	The module ships one implementation of the IStore interface:
//
//	- Memory Store (mstore): a single mutex-guarded map. All operations,
//	  reads included, take the same exclusive lock, so operations on one
//	  store are linearized. Suitable wherever ephemeral shared state is
//	  needed within a single process.
//	  Available in the "github.com/mvogel/bKV/lib/store/mstore" package.
//
// Deliberately out of scope: persistence, key ordering or iteration,
// expiration, capacity limits, transactions spanning multiple keys, and any
// network or CLI surface. Higher-level services may wrap an IStore to add
// such concerns.
package store
