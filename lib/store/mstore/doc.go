// Package mstore implements an in-memory, single-process key-value store
// based on the store.IStore interface. It is a thin wrapper around one map
// guarded by one mutex. Data is stored entirely in memory and is not
// persisted between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - Opaque byte-sequence keys and values, the empty sequence included
//   - Thread-safe operations for concurrent access from any number of
//     goroutines sharing one handle
//   - Defensive copying of values on both write and read
//
// Implementation Details:
//
//   - Locking Discipline: Every operation, Get included, acquires the same
//     exclusive mutex, performs its action and releases the lock. There is
//     no reader/writer distinction, no sharding and no lock-free fast path.
//     As a consequence, operations on one store are linearized: for any two
//     concurrent calls, one completes entirely before the other begins.
//     No operation acquires a second lock or calls back into the store while
//     holding the lock, so the store cannot deadlock; acquisition blocks
//     only for the duration of ordinary contention and cannot fail.
//
//   - Key Representation: Caller keys arrive as []byte and are converted to
//     string map keys. The conversion copies the bytes verbatim; a string is
//     used purely as an immutable byte container, so arbitrary (also
//     non-UTF-8 and empty) keys work.
//
//   - Copy Semantics: Values are copied on Set before they enter the map and
//     copied again on Get before they are returned. Callers can therefore
//     never alias internal state, and mutating a buffer after a call has no
//     effect on the store.
//
// Usage Example:
//
//	s := mstore.NewStore()
//
//	s.Set([]byte("session:123"), sessionData)
//
//	value, loaded := s.Get([]byte("session:123"))
//
//	s.Remove([]byte("session:123"))
//
// Suitable Use Cases:
//
//	The memory store is ideal for:
//	- Ephemeral shared state that doesn't need to survive process restarts
//	- Single-node applications where distributed consensus is not required
//	- Testing and development environments
//	- Runtime caching and session storage within a single process
//
// Performance Considerations:
//
//	The single exclusive lock is a deliberate simplicity trade-off: under
//	read-heavy contention a reader-writer lock or a sharded map would scale
//	better, but both change the concurrency contract above and are therefore
//	not used here.
package mstore
