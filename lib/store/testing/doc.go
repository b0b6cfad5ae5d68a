// Package testing provides standardised tests and benchmarks for store
// implementations that satisfy the store.IStore interface.
//
// The package contains:
//   - testing: A test suite for validating conformance to the IStore
//     interface contract, including its concurrency guarantees
//   - benchmark: Performance tests for measuring throughput of common store
//     operations
//
// This package is particularly useful for:
//   - Applications that need to compare store implementations based on
//     performance characteristics
//   - Developers implementing the IStore interface
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() store.IStore {
//		return NewMyStore()
//	}
//
//	// Running the standard test suite
//	storetesting.RunStoreTests(t, "MyStore", factory)
//
//	// Running performance benchmarks
//	storetesting.RunStoreBenchmarks(b, "MyStore", factory)
package testing
