package testing

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/mvogel/bKV/lib/store"
)

// RunStoreTests runs a comprehensive test suite for an IStore implementation.
func RunStoreTests(t *testing.T, name string, factory store.Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testRemove(t, factory())
		})

		t.Run("RemoveAbsent", func(t *testing.T) {
			testRemoveAbsent(t, factory())
		})

		t.Run("GetAbsent", func(t *testing.T) {
			testGetAbsent(t, factory())
		})

		t.Run("EmptyKeysAndValues", func(t *testing.T) {
			testEmptyKeysAndValues(t, factory())
		})

		t.Run("CopySemantics", func(t *testing.T) {
			testCopySemantics(t, factory())
		})

		t.Run("ConcurrentDisjointKeys", func(t *testing.T) {
			testConcurrentDisjointKeys(t, factory())
		})

		t.Run("ConcurrentSameKey", func(t *testing.T) {
			testConcurrentSameKey(t, factory())
		})

		t.Run("ConcurrentMixedUsage", func(t *testing.T) {
			testConcurrentMixedUsage(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// requireValue checks that the store holds the expected value for key
func requireValue(t testing.TB, s store.IStore, key, expected []byte) {
	t.Helper()

	value, loaded := s.Get(key)
	if !loaded {
		t.Errorf("Expected key %q to exist", key)
		return
	}
	if !bytes.Equal(value, expected) {
		t.Errorf("Expected value %q for key %q, got %q", expected, key, value)
	}
}

// requireAbsent checks that the store holds no value for key
func requireAbsent(t testing.TB, s store.IStore, key []byte) {
	t.Helper()

	if value, loaded := s.Get(key); loaded {
		t.Errorf("Expected key %q to be absent, got value %q", key, value)
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, s store.IStore) {
	testKey := []byte("test-key")
	testValue := []byte("test-value")

	s.Set(testKey, testValue)
	requireValue(t, s, testKey, testValue)

	_, loaded := s.Get([]byte("nonexistent-key"))
	if loaded {
		t.Errorf("Expected nonexistent key to return loaded=false")
	}
}

func testOverwrite(t *testing.T, s store.IStore) {
	testKey := []byte("test-key")
	testValue1 := []byte("test-value1")
	testValue2 := []byte("test-value2")

	s.Set(testKey, testValue1)
	requireValue(t, s, testKey, testValue1)

	// The old value is discarded and unrecoverable
	s.Set(testKey, testValue2)
	requireValue(t, s, testKey, testValue2)
}

func testRemove(t *testing.T, s store.IStore) {
	testKey := []byte("test-key")
	testValue := []byte("test-value")

	s.Set(testKey, testValue)
	requireValue(t, s, testKey, testValue)

	s.Remove(testKey)
	requireAbsent(t, s, testKey)

	// The key can be set again after removal
	s.Set(testKey, testValue)
	requireValue(t, s, testKey, testValue)
}

func testRemoveAbsent(t *testing.T, s store.IStore) {
	otherKey := []byte("other-key")
	otherValue := []byte("other-value")

	s.Set(otherKey, otherValue)

	// Removing a key that was never set must not fail and must not affect
	// any other key's value
	s.Remove([]byte("never-set"))
	requireValue(t, s, otherKey, otherValue)
}

func testGetAbsent(t *testing.T, s store.IStore) {
	// Get on a freshly created store
	requireAbsent(t, s, []byte("missing"))
}

func testEmptyKeysAndValues(t *testing.T, s store.IStore) {
	emptyKey := []byte{}
	testValue := []byte("value-for-empty-key")

	// The empty byte sequence is a valid key
	s.Set(emptyKey, testValue)
	requireValue(t, s, emptyKey, testValue)

	// A nil key and an empty key address the same entry
	requireValue(t, s, nil, testValue)

	s.Remove(emptyKey)
	requireAbsent(t, s, emptyKey)

	// The empty byte sequence is a valid value
	testKey := []byte("key-for-empty-value")
	s.Set(testKey, []byte{})

	value, loaded := s.Get(testKey)
	if !loaded {
		t.Errorf("Expected key %q to exist after Set with empty value", testKey)
	}
	if len(value) != 0 {
		t.Errorf("Expected empty value, got %q", value)
	}
}

func testCopySemantics(t *testing.T, s store.IStore) {
	testKey := []byte("test-key")
	testValue := []byte("test-value")

	s.Set(testKey, testValue)

	// Mutating the caller's buffers after Set must not affect the store
	testKey[0] = 'X'
	testValue[0] = 'X'
	requireValue(t, s, []byte("test-key"), []byte("test-value"))

	// Mutating a returned value must not affect the store
	retrieved, _ := s.Get([]byte("test-key"))
	retrieved[0] = 'X'

	original, _ := s.Get([]byte("test-key"))
	if bytes.Equal(retrieved, original) {
		t.Errorf("Get should return a copy, not a reference to the stored value")
	}
}

func testConcurrentDisjointKeys(t *testing.T, s store.IStore) {
	const (
		numWriters       = 8
		numKeysPerWriter = 100
	)

	var wg sync.WaitGroup
	wg.Add(numWriters)

	for w := 0; w < numWriters; w++ {
		go func(writer int) {
			defer wg.Done()
			for i := 0; i < numKeysPerWriter; i++ {
				key := []byte(fmt.Sprintf("writer-%d-key-%d", writer, i))
				value := []byte(fmt.Sprintf("writer-%d-value-%d", writer, i))
				s.Set(key, value)
			}
		}(w)
	}

	wg.Wait()

	// No lost updates: every key written by every writer must be retrievable
	for w := 0; w < numWriters; w++ {
		for i := 0; i < numKeysPerWriter; i++ {
			key := []byte(fmt.Sprintf("writer-%d-key-%d", w, i))
			expected := []byte(fmt.Sprintf("writer-%d-value-%d", w, i))
			requireValue(t, s, key, expected)
		}
	}
}

func testConcurrentSameKey(t *testing.T, s store.IStore) {
	const numWriters = 16

	testKey := []byte("contended-key")

	var wg sync.WaitGroup
	wg.Add(numWriters)

	for w := 0; w < numWriters; w++ {
		go func(writer int) {
			defer wg.Done()
			s.Set(testKey, []byte(fmt.Sprintf("value-%d", writer)))
		}(w)
	}

	wg.Wait()

	// The final value is non-deterministic but must be exactly one of the
	// concurrently written values, never a partial write
	value, loaded := s.Get(testKey)
	if !loaded {
		t.Fatalf("Expected key %q to exist after concurrent sets", testKey)
	}

	for w := 0; w < numWriters; w++ {
		if bytes.Equal(value, []byte(fmt.Sprintf("value-%d", w))) {
			return
		}
	}
	t.Errorf("Value %q does not match any concurrently written value", value)
}

func testConcurrentMixedUsage(t *testing.T, s store.IStore) {
	const (
		numWorkers = 8
		numOps     = 200
	)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	// Interleave sets, gets, removes and debug rendering on a small shared
	// key space. Correctness here means no deadlock and no race; exact
	// contents are timing dependent.
	for w := 0; w < numWorkers; w++ {
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < numOps; i++ {
				key := []byte(fmt.Sprintf("key-%d", i%10))
				switch i % 4 {
				case 0:
					s.Set(key, []byte(fmt.Sprintf("worker-%d-op-%d", worker, i)))
				case 1:
					s.Get(key)
				case 2:
					s.Remove(key)
				default:
					_ = s.String()
				}
			}
		}(w)
	}

	wg.Wait()
}
