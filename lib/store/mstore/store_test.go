package mstore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvogel/bKV/lib/store"
	storetesting "github.com/mvogel/bKV/lib/store/testing"
)

func Test(t *testing.T) {
	storetesting.RunStoreTests(t, "MemoryStore", func() store.IStore {
		return NewStore()
	})
}

func Benchmark(b *testing.B) {
	storetesting.RunStoreBenchmarks(b, "MemoryStore", func() store.IStore {
		return NewStore()
	})
}

// --------------------------------------------------------------------------
// Implementation specific tests
// --------------------------------------------------------------------------

// initStore creates a store populated with hello1..hello5 -> world1..world5.
func initStore() store.IStore {
	s := NewStore()
	for i := 1; i <= 5; i++ {
		s.Set([]byte(fmt.Sprintf("hello%d", i)), []byte(fmt.Sprintf("world%d", i)))
	}
	return s
}

// TestNewStore verifies that NewStore returns a non-nil handle whose internal
// records map is allocated and empty.
func TestNewStore(t *testing.T) {
	t.Parallel()

	s := NewStore()
	require.NotNil(t, s, "NewStore() must not return nil")

	impl, ok := s.(*storeImpl)
	require.Truef(t, ok, "expected *storeImpl, got %T", s)
	require.NotNil(t, impl.records, "records map must be allocated")
	assert.Empty(t, impl.records, "new store must be empty")
}

// TestStore_GetSet validates the populated scenario: every stored key returns
// its value and a missing key reports loaded=false.
func TestStore_GetSet(t *testing.T) {
	t.Parallel()

	s := initStore()

	for i := 1; i <= 5; i++ {
		value, loaded := s.Get([]byte(fmt.Sprintf("hello%d", i)))
		require.Truef(t, loaded, "expected hello%d to exist", i)
		assert.Equal(t, []byte(fmt.Sprintf("world%d", i)), value)
	}

	_, loaded := s.Get([]byte("missing"))
	assert.False(t, loaded, "Get on a missing key must report loaded=false")
}

// TestStore_Remove removes hello5, hello1 and hello4 and checks that the
// remaining entries survive while the removed ones are gone.
func TestStore_Remove(t *testing.T) {
	t.Parallel()

	s := initStore()

	s.Remove([]byte("hello5"))
	s.Remove([]byte("hello1"))
	s.Remove([]byte("hello4"))

	value, loaded := s.Get([]byte("hello2"))
	require.True(t, loaded)
	assert.Equal(t, []byte("world2"), value)

	value, loaded = s.Get([]byte("hello3"))
	require.True(t, loaded)
	assert.Equal(t, []byte("world3"), value)

	_, loaded = s.Get([]byte("hello1"))
	assert.False(t, loaded, "removed key hello1 must be absent")
}

// TestStore_SharedHandle verifies that a handle passed to other goroutines
// still refers to the same records: writes made by workers are visible
// through the original handle.
func TestStore_SharedHandle(t *testing.T) {
	t.Parallel()

	const numWorkers = 8

	var (
		s  = NewStore()
		wg sync.WaitGroup
	)

	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		go func(handle store.IStore, worker int) {
			defer wg.Done()
			handle.Set([]byte(fmt.Sprintf("worker-%d", worker)), []byte("done"))
		}(s, w)
	}

	wg.Wait()

	for w := 0; w < numWorkers; w++ {
		value, loaded := s.Get([]byte(fmt.Sprintf("worker-%d", w)))
		require.Truef(t, loaded, "write of worker %d must be visible", w)
		assert.Equal(t, []byte("done"), value)
	}
}

// TestStore_String checks the debug rendering: entry count and every
// key-value pair must show up. The exact layout is not asserted since the
// format is explicitly unstable.
func TestStore_String(t *testing.T) {
	t.Parallel()

	s := NewStore()
	assert.Contains(t, s.String(), "0 entries")

	s.Set([]byte("hello1"), []byte("world1"))
	s.Set([]byte("hello2"), []byte("world2"))

	rendered := s.String()
	assert.Contains(t, rendered, "2 entries")
	assert.Contains(t, rendered, `"hello1"`)
	assert.Contains(t, rendered, `"world1"`)
	assert.Contains(t, rendered, `"hello2"`)
	assert.Contains(t, rendered, `"world2"`)
}

// TestStore_StringNonUTF8 ensures the debug rendering copes with arbitrary
// byte sequences, keys and values are opaque data after all.
func TestStore_StringNonUTF8(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Set([]byte{0x00, 0xff, 0xfe}, []byte{0x01, 0x80})

	rendered := s.String()
	assert.Contains(t, rendered, "1 entries")
}

// TestStore_Concurrency performs concurrent Set/Get/Remove loops on one key
// to smoke-test synchronization. If we complete without deadlock or data
// race (under -race), the test passes.
func TestStore_Concurrency(t *testing.T) {
	t.Parallel()

	var (
		s  = NewStore()
		wg sync.WaitGroup
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Set([]byte("key"), []byte("value"))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Get([]byte("key"))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Remove([]byte("key"))
		}
	}()

	wg.Wait()
}
