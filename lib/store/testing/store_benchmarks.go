package testing

import (
	"fmt"
	"testing"

	"github.com/mvogel/bKV/lib/store"
)

// RunStoreBenchmarks runs all benchmarks for a key-value store implementation
func RunStoreBenchmarks(b *testing.B, name string, factory store.Factory) {

	b.Run("Set", func(b *testing.B) {
		benchmarkSet(b, factory())
	})

	b.Run("SetExisting", func(b *testing.B) {
		benchmarkSetExisting(b, factory())
	})

	b.Run("SetLargeValue", func(b *testing.B) {
		benchmarkSetLargeValue(b, factory())
	})

	b.Run("Get", func(b *testing.B) {
		benchmarkGet(b, factory())
	})

	b.Run("Get(not)", func(b *testing.B) {
		benchmarkGetNot(b, factory())
	})

	b.Run("Remove", func(b *testing.B) {
		benchmarkRemove(b, factory())
	})

	b.Run("MixedUsage", func(b *testing.B) {
		benchmarkMixedUsage(b, factory())
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// Benchmark for Set operation
func benchmarkSet(b *testing.B, s store.IStore) {
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("test-key-%d", counter))
			value := []byte(fmt.Sprintf("test-value-%d", counter))
			s.Set(key, value)
			counter++
		}
	})
}

// Benchmark for Set operation with existing keys
func benchmarkSetExisting(b *testing.B, s store.IStore) {

	// Prepare data
	numKeys := 1024
	for i := 0; i < numKeys; i++ {
		key := []byte(fmt.Sprintf("test-key-%d", i))
		value := []byte(fmt.Sprintf("test-value-%d", i))
		s.Set(key, value)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("test-key-%d", counter%numKeys))
			value := []byte(fmt.Sprintf("test-value-%d", counter))
			s.Set(key, value)
			counter++
		}
	})
}

// Benchmark for Set operation with large values
func benchmarkSetLargeValue(b *testing.B, s store.IStore) {

	// 1 MB value
	largeValue := make([]byte, 1024*1024)
	for i := range largeValue {
		largeValue[i] = byte(i % 256)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("test-key-%d", counter))
			s.Set(key, largeValue)
			counter++
		}
	})
}

// Benchmark for Get operation with existing keys
func benchmarkGet(b *testing.B, s store.IStore) {

	// Prepare data
	numKeys := 1024
	for i := 0; i < numKeys; i++ {
		key := []byte(fmt.Sprintf("test-key-%d", i))
		value := []byte(fmt.Sprintf("test-value-%d", i))
		s.Set(key, value)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("test-key-%d", counter%numKeys))
			s.Get(key)
			counter++
		}
	})
}

// Benchmark for Get operation with missing keys
func benchmarkGetNot(b *testing.B, s store.IStore) {
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("missing-key-%d", counter))
			s.Get(key)
			counter++
		}
	})
}

// Benchmark for Remove operation
func benchmarkRemove(b *testing.B, s store.IStore) {
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("test-key-%d", counter))
			s.Set(key, []byte("test-value"))
			s.Remove(key)
			counter++
		}
	})
}

// Benchmark for mixed Set/Get/Remove usage
func benchmarkMixedUsage(b *testing.B, s store.IStore) {

	// Prepare data
	numKeys := 1024
	for i := 0; i < numKeys; i++ {
		key := []byte(fmt.Sprintf("test-key-%d", i))
		value := []byte(fmt.Sprintf("test-value-%d", i))
		s.Set(key, value)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		counter := 0
		for pb.Next() {
			key := []byte(fmt.Sprintf("test-key-%d", counter%numKeys))
			switch counter % 4 {
			case 0:
				s.Set(key, []byte(fmt.Sprintf("test-value-%d", counter)))
			case 1, 2:
				s.Get(key)
			default:
				s.Remove(key)
			}
			counter++
		}
	})
}
