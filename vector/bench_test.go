package vector_test

import (
	"testing"

	"github.com/marcodamonte/containers/vector"
)

// Run:
//
//	go test -bench=. -benchmem ./vector
//	go test -bench=BenchmarkPushBack -count=5 ./vector

var sink any

// ── Tail insertion: amortized O(1) ───────────────────────────────────────────

func BenchmarkPushBack(b *testing.B) {
	b.Run("vector_no_reserve", func(b *testing.B) {
		for range b.N {
			v := vector.New[int]()
			for i := range 1000 {
				_ = v.PushBack(i)
			}
			sink = v
		}
	})

	b.Run("vector_reserved", func(b *testing.B) {
		for range b.N {
			v := vector.New[int]()
			_ = v.Reserve(1000)
			for i := range 1000 {
				_ = v.PushBack(i)
			}
			sink = v
		}
	})

	b.Run("builtin_append", func(b *testing.B) {
		for range b.N {
			var s []int
			for i := range 1000 {
				s = append(s, i)
			}
			sink = s
		}
	})
}

// ── Front insertion: O(n) shift per call ─────────────────────────────────────

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		v := vector.New[int]()
		for i := range 256 {
			_ = v.Insert(0, i)
		}
		sink = v
	}
}

// ── Checked vs unchecked access ──────────────────────────────────────────────

func BenchmarkAccess(b *testing.B) {
	v, _ := vector.Make(1024, 1)
	b.ResetTimer()

	b.Run("At", func(b *testing.B) {
		for range b.N {
			sum := 0
			for i := range v.Len() {
				x, _ := v.At(i)
				sum += x
			}
			sink = sum
		}
	})

	b.Run("Unchecked", func(b *testing.B) {
		for range b.N {
			sum := 0
			for i := range v.Len() {
				sum += v.Unchecked(i)
			}
			sink = sum
		}
	})

	b.Run("All", func(b *testing.B) {
		for range b.N {
			sum := 0
			for _, x := range v.All() {
				sum += x
			}
			sink = sum
		}
	})
}
