package rng_test

import (
	"testing"

	"github.com/hasbyte1/go-typekit/rng"
)

func BenchmarkAll(b *testing.B) {
	r := rng.Upto(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range r.All() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkForLoop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := 0; v < 10_000; v++ {
			sum += v
		}
		_ = sum
	}
}
