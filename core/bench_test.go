package core_test

import (
	"math/rand"
	"testing"
)

const benchVertices = 1000

func BenchmarkClone(b *testing.B) {
	g := randomGraph(b, rand.New(rand.NewSource(1)), benchVertices, 0.005)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkMergeSequence(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	g := randomGraph(b, rng, benchVertices, 0.005)
	pairs := make([][2]int, benchVertices/4)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(benchVertices), rng.Intn(benchVertices)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := g.Clone()
		for _, p := range pairs {
			_, _ = work.Merge(p[0], p[1])
		}
		_ = work.TotalFakeLinks()
	}
}
