package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/priorityforest/adjacency"
	"github.com/katalvlaran/priorityforest/mst"
)

// buildBenchGraph creates a connected undirected graph with n vertices:
// a connectivity chain plus extra random edges, deterministically seeded.
func buildBenchGraph(n, extraEdges int) adjacency.List {
	r := rand.New(rand.NewSource(7))
	g := adjacency.New()
	for i := 1; i < n; i++ {
		g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+r.Intn(10)))
	}
	for i := 0; i < extraEdges; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+r.Intn(100)))
		i++
	}

	return g
}

func benchmarkPrim(b *testing.B, n, extra int) {
	g := buildBenchGraph(n, extra)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Prim(g, "V0"); err != nil {
			b.Fatalf("Prim failed: %v", err)
		}
	}
}

// BenchmarkPrim_Sparse benchmarks a sparse 1000-vertex graph (~2000 edges).
func BenchmarkPrim_Sparse(b *testing.B) { benchmarkPrim(b, 1000, 1000) }

// BenchmarkPrim_Dense benchmarks a denser 1000-vertex graph (~11000 edges),
// where decrease-key relaxations dominate.
func BenchmarkPrim_Dense(b *testing.B) { benchmarkPrim(b, 1000, 10000) }
