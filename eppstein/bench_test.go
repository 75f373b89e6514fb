package eppstein_test

import (
	"testing"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/eppstein"
)

func benchGraph(b *testing.B, cons builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(2024),
		builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
	}, cons)
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	return g
}

// BenchmarkRanker_Build measures tree + structure construction on a 30×30 lattice.
func BenchmarkRanker_Build(b *testing.B) {
	g := benchGraph(b, builder.Grid(30, 30))
	r := eppstein.New(g)
	src, dst := builder.GridID(0, 0), builder.GridID(29, 29)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := r.FindShortestPath(src, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRanker_K1000 ranks 1000 walks of a dense 40-vertex digraph.
func BenchmarkRanker_K1000(b *testing.B) {
	g := benchGraph(b, builder.Complete(40))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		paths, err := eppstein.KShortestPaths(g, "V0", "V39", 1000)
		if err != nil || len(paths) != 1000 {
			b.Fatalf("got %d paths, err=%v", len(paths), err)
		}
	}
}
