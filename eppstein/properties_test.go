package eppstein_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dfs"
	"github.com/katalvlaran/kpaths/dijkstra"
	"github.com/katalvlaran/kpaths/eppstein"
)

// edgeKey renders a path's edge handles, which identify it uniquely.
func edgeKey(p core.Path) string {
	var sb strings.Builder
	for _, e := range p.Edges() {
		fmt.Fprintf(&sb, "%d.", e)
	}

	return sb.String()
}

// checkRanking asserts the ordering properties every ranking must satisfy.
func checkRanking(t *testing.T, g *core.Graph, source, target string, paths []core.Path) {
	t.Helper()
	require.NotEmpty(t, paths)

	best, err := dijkstra.ShortestDistance(g, source, target)
	require.NoError(t, err)
	assert.Equal(t, best, paths[0].Weight(), "first path is a shortest path")

	seen := make(map[string]bool, len(paths))
	for i, p := range paths {
		require.True(t, p.IsValid())
		assert.True(t, p.Contiguous(), "path %d is contiguous", i)
		labels := p.Labels()
		assert.Equal(t, core.NormalizeLabel(source), labels[0])
		assert.Equal(t, core.NormalizeLabel(target), labels[len(labels)-1])
		assert.Equal(t, p.Weight()-best, p.DeltaWeight(), "path %d delta", i)
		if i > 0 {
			assert.LessOrEqual(t, paths[i-1].Weight(), p.Weight(), "path %d order", i)
		}
		k := edgeKey(p)
		assert.False(t, seen[k], "path %d repeats %s", i, p)
		seen[k] = true
	}
}

func TestRanker_PropertiesRandomSparse(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithWeightFn(builder.UniformWeightFn(0, 9)),
					builder.WithLoops(),
				},
				builder.RandomSparse(9, 0.3),
			)
			require.NoError(t, err)

			r := eppstein.New(g)
			first, err := r.FindShortestPath("V0", "V8")
			if err != nil {
				require.ErrorIs(t, err, eppstein.ErrUnreachable)
				d, derr := dijkstra.ShortestDistance(g, "V0", "V8")
				require.NoError(t, derr)
				assert.Equal(t, dijkstra.Unreachable, d)
				return
			}

			paths := []core.Path{first}
			for len(paths) < 40 {
				p, err := r.FindNextShortestPath()
				if err != nil {
					require.ErrorIs(t, err, eppstein.ErrExhausted)
					break
				}
				paths = append(paths, p)
			}
			checkRanking(t, g, "V0", "V8", paths)
		})
	}
}

func TestRanker_PropertiesComplete(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(99),
			builder.WithWeightFn(builder.UniformWeightFn(1, 20)),
		},
		builder.Complete(7),
	)
	require.NoError(t, err)

	paths, err := eppstein.KShortestPaths(g, "V2", "V5", 60)
	require.NoError(t, err)
	require.Len(t, paths, 60, "a complete digraph has unboundedly many walks")
	checkRanking(t, g, "V2", "V5", paths)
}

// TestRanker_ExhaustiveGrid compares the complete ranking of lattice routes
// with brute-force enumeration.
func TestRanker_ExhaustiveGrid(t *testing.T) {
	tests := []struct {
		rows, cols int
		seed       int64
		routes     int
	}{
		{2, 2, 1, 2},
		{3, 3, 2, 6},
		{3, 4, 3, 10},
		{4, 4, 4, 20},
		{4, 5, 5, 35},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(
				[]builder.BuilderOption{
					builder.WithSeed(tc.seed),
					builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
				},
				builder.Grid(tc.rows, tc.cols),
			)
			require.NoError(t, err)
			src := builder.GridID(0, 0)
			dst := builder.GridID(tc.rows-1, tc.cols-1)

			ranked := drain(t, eppstein.New(g), src, dst, tc.routes+1)
			require.Len(t, ranked, tc.routes)
			checkRanking(t, g, src, dst, ranked)

			brute, err := dfs.Routes(g, src, dst)
			require.NoError(t, err)
			require.Len(t, brute, tc.routes)

			var want, got []string
			var wantW, gotW []int64
			for i := range brute {
				want = append(want, edgeKey(brute[i]))
				wantW = append(wantW, brute[i].Weight())
				got = append(got, edgeKey(ranked[i]))
				gotW = append(gotW, ranked[i].Weight())
			}
			sort.Strings(want)
			sort.Strings(got)
			sort.Slice(wantW, func(i, j int) bool { return wantW[i] < wantW[j] })
			assert.Equal(t, want, got, "same route set")
			assert.Equal(t, wantW, gotW, "ranking is the sorted weight list")
		})
	}
}

func TestRanker_ChainHasOneRoute(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Chain(6))
	require.NoError(t, err)

	paths := drain(t, eppstein.New(g), "V0", "V5", 5)
	require.Len(t, paths, 1)
	assert.Equal(t, "V0,V1,V2,V3,V4,V5 (5)", paths[0].String())

	paths = drain(t, eppstein.New(g), "V2", "V4", 5)
	assert.Equal(t, "V2,V3,V4 (2)", paths[0].String())
}
