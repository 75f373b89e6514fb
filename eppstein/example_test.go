// Package eppstein_test shows how to rank the routes of a small graph.
package eppstein_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/eppstein"
)

// ExampleRanker walks every S→T route of a four-vertex graph in increasing
// weight order until the ranking runs dry.
func ExampleRanker() {
	// 1) Build the graph through the label-list operations.
	g := core.NewGraph()
	_ = g.CreateVertices("S,A,B,T")
	_ = g.CreateEdges("S,B", "A,T", 1, "g") // S→A and B→T share a weight
	_ = g.CreateEdges("S", "B", 3, "g")
	_ = g.CreateEdges("S", "T", 10, "g")
	_ = g.CreateEdges("A", "T", 5, "g")

	// 2) The first query builds the tree toward T; the rest pop the queue.
	r := eppstein.New(g)
	p, err := r.FindShortestPath("S", "T")
	for err == nil {
		fmt.Println(p)
		p, err = r.FindNextShortestPath()
	}
	if errors.Is(err, eppstein.ErrExhausted) {
		fmt.Println("End.")
	}
	// Output:
	// S,B,T (4)
	// S,A,T (6)
	// S,T (10)
	// End.
}

// ExampleKShortestPaths ranks the first routes of the graph from Eppstein's
// 1997 paper.
func ExampleKShortestPaths() {
	g, err := builder.BuildGraph(nil, builder.Eppstein1997(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	paths, err := eppstein.KShortestPaths(g, "S", "T", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range paths {
		fmt.Printf("%d: %s +%d\n", i+1, p, p.DeltaWeight())
	}
	// Output:
	// 1: S,D,E,F,J,T (55) +0
	// 2: S,A,B,C,G,T (58) +3
	// 3: S,A,B,F,J,T (59) +4
}

// ExampleRanker_regroup shows that re-weighting a group invalidates the
// ranking until the next FindShortestPath.
func ExampleRanker_regroup() {
	g := core.NewGraph()
	_ = g.CreateVertices("S,M,T")
	_ = g.CreateEdges("S,M", "M,T", 2, "slow")
	_ = g.CreateEdges("S", "T", 3, "direct")

	r := eppstein.New(g)
	p, _ := r.FindShortestPath("S", "T")
	fmt.Println(p)

	g.SetGroupWeight("direct", 9)
	_, err := r.FindNextShortestPath()
	fmt.Println(errors.Is(err, eppstein.ErrNotReady), r.State())

	p, _ = r.FindShortestPath("S", "T")
	fmt.Println(p)
	// Output:
	// S,T (3)
	// true Built
	// S,M,T (4)
}
