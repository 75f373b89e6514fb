// Package dijkstra computes forward single-source shortest distances on a
// core.Graph with Dijkstra's algorithm.
//
// It is deliberately independent of the eppstein package: eppstein builds a
// reverse tree toward a target, while this package relaxes edges forward from
// a source. Comparing the two is how the ranking tests check that the first
// ranked path really is a shortest path.
//
// Complexity:
//
//	– Time:  O((V + E) log E)
//	   • Each vertex is finalized once.
//	   • Each relaxation may push into the heap (lazy decrease-key).
//	– Space: O(V + E)
//
// Negative edges:
//
//	Edges with negative weight are skipped, matching the restriction of the
//	reverse shortest-path tree. They are not reported as errors.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if a label does not name a vertex of the graph.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source or target label does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable int64 = math.MaxInt64
