package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrMalformedLabel indicates a vertex token that violates the label grammar.
	ErrMalformedLabel = errors.New("core: malformed vertex label")

	// ErrUnknownVertex indicates a token that does not resolve to an existing vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrListLengthMismatch indicates tail and head lists of different lengths.
	ErrListLengthMismatch = errors.New("core: tail/head list length mismatch")
)

// VertexID is a handle into the graph's vertex arena.
type VertexID int

// EdgeID is a handle into the graph's edge arena.
type EdgeID int

const (
	// NoVertex is the "none" vertex handle.
	NoVertex VertexID = -1

	// NoEdge is the "none" edge handle.
	NoEdge EdgeID = -1
)

// UnknownDistance marks a vertex whose distance to the target has not been
// settled (or cannot be, because the target is unreachable from it).
const UnknownDistance int64 = math.MinInt64

// State is the lifecycle state of a Graph with respect to path ranking.
type State int

const (
	// Unbuilt: the graph has no vertices.
	Unbuilt State = iota

	// Built: vertices (and possibly edges) exist; no valid ranking structure.
	Built

	// Ranked: a shortest-path tree and sidetrack structure are valid.
	Ranked
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unbuilt:
		return "Unbuilt"
	case Built:
		return "Built"
	case Ranked:
		return "Ranked"
	default:
		return "State(?)"
	}
}

// Vertex is a node of the graph.
type Vertex struct {
	// Label is the upper-cased unique name.
	Label string

	// Distance is the shortest-path cost from this vertex to the current
	// target, or UnknownDistance.
	Distance int64

	// TreeEdge is the outgoing edge this vertex takes toward the target in
	// the shortest-path tree, or NoEdge.
	TreeEdge EdgeID

	// Adjacent holds every edge with this vertex as tail or head.
	// A self-loop appears once.
	Adjacent []EdgeID
}

// Settled reports whether the vertex has a known distance to the target.
func (v Vertex) Settled() bool { return v.Distance != UnknownDistance }

// Edge is a directed, weighted arc Tail→Head.
type Edge struct {
	Tail   VertexID
	Head   VertexID
	Weight int64
	Group  string // upper-cased group tag
}

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.Tail == e.Head }

// AddWeights returns a+b clamped to [math.MinInt64, math.MaxInt64] instead of
// wrapping around.
func AddWeights(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	default:
		return a + b
	}
}
