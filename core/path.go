package core

import (
	"strconv"
	"strings"
)

// emptyPathName is what VertexNames renders for an invalid path.
const emptyPathName = "(empty)"

// Path is an ordered sequence of edges of one graph.
//
// A Path is either a full route (each edge's head is the next edge's tail)
// or a sidetrack sequence, the ordered deviations that identify a route
// relative to the shortest-path tree.
//
// The zero Path is the invalid/empty sentinel returned by failed queries.
//
// A path built with NewPath is live: its derived values are read from the
// graph on demand. Freeze copies endpoints, labels, weights and deltas into
// the path, after which later graph mutations or tree builds no longer
// affect it. Paths handed out by the ranking engine are frozen.
type Path struct {
	g     *Graph
	edges []EdgeID
	steps []Step // nil while live
}

// Step is the frozen record of one edge of a path.
type Step struct {
	Tail, Head           VertexID
	TailLabel, HeadLabel string
	Weight               int64
	Delta                int64
}

// NewPath binds edges to g. The edge slice is copied.
func NewPath(g *Graph, edges ...EdgeID) Path {
	p := Path{g: g}
	if len(edges) > 0 {
		p.edges = append(make([]EdgeID, 0, len(edges)), edges...)
	}

	return p
}

// Graph returns the graph the path belongs to (nil for the zero Path).
func (p Path) Graph() *Graph { return p.g }

// Frozen reports whether the path carries its own copy of the edge data.
func (p Path) Frozen() bool { return p.steps != nil }

// Freeze returns a copy of p that no longer depends on the graph's state.
// Deltas are taken from the shortest-path tree in place at the time of the call.
func (p Path) Freeze() Path {
	out := p.Clone(0)
	out.steps = make([]Step, len(p.edges))
	for i, e := range p.edges {
		out.steps[i] = p.g.step(e)
	}

	return out
}

// Steps returns the frozen edge records, or nil for a live path.
func (p Path) Steps() []Step {
	if p.steps == nil {
		return nil
	}

	return append([]Step(nil), p.steps...)
}

// Append adds e at the end. A frozen path records e's current data.
func (p *Path) Append(e EdgeID) {
	p.edges = append(p.edges, e)
	if p.steps != nil {
		p.steps = append(p.steps, p.g.step(e))
	}
}

// AppendPath adds every edge of q at the end.
func (p *Path) AppendPath(q Path) {
	if p.g == nil {
		p.g = q.g
	}
	for _, e := range q.edges {
		p.Append(e)
	}
}

// Clone returns an independent copy with spare room for extra edges.
func (p Path) Clone(extra int) Path {
	if extra < 0 {
		extra = 0
	}
	out := Path{g: p.g, edges: make([]EdgeID, len(p.edges), len(p.edges)+extra)}
	copy(out.edges, p.edges)
	if p.steps != nil {
		out.steps = make([]Step, len(p.steps), len(p.steps)+extra)
		copy(out.steps, p.steps)
	}

	return out
}

// Edges returns a copy of the edge handles in order. Handles only identify
// edges of the graph as it was when the path was built.
func (p Path) Edges() []EdgeID {
	return append([]EdgeID(nil), p.edges...)
}

// Len returns the number of edges.
func (p Path) Len() int { return len(p.edges) }

// At returns the i-th edge handle.
func (p Path) At(i int) EdgeID { return p.edges[i] }

// Last returns the final edge handle, or NoEdge for an empty path.
func (p Path) Last() EdgeID {
	if len(p.edges) == 0 {
		return NoEdge
	}

	return p.edges[len(p.edges)-1]
}

// IsValid reports whether the path holds at least one edge.
func (p Path) IsValid() bool { return len(p.edges) > 0 }

// stepAt returns the data of the i-th edge, frozen or live.
func (p Path) stepAt(i int) Step {
	if p.steps != nil {
		return p.steps[i]
	}

	return p.g.step(p.edges[i])
}

// Weight is the sum of edge weights.
func (p Path) Weight() int64 {
	var total int64
	for i := range p.edges {
		total = AddWeights(total, p.stepAt(i).Weight)
	}

	return total
}

// DeltaWeight is the sum of edge deltas: how much more the path costs than
// the shortest one, once a shortest-path tree is in place.
func (p Path) DeltaWeight() int64 {
	var total int64
	for i := range p.edges {
		total = AddWeights(total, p.stepAt(i).Delta)
	}

	return total
}

// Labels returns the vertex labels along the path: the first tail, then the
// head of every edge. Nil for an invalid path.
func (p Path) Labels() []string {
	if !p.IsValid() {
		return nil
	}
	out := make([]string, 0, len(p.edges)+1)
	out = append(out, p.stepAt(0).TailLabel)
	for i := range p.edges {
		out = append(out, p.stepAt(i).HeadLabel)
	}

	return out
}

// VertexNames joins Labels with commas, "(empty)" for an invalid path.
func (p Path) VertexNames() string {
	if !p.IsValid() {
		return emptyPathName
	}

	return strings.Join(p.Labels(), labelSeparator)
}

// String renders "S,B,T (4)".
func (p Path) String() string {
	if !p.IsValid() {
		return emptyPathName
	}

	return p.VertexNames() + " (" + strconv.FormatInt(p.Weight(), 10) + ")"
}

// Contiguous reports whether each edge's head is the next edge's tail.
func (p Path) Contiguous() bool {
	for i := 1; i < len(p.edges); i++ {
		if p.stepAt(i-1).Head != p.stepAt(i).Tail {
			return false
		}
	}

	return true
}
