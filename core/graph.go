package core

import (
	"fmt"
	"strings"
)

// Graph is a weighted directed graph stored in vertex and edge arenas.
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	index    map[string]VertexID // normalized label → handle

	state      State
	generation uint64
}

// NewGraph returns an empty graph in the Unbuilt state.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]VertexID)}
}

// State reports the current lifecycle state.
func (g *Graph) State() State { return g.state }

// Generation is bumped by every mutation and every tree reset.
func (g *Graph) Generation() uint64 { return g.generation }

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// CreateVertices replaces the whole vertex set (and therefore every edge)
// with the labels of a comma-separated list.
//
// Empty tokens are skipped and duplicates collapse into one vertex.
// A malformed token fails the call with ErrMalformedLabel and leaves the
// graph untouched.
func (g *Graph) CreateVertices(list string) error {
	labels, err := ParseLabels(list)
	if err != nil {
		return err
	}

	g.vertices = make([]Vertex, 0, len(labels))
	g.edges = nil
	g.index = make(map[string]VertexID, len(labels))
	for _, label := range labels {
		g.insertVertex(label)
	}
	g.touch()

	return nil
}

// AddVertex inserts one vertex if its label is not present yet (idempotent)
// and returns its handle.
func (g *Graph) AddVertex(label string) (VertexID, error) {
	label = NormalizeLabel(label)
	if !ValidLabel(label) {
		return NoVertex, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}
	if id, ok := g.index[label]; ok {
		return id, nil
	}
	id := g.insertVertex(label)
	g.touch()

	return id, nil
}

func (g *Graph) insertVertex(label string) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{
		Label:    label,
		Distance: UnknownDistance,
		TreeEdge: NoEdge,
	})
	g.index[label] = id

	return id
}

// CreateEdges adds one edge per positional pair of the tails and heads lists,
// all sharing weight and group.
//
// Weights may span the whole int64 range; sums along a route saturate at
// math.MaxInt64 (see AddWeights), so rankings stay ordered but totals beyond
// that bound are not exact.
//
// Errors (no edge is created on failure):
//   - ErrListLengthMismatch when the lists have different token counts.
//   - ErrUnknownVertex when any token (the empty token included) does not
//     name an existing vertex.
func (g *Graph) CreateEdges(tails, heads string, weight int64, group string) error {
	tailIDs, err := g.resolveTokens(tails)
	if err != nil {
		return fmt.Errorf("tails: %w", err)
	}
	headIDs, err := g.resolveTokens(heads)
	if err != nil {
		return fmt.Errorf("heads: %w", err)
	}
	if len(tailIDs) != len(headIDs) {
		return fmt.Errorf("%w: %d tails, %d heads", ErrListLengthMismatch, len(tailIDs), len(headIDs))
	}

	group = normalizeGroup(group)
	for i := range tailIDs {
		g.insertEdge(tailIDs[i], headIDs[i], weight, group)
	}
	g.touch()

	return nil
}

// AddEdge adds a single edge tail→head and returns its handle.
// The weight range is the one documented on CreateEdges.
func (g *Graph) AddEdge(tail, head string, weight int64, group string) (EdgeID, error) {
	t, ok := g.index[NormalizeLabel(tail)]
	if !ok {
		return NoEdge, fmt.Errorf("%w: %q", ErrUnknownVertex, tail)
	}
	h, ok := g.index[NormalizeLabel(head)]
	if !ok {
		return NoEdge, fmt.Errorf("%w: %q", ErrUnknownVertex, head)
	}
	id := g.insertEdge(t, h, weight, normalizeGroup(group))
	g.touch()

	return id, nil
}

func (g *Graph) insertEdge(tail, head VertexID, weight int64, group string) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{Tail: tail, Head: head, Weight: weight, Group: group})
	g.vertices[tail].Adjacent = append(g.vertices[tail].Adjacent, id)
	if head != tail {
		g.vertices[head].Adjacent = append(g.vertices[head].Adjacent, id)
	}

	return id
}

// SetGroupWeight overwrites the weight of every edge whose group matches
// (case-insensitively) and returns how many edges were changed.
// The ranking structure is invalidated even when nothing matched.
func (g *Graph) SetGroupWeight(group string, weight int64) int {
	group = normalizeGroup(group)
	n := 0
	for i := range g.edges {
		if g.edges[i].Group == group {
			g.edges[i].Weight = weight
			n++
		}
	}
	g.touch()

	return n
}

// EdgesInGroup lists the handles of the edges tagged with group.
func (g *Graph) EdgesInGroup(group string) []EdgeID {
	group = normalizeGroup(group)
	var out []EdgeID
	for i := range g.edges {
		if g.edges[i].Group == group {
			out = append(out, EdgeID(i))
		}
	}

	return out
}

func normalizeGroup(group string) string {
	return strings.ToUpper(strings.TrimSpace(group))
}

// touch records a mutation: new generation, state back to Built/Unbuilt.
func (g *Graph) touch() {
	g.generation++
	if len(g.vertices) == 0 {
		g.state = Unbuilt
		return
	}
	g.state = Built
}

// VertexByLabel resolves a label (case-insensitive).
func (g *Graph) VertexByLabel(label string) (VertexID, bool) {
	id, ok := g.index[NormalizeLabel(label)]
	if !ok {
		return NoVertex, false
	}

	return id, true
}

// Vertex returns a copy of the vertex record.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	if !g.validVertex(id) {
		return Vertex{Distance: UnknownDistance, TreeEdge: NoEdge}, false
	}

	return g.vertices[id], true
}

// Edge returns a copy of the edge record; an unknown handle yields an edge
// whose endpoints are NoVertex.
func (g *Graph) Edge(id EdgeID) Edge {
	if !g.validEdge(id) {
		return Edge{Tail: NoVertex, Head: NoVertex}
	}

	return g.edges[id]
}

// Label returns the vertex label, or "" for an unknown handle.
func (g *Graph) Label(id VertexID) string {
	if !g.validVertex(id) {
		return ""
	}

	return g.vertices[id].Label
}

// Labels returns every vertex label in creation order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].Label
	}

	return out
}

// Adjacent returns the edges incident to v. The slice is owned by the graph
// and must not be modified.
func (g *Graph) Adjacent(v VertexID) []EdgeID {
	if !g.validVertex(v) {
		return nil
	}

	return g.vertices[v].Adjacent
}

// Distance returns v's distance to the current target or UnknownDistance.
func (g *Graph) Distance(v VertexID) int64 {
	if !g.validVertex(v) {
		return UnknownDistance
	}

	return g.vertices[v].Distance
}

// TreeEdge returns v's shortest-path-tree edge or NoEdge.
func (g *Graph) TreeEdge(v VertexID) EdgeID {
	if !g.validVertex(v) {
		return NoEdge
	}

	return g.vertices[v].TreeEdge
}

// Next returns the head of v's tree edge, or NoVertex.
func (g *Graph) Next(v VertexID) VertexID {
	e := g.TreeEdge(v)
	if e == NoEdge {
		return NoVertex
	}

	return g.edges[e].Head
}

// Delta is the excess cost of taking e instead of following the tree at its
// tail: Weight + Distance(Head) − Distance(Tail), saturated at the int64
// bounds. It is 0 for an unknown edge or when either endpoint is unsettled.
func (g *Graph) Delta(e EdgeID) int64 {
	if !g.validEdge(e) {
		return 0
	}
	ed := g.edges[e]
	dh, dt := g.vertices[ed.Head].Distance, g.vertices[ed.Tail].Distance
	if dh == UnknownDistance || dt == UnknownDistance {
		return 0
	}

	// Settled distances are non-negative, so dh-dt cannot overflow.
	return AddWeights(ed.Weight, dh-dt)
}

// step snapshots edge e for a frozen path. Unknown handles (or a nil graph)
// yield NoVertex endpoints, empty labels and zero weights.
func (g *Graph) step(e EdgeID) Step {
	if g == nil || !g.validEdge(e) {
		return Step{Tail: NoVertex, Head: NoVertex}
	}
	ed := g.edges[e]

	return Step{
		Tail:      ed.Tail,
		Head:      ed.Head,
		TailLabel: g.vertices[ed.Tail].Label,
		HeadLabel: g.vertices[ed.Head].Label,
		Weight:    ed.Weight,
		Delta:     g.Delta(e),
	}
}

// ResetTree forgets every distance and tree edge. The generation moves on,
// so any ranking structure built before is stale from here.
func (g *Graph) ResetTree() {
	for i := range g.vertices {
		g.vertices[i].Distance = UnknownDistance
		g.vertices[i].TreeEdge = NoEdge
	}
	g.touch()
}

// SetRoot makes v the root of the shortest-path tree (distance 0, no tree edge).
func (g *Graph) SetRoot(v VertexID) {
	if !g.validVertex(v) {
		return
	}
	g.vertices[v].Distance = 0
	g.vertices[v].TreeEdge = NoEdge
}

// Settle records v's final distance and the tree edge that realizes it.
func (g *Graph) Settle(v VertexID, distance int64, via EdgeID) {
	if !g.validVertex(v) {
		return
	}
	g.vertices[v].Distance = distance
	g.vertices[v].TreeEdge = via
}

// MarkRanked moves a Built graph to Ranked and returns the generation the
// ranking structure belongs to. An Unbuilt graph stays Unbuilt.
func (g *Graph) MarkRanked() uint64 {
	if g.state != Unbuilt {
		g.state = Ranked
	}

	return g.generation
}

func (g *Graph) validVertex(v VertexID) bool { return v >= 0 && int(v) < len(g.vertices) }

func (g *Graph) validEdge(e EdgeID) bool { return e >= 0 && int(e) < len(g.edges) }
