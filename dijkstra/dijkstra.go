package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// Distances computes the shortest distance from source to every vertex of g,
// keyed by vertex label. Unreachable vertices map to Unreachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
func Distances(g *core.Graph, source string) (map[string]int64, error) {
	r, err := newRunner(g, source)
	if err != nil {
		return nil, err
	}
	r.process(core.NoVertex)

	out := make(map[string]int64, len(r.dist))
	for i, d := range r.dist {
		out[g.Label(core.VertexID(i))] = d
	}

	return out, nil
}

// ShortestDistance returns the length of the shortest path source→target,
// or Unreachable. The search stops as soon as target is finalized.
func ShortestDistance(g *core.Graph, source, target string) (int64, error) {
	r, err := newRunner(g, source)
	if err != nil {
		return Unreachable, err
	}
	t, ok := g.VertexByLabel(target)
	if !ok {
		return Unreachable, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	r.process(t)

	return r.dist[t], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	dist    []int64 // handle → best known distance from source
	visited []bool  // handle → distance finalized
	pq      nodePQ  // lazy min-heap
}

func newRunner(g *core.Graph, source string) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s, ok := g.VertexByLabel(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: s, dist: 0})

	return r, nil
}

// process pops vertices in distance order until the heap empties or stop is
// finalized (pass core.NoVertex to run to completion).
func (r *runner) process(stop core.VertexID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// Stale heap entry: u was finalized through a shorter route.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == stop {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every head reached by an edge out of u.
func (r *runner) relax(u core.VertexID) {
	for _, e := range r.g.Adjacent(u) {
		ed := r.g.Edge(e)
		// Adjacency lists carry incoming edges too; walk forward only.
		if ed.Tail != u || ed.Weight < 0 {
			continue
		}
		v := ed.Head
		newDist := r.dist[u] + ed.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   core.VertexID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
