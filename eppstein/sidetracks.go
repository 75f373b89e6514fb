package eppstein

import (
	"cmp"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/pqueue"
)

// sidetrackSet is one entry of the ranking structure: an ordered list of
// sidetracks and its summed delta (the route's excess over the shortest path).
type sidetrackSet struct {
	seq core.Path
	key int64
}

func (s *sidetrackSet) Compare(o *sidetrackSet) int { return cmp.Compare(s.key, o.key) }

func (s *sidetrackSet) IsNil() bool { return s == nil }

// reachable reports whether v has a route to the target in the current tree.
func (r *Ranker) reachable(v core.VertexID) bool {
	return v == r.target || r.g.TreeEdge(v) != core.NoEdge
}

// isSidetrack reports whether e leaves v without being v's tree edge, has a
// non-negative weight and lands on a vertex that still reaches the target.
func (r *Ranker) isSidetrack(v core.VertexID, e core.EdgeID) bool {
	ed := r.g.Edge(e)
	if ed.Tail != v || ed.Weight < 0 || e == r.g.TreeEdge(v) {
		return false
	}

	return r.reachable(ed.Head)
}

// buildSidetrackStructure seeds the ranking queue with the empty sequence,
// which stands for the shortest path. Nothing is queued when the source
// cannot reach the target.
func (r *Ranker) buildSidetrackStructure() {
	r.heap = pqueue.New[*sidetrackSet](r.opts.InitialCapacity)
	if !r.reachable(r.source) {
		return
	}
	r.heap.Enqueue(&sidetrackSet{seq: core.NewPath(r.g)})
}

// expand queues every one-sidetrack extension of set: for each vertex on the
// tree path from the head of set's last sidetrack (or from the source) down
// to the target, each of its sidetracks appended to set. It returns the
// number of entries queued.
func (r *Ranker) expand(set *sidetrackSet) int {
	start := r.source
	if last := set.seq.Last(); last != core.NoEdge {
		ed := r.g.Edge(last)
		if ed.IsLoop() {
			return 0
		}
		start = ed.Head
	}

	n := 0
	for v := start; v != core.NoVertex; v = r.g.Next(v) {
		for _, e := range r.g.Adjacent(v) {
			if !r.isSidetrack(v, e) {
				continue
			}
			child := set.seq.Clone(1)
			child.Append(e)
			r.heap.Enqueue(&sidetrackSet{seq: child, key: core.AddWeights(set.key, r.g.Delta(e))})
			n++
		}
	}

	return n
}

// rebuildPath expands a sidetrack sequence into the full route: starting at
// the source, take the next pending sidetrack when it leaves the current
// vertex, otherwise follow the tree edge; stop where neither applies.
// The route is frozen, so it outlives later tree builds and mutations.
func (r *Ranker) rebuildPath(sidetracks core.Path) core.Path {
	path := core.NewPath(r.g)
	i := 0
	for v := r.source; v != core.NoVertex; {
		if i < sidetracks.Len() {
			if e := sidetracks.At(i); r.g.Edge(e).Tail == v {
				path.Append(e)
				v = r.g.Edge(e).Head
				i++
				continue
			}
		}
		te := r.g.TreeEdge(v)
		if te == core.NoEdge {
			break
		}
		path.Append(te)
		v = r.g.Next(v)
	}

	return path.Freeze()
}
