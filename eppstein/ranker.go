package eppstein

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/pqueue"
)

// Ranker serves the paths between one source and one target of a graph in
// non-decreasing weight order.
//
// A Ranker reads and writes the graph's shortest-path-tree fields; two
// rankers over the same graph invalidate each other on FindShortestPath.
type Ranker struct {
	g    *core.Graph
	opts Options
	log  logrus.FieldLogger

	source core.VertexID
	target core.VertexID
	heap   *pqueue.Queue[*sidetrackSet]

	built      bool
	generation uint64 // graph generation the structure belongs to
	served     int    // paths returned since the last build
}

// New returns a Ranker over g.
func New(g *core.Graph, opts ...Option) *Ranker {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Ranker{
		g:      g,
		opts:   cfg,
		log:    cfg.Logger,
		source: core.NoVertex,
		target: core.NoVertex,
	}
}

// FindShortestPath builds the shortest-path tree toward target and the
// ranking structure for source, then returns the shortest path.
//
// Errors:
//   - ErrNilGraph when the ranker has no graph.
//   - core.ErrUnknownVertex (wrapped) when a label does not resolve.
//   - ErrSameEndpoints when source and target name the same vertex.
//   - ErrUnreachable when no non-negative route exists; the ranker is still
//     ready and further queries report ErrExhausted.
func (r *Ranker) FindShortestPath(source, target string) (core.Path, error) {
	r.built = false
	r.heap = nil
	r.served = 0

	if r.g == nil {
		return core.Path{}, ErrNilGraph
	}
	s, ok := r.g.VertexByLabel(source)
	if !ok {
		return core.Path{}, fmt.Errorf("source %q: %w", source, core.ErrUnknownVertex)
	}
	t, ok := r.g.VertexByLabel(target)
	if !ok {
		return core.Path{}, fmt.Errorf("target %q: %w", target, core.ErrUnknownVertex)
	}
	if s == t {
		return core.Path{}, fmt.Errorf("%w: %q", ErrSameEndpoints, r.g.Label(s))
	}
	r.source, r.target = s, t

	r.g.ResetTree()
	settled := buildShortestPathTree(r.g, t, r.opts.InitialCapacity)
	r.buildSidetrackStructure()
	r.generation = r.g.MarkRanked()
	r.built = true

	r.log.WithFields(logrus.Fields{
		"source":   r.g.Label(s),
		"target":   r.g.Label(t),
		"settled":  settled,
		"vertices": r.g.VertexCount(),
		"edges":    r.g.EdgeCount(),
	}).Debug("shortest-path tree built")

	if r.heap.Len() == 0 {
		return core.Path{}, fmt.Errorf("%w: %s→%s", ErrUnreachable, r.g.Label(s), r.g.Label(t))
	}

	return r.FindNextShortestPath()
}

// FindNextShortestPath returns the next path in ranking order.
//
// Errors:
//   - ErrNotReady when there is no valid structure (never built, failed
//     build, graph mutated, or another ranker rebuilt the tree).
//   - ErrExhausted when every path has been served.
func (r *Ranker) FindNextShortestPath() (core.Path, error) {
	if !r.ready() {
		return core.Path{}, ErrNotReady
	}
	set, ok := r.heap.Dequeue()
	if !ok {
		return core.Path{}, ErrExhausted
	}
	added := r.expand(set)
	r.served++

	path := r.rebuildPath(set.seq)
	r.log.WithFields(logrus.Fields{
		"rank":       r.served,
		"delta":      set.key,
		"sidetracks": set.seq.Len(),
		"queued":     added,
		"pending":    r.heap.Len(),
	}).Debug("path served")

	return path, nil
}

func (r *Ranker) ready() bool {
	return r.built &&
		r.g.State() == core.Ranked &&
		r.g.Generation() == r.generation
}

// State reports the ranker's view of the graph: Unbuilt when the graph has no
// vertices, Ranked while this ranker's structure is valid, Built otherwise.
func (r *Ranker) State() core.State {
	if r.g == nil || r.g.VertexCount() == 0 {
		return core.Unbuilt
	}
	if r.ready() {
		return core.Ranked
	}

	return core.Built
}

// Source returns the label of the last resolved source ("" if none).
func (r *Ranker) Source() string { return r.label(r.source) }

// Target returns the label of the last resolved target ("" if none).
func (r *Ranker) Target() string { return r.label(r.target) }

func (r *Ranker) label(v core.VertexID) string {
	if r.g == nil {
		return ""
	}

	return r.g.Label(v)
}

// Pending returns the number of queued sidetrack sequences (0 if not ready).
func (r *Ranker) Pending() int {
	if !r.ready() {
		return 0
	}

	return r.heap.Len()
}

// Served returns how many paths were returned since the last build.
func (r *Ranker) Served() int { return r.served }

// KShortestPaths returns up to k paths from source to target in ranking
// order. Running out of paths before k is not an error.
func KShortestPaths(g *core.Graph, source, target string, k int, opts ...Option) ([]core.Path, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadCount, k)
	}
	r := New(g, opts...)
	p, err := r.FindShortestPath(source, target)
	if err != nil {
		return nil, err
	}

	paths := make([]core.Path, 0, k)
	for {
		paths = append(paths, p)
		if len(paths) == k {
			return paths, nil
		}
		p, err = r.FindNextShortestPath()
		if errors.Is(err, ErrExhausted) {
			return paths, nil
		}
		if err != nil {
			return paths, err
		}
	}
}
