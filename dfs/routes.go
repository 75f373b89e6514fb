package dfs

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// routeWalker holds the state of one enumeration.
type routeWalker struct {
	g      *core.Graph
	opts   Options
	target core.VertexID
	leads  []bool // vertex → can reach target
	state  []int  // vertex → colour
	stack  []core.EdgeID
	routes []core.Path
}

// Routes returns every route from source to target, in depth-first order
// (adjacency order at each vertex). Vertices that cannot reach the target
// are pruned, so cycles away from every route are harmless.
//
// Routes never revisit a vertex: if some route could, the graph holds
// infinitely many routes and ErrCycleDetected is returned instead.
// A source equal to the target yields no routes.
func Routes(g *core.Graph, source, target string, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	s, ok := g.VertexByLabel(source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	t, ok := g.VertexByLabel(target)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	w := &routeWalker{
		g:      g,
		opts:   o,
		target: t,
		leads:  canReach(g, t),
		state:  make([]int, g.VertexCount()),
	}
	if s == t || !w.leads[s] {
		return nil, nil
	}
	if err := w.visit(s); err != nil {
		return nil, err
	}

	return w.routes, nil
}

// visit extends the current stack from v. Colours are reset on the way back
// so that a vertex can appear on many routes, just never twice on one.
func (w *routeWalker) visit(v core.VertexID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if v == w.target {
		if w.opts.MaxRoutes >= 0 && len(w.routes) == w.opts.MaxRoutes {
			return fmt.Errorf("%w: more than %d", ErrTooManyRoutes, w.opts.MaxRoutes)
		}
		w.routes = append(w.routes, core.NewPath(w.g, w.stack...).Freeze())
		// Keep walking: an edge leaving the target can only come back to it
		// through a cycle, which is reported below.
	}

	w.state[v] = Gray
	for _, e := range w.g.Adjacent(v) {
		ed := w.g.Edge(e)
		if ed.Tail != v || ed.Weight < 0 || !w.leads[ed.Head] {
			continue
		}
		if w.state[ed.Head] == Gray {
			return fmt.Errorf("%w: %s→%s closes a loop on a route",
				ErrCycleDetected, w.g.Label(v), w.g.Label(ed.Head))
		}
		w.stack = append(w.stack, e)
		if err := w.visit(ed.Head); err != nil {
			return err
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
	w.state[v] = White

	return nil
}

// canReach marks every vertex with a non-negative route to target.
func canReach(g *core.Graph, target core.VertexID) []bool {
	leads := make([]bool, g.VertexCount())
	leads[target] = true
	stack := []core.VertexID{target}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Adjacent(v) {
			ed := g.Edge(e)
			if ed.Head != v || ed.Weight < 0 || leads[ed.Tail] {
				continue
			}
			leads[ed.Tail] = true
			stack = append(stack, ed.Tail)
		}
	}

	return leads
}
