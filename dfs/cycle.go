package dfs

import (
	"github.com/katalvlaran/kpaths/core"
)

// FindCycle looks for a directed cycle over non-negative edges and returns
// its vertex labels, closed ([A B C A]; a self-loop is [A A]). It returns nil
// when g is acyclic or nil.
func FindCycle(g *core.Graph) []string {
	if g == nil {
		return nil
	}
	c := &cycleFinder{
		g:     g,
		state: make([]int, g.VertexCount()),
	}
	for v := 0; v < g.VertexCount(); v++ {
		if c.state[v] == White {
			if cyc := c.visit(core.VertexID(v)); cyc != nil {
				return cyc
			}
		}
	}

	return nil
}

type cycleFinder struct {
	g     *core.Graph
	state []int
	path  []core.VertexID
}

func (c *cycleFinder) visit(v core.VertexID) []string {
	c.state[v] = Gray
	c.path = append(c.path, v)

	for _, e := range c.g.Adjacent(v) {
		ed := c.g.Edge(e)
		if ed.Tail != v || ed.Weight < 0 {
			continue
		}
		switch c.state[ed.Head] {
		case White:
			if cyc := c.visit(ed.Head); cyc != nil {
				return cyc
			}
		case Gray:
			return c.close(ed.Head)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[v] = Black

	return nil
}

// close cuts the recursion path at start and labels the loop.
func (c *cycleFinder) close(start core.VertexID) []string {
	idx := len(c.path) - 1
	for c.path[idx] != start {
		idx--
	}
	out := make([]string, 0, len(c.path)-idx+1)
	for _, v := range c.path[idx:] {
		out = append(out, c.g.Label(v))
	}

	return append(out, c.g.Label(start))
}
