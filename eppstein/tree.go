package eppstein

import (
	"cmp"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/pqueue"
)

// fringeNode is a candidate relaxation: reach edge.Tail through edge at cost key.
type fringeNode struct {
	edge core.EdgeID
	key  int64 // edge weight + distance of the edge's head, saturated
}

func (n fringeNode) Compare(o fringeNode) int { return cmp.Compare(n.key, o.key) }

// buildShortestPathTree runs Dijkstra backward from target over incoming
// non-negative edges and records each reachable vertex's distance and tree
// edge on the graph. It returns the number of settled vertices (target included).
//
// The caller resets the tree first; every vertex other than the target must
// start at core.UnknownDistance.
func buildShortestPathTree(g *core.Graph, target core.VertexID, capacity int) int {
	g.SetRoot(target)
	fringe := pqueue.New[fringeNode](capacity)
	settled := 1

	v := target
	for {
		// Expand only from a vertex settled in this iteration.
		if v != core.NoVertex {
			d := g.Distance(v)
			for _, e := range g.Adjacent(v) {
				ed := g.Edge(e)
				if ed.Head != v || ed.Weight < 0 {
					continue
				}
				fringe.Enqueue(fringeNode{edge: e, key: core.AddWeights(ed.Weight, d)})
			}
		}

		n, ok := fringe.Dequeue()
		if !ok {
			break
		}
		v = g.Edge(n.edge).Tail
		if g.Distance(v) != core.UnknownDistance {
			// Already settled by a cheaper (or equal, earlier) candidate.
			v = core.NoVertex
			continue
		}
		g.Settle(v, n.key, n.edge)
		settled++
	}

	return settled
}
