// Package eppstein ranks the paths between two vertices of a core.Graph in
// non-decreasing total weight, one path per call, using Eppstein's implicit
// sidetrack representation.
//
// How it works:
//
//  1. Shortest-path tree. A Dijkstra search runs backward from the target
//     over reversed edges with non-negative weight. Every vertex that can
//     reach the target gets its distance and a single tree edge (its next hop).
//     The first settlement of a vertex wins; later candidates are discarded.
//
//  2. Sidetracks. Any route from source to target is identified by the
//     ordered list of non-tree edges ("sidetracks") it takes; between two
//     sidetracks it simply follows tree edges. The excess cost of a sidetrack
//     e = (u→v) is its delta, w(e) + d(v) − d(u) ≥ 0, and the excess cost of
//     a route is the sum of its sidetrack deltas. Ranking routes by total
//     weight is therefore the same as ranking sidetrack sequences by summed
//     delta.
//
//  3. Ranking. Sidetrack sequences wait in a min-priority queue keyed by
//     summed delta. The empty sequence (the shortest path itself) is queued
//     first. Popping a sequence yields the next route; the popped sequence
//     is then extended by every sidetrack leaving any vertex on the tree path
//     from its last sidetrack's head (or from the source) to the target.
//     Extensions never cost less than their parent, so pops come out in
//     non-decreasing order, and every sequence is produced exactly once.
//     A sequence ending in a self-loop is not extended further.
//
// Because extensions are generated on demand, each query terminates even on
// graphs with cycles, where the set of routes is infinite.
//
// Restrictions:
//
//   - Edges with negative weight never enter the tree and are never used as
//     sidetracks. They are skipped silently, not rejected.
//   - The target must be reachable from the source through non-negative edges,
//     otherwise FindShortestPath reports ErrUnreachable.
//
// Complexity:
//
//   - Tree:           O((V + E) log E)
//   - Structure seed: O(1)
//   - Each query:     O(L + S·log H) where L is the route length, S the number
//     of sidetracks along the popped sequence's tree tail and H the queue size.
//
// Errors:
//
//	ErrNotReady       FindNextShortestPath without a valid FindShortestPath
//	ErrExhausted      no more routes
//	ErrSameEndpoints  source == target
//	ErrUnreachable    target not reachable from source
//	ErrNilGraph       ranker built over a nil graph
//	core.ErrUnknownVertex (wrapped) when a label does not resolve
//
// Example:
//
//	r := eppstein.New(g)
//	for p, err := r.FindShortestPath("S", "T"); err == nil; p, err = r.FindNextShortestPath() {
//	    fmt.Println(p) // "S,B,T (4)", "S,A,T (6)", ...
//	}
//
// A Ranker is not safe for concurrent use, and neither is the graph it ranks.
package eppstein
