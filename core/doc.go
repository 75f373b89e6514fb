// Package core provides the weighted directed graph used by the path ranker:
// vertices, edges, ranked paths and the boundary operations that populate them.
//
// The Graph G = (V,E) is stored in two flat arenas:
//
//   - vertices are addressed by VertexID (index into the vertex arena)
//   - edges are addressed by EdgeID (index into the edge arena)
//   - adjacency lists and shortest-path-tree pointers hold handles, never
//     pointers, with NoVertex / NoEdge as the "none" sentinel
//
// Identity:
//
//   - Vertex labels follow the grammar  letter (letter|digit)*  and are
//     compared case-insensitively (labels are upper-cased on entry).
//   - Edge group tags are case-insensitive as well; they exist only so that
//     SetGroupWeight can re-weight a batch of edges at once.
//
// Boundary operations:
//
//	CreateVertices(labels string) error                               // "S,A,,B"
//	CreateEdges(tails, heads string, weight int64, group string) error // positional pairs
//	SetGroupWeight(group string, weight int64) int
//
// Both Create* calls are all-or-nothing: the whole input is validated before
// the graph is touched.
//
// State machine:
//
//	Unbuilt ──Create*/Add*──▶ Built ──MarkRanked──▶ Ranked
//	   ▲                        ▲                     │
//	   └──── empty vertex set ──┴─── any mutation ────┘
//
// Every successful mutation bumps Generation(); rankers compare the generation
// they built against the current one to detect a stale structure.
//
// Shortest-path-tree fields (Vertex.Distance, Vertex.TreeEdge) are written by
// the eppstein package through ResetTree / SetRoot / Settle.
//
// Concurrency: a Graph is not safe for concurrent use. Callers serialize
// access to one instance themselves.
package core
