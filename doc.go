// Package kpaths ranks the routes between two vertices of a weighted
// directed graph: shortest first, then the second shortest, and so on,
// one route per call.
//
// 🚀 What is kpaths?
//
//	An implementation of Eppstein's k-shortest-paths ranking over a graph
//	described by comma-separated label lists:
//		• core/      — vertex and edge arenas, label grammar, paths, state machine
//		• eppstein/  — reverse shortest-path tree, sidetracks, the Ranker
//		• pqueue/    — generic min-priority queue with FIFO ties
//		• dijkstra/  — forward single-source distances (test oracle)
//		• dfs/       — brute-force route enumeration and cycle finding
//		• builder/   — deterministic fixtures: Eppstein1997, Grid, Complete, ...
//		• cmd/kpaths — command line driver
//
// ✨ Contract in one breath
//
//   - FindShortestPath(source, target) builds the structure and returns route #1.
//   - FindNextShortestPath() returns route #2, #3, ... in non-decreasing weight.
//   - Any mutation of the graph invalidates the structure until the next
//     FindShortestPath; queries in between fail with eppstein.ErrNotReady.
//   - Edges with negative weight are ignored by the ranking.
//
// Quick ASCII example:
//
//	      1       5
//	   S ───► A ───► T
//	   │3           ▲ 1
//	   └────► B ────┘      S ──10──► T
//
// ranks S,B,T (4), S,A,T (6), S,T (10), then reports exhaustion.
//
//	go install github.com/katalvlaran/kpaths/cmd/kpaths@latest
package kpaths
