// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// Package builder provides deterministic directed-graph fixtures for the path
// ranker: examples, tests and benchmarks all build their graphs here.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(bopts, cons...) creates a core.Graph,
//     resolves the builder configuration and applies constructors in order.
//   - Topology constructors (Constructor values):
//     – Eppstein1997(extras): the example graph of Eppstein's 1997 paper,
//     optionally with four extra edges (diagonals, a dead end, a self-loop).
//     – Chain(n):             V0→V1→…→V(n-1).
//     – Grid(rows, cols):     a DAG of right/down arcs, IDs "R<r>C<c>".
//     – Complete(n):          every ordered pair i≠j (dense and cyclic).
//     – RandomSparse(n, p):   each ordered pair kept with probability p.
//   - Configuration (BuilderOption):
//     – WithIDScheme / WithSeed / WithRand / WithWeightFn / WithGroup / WithLoops.
//   - Vertex-ID schemes (IDFn): PrefixedIDFn, ExcelColumnIDFn. Every scheme
//     must emit labels matching the core grammar letter (letter|digit)*.
//   - Weight generators (WeightFn): ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ the same
//     graph, edge handles included.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors.
package builder
