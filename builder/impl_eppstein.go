// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_eppstein.go — the example graph of Eppstein, "Finding the k Shortest
// Paths" (SIAM J. Computing, 1998; 1997 preprint), Figure 1.
//
// Canonical model:
//   • Vertices S, A..K, T with fixed labels (cfg.idFn is not used).
//   • 17 base edges in group "ALPHA"; weights are fixed (cfg.weightFn unused).
//   • extras == true adds group "BETA": two diagonals (E→J 30, F→T 35), a
//     dead end (J→K 5, K cannot reach T) and a self-loop (C→C 16).
//
// Reference ranking S→T (base graph): 55, 58, 59, 61, 62, ...

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodEppstein = "Eppstein1997"

	// EppsteinVertices lists the vertex labels of the example graph.
	EppsteinVertices = "S,A,B,C,D,E,F,G,H,I,J,K,T"

	// EppsteinBaseGroup tags the edges of the paper's figure.
	EppsteinBaseGroup = "ALPHA"

	// EppsteinExtraGroup tags the additional special-case edges.
	EppsteinExtraGroup = "BETA"
)

// edgeSpec is one CreateEdges call: positional tail/head lists, shared weight.
type edgeSpec struct {
	tails, heads string
	weight       int64
}

var eppsteinBase = []edgeSpec{
	{"S", "A", 2},
	{"A,E", "B,I", 20},
	{"B,B", "C,F", 14},
	{"D", "E", 9},
	{"E", "F", 10},
	{"F", "G", 25},
	{"H", "I", 18},
	{"I", "J", 8},
	{"J", "T", 11},
	{"S", "D", 13},
	{"A", "E", 27},
	{"C,D", "G,H", 15},
	{"F", "J", 12},
	{"G", "T", 7},
}

var eppsteinExtras = []edgeSpec{
	{"E", "J", 30}, // diagonal
	{"F", "T", 35}, // diagonal
	{"J", "K", 5},  // leads nowhere
	{"C", "C", 16}, // self-loop
}

// Eppstein1997 returns a Constructor that replaces g's content with the
// example graph through the boundary operations CreateVertices/CreateEdges.
func Eppstein1997(extras bool) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.CreateVertices(EppsteinVertices); err != nil {
			return fmt.Errorf("%s: CreateVertices: %w: %w", methodEppstein, ErrConstructFailed, err)
		}
		specs := eppsteinBase
		group := EppsteinBaseGroup
		for pass := 0; pass < 2; pass++ {
			for _, s := range specs {
				if err := g.CreateEdges(s.tails, s.heads, s.weight, group); err != nil {
					return fmt.Errorf("%s: CreateEdges(%s→%s): %w: %w",
						methodEppstein, s.tails, s.heads, ErrConstructFailed, err)
				}
			}
			if !extras {
				break
			}
			specs, group = eppsteinExtras, EppsteinExtraGroup
		}

		return nil
	}
}
