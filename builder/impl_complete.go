// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_complete.go — Complete(n): the complete digraph on n vertices.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i asc then j asc; i == j only with WithLoops.
//   • Every pair of vertices lies on a cycle, so the number of routes between
//     two vertices is infinite; only bounded prefixes of the ranking make sense.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
