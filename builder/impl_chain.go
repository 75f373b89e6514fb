// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_chain.go — Chain(n): the directed path V0→V1→…→V(n-1).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices via cfg.idFn in index order; edges i→i+1 in index order.
//   • Exactly one route between the ends, so ranking yields one path.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodChain      = "Chain"
	minChainVertices = 2
)

// Chain returns a Constructor that builds a directed path over n vertices.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainVertices, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodChain, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, cfg, methodChain, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
