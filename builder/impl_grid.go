// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_grid.go — Grid(rows, cols): a directed acyclic lattice.
//
// Canonical model:
//   • Vertex labels use the fixed scheme "R<r>C<c>" (row-major); cfg.idFn is
//     not used so coordinates stay explicit.
//   • Each cell emits Right (r,c+1) then Down (r+1,c) arcs where they exist.
//   • The top-left → bottom-right routes number C(rows+cols-2, rows-1), which
//     makes the grid the reference fixture for exhaustive ranking checks.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "R%dC%d"
)

// GridID returns the label of cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols right/down lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if _, err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w: %w", methodGrid, id, ErrConstructFailed, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
