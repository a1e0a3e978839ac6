// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_complete.go — Complete(n) and Grid(rows, cols).
//
// Contract:
//   - Complete: vertices idFn(0..n-1); edges i — j for i<j, i asc then j asc.
//   - Grid: vertices idFn(r*cols+c) row-major; right edge then down edge
//     per cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	minCompleteNodes = 1
	minGridDim       = 1
)

// Complete returns a Constructor for K_n (n ≥ 1). K_n needs exactly n
// colors under every algorithm.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodComplete, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid returns a Constructor for the rows×cols 4-neighborhood grid. Grids
// are bipartite, so CBIP colors them with two colors in any arrival order.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, rows*cols)
		if err := addVertices(g, methodGrid, ids...); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
