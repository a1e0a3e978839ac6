// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_path.go — Path(n) and Cycle(n).
//
// Contract:
//   - Vertices idFn(0..n-1) arrive in index order.
//   - Path emits i-1 — i for i=1..n-1; Cycle adds n-1 — 0 last.
//
// Coloring notes: every path is bipartite; a cycle is bipartite iff n is
// even, which makes odd cycles the smallest inputs where CBIP needs a
// third color.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		return ring(g, methodPath, indexIDs(cfg, 0, n), false)
	}
}

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		return ring(g, methodCycle, indexIDs(cfg, 0, n), true)
	}
}

// ring adds ids, links consecutive pairs and optionally closes the loop.
func ring(g *core.Graph, method string, ids []string, closed bool) error {
	if err := addVertices(g, method, ids...); err != nil {
		return err
	}
	for i := 1; i < len(ids); i++ {
		if err := addEdge(g, method, ids[i-1], ids[i]); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, method, ids[len(ids)-1], ids[0])
	}
	return nil
}
