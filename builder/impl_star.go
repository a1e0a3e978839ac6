// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_star.go — Star(n) and Wheel(n).
//
// Contract:
//   - The hub (cfg.centerID, default "Center") arrives first, then leaves
//     idFn(0..n-2).
//   - Star emits Center — leaf per leaf; Wheel adds the rim cycle after.
//
// Coloring notes: a star is the degree-ordering showcase (one high-degree
// hub); a wheel with an even rim needs four colors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for a star with n vertices (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		_, err := hub(g, cfg, methodStar, n-1)
		return err
	}
}

// Wheel returns a Constructor for W_n: a hub joined to every vertex of an
// (n-1)-cycle (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim, err := hub(g, cfg, methodWheel, n-1)
		if err != nil {
			return err
		}
		for i := range rim {
			if err = addEdge(g, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		return nil
	}
}

// hub adds the center and `leaves` spokes, returning the leaf IDs.
func hub(g *core.Graph, cfg builderConfig, method string, leaves int) ([]string, error) {
	if err := addVertices(g, method, cfg.centerID); err != nil {
		return nil, err
	}
	ids := indexIDs(cfg, 0, leaves)
	for _, leaf := range ids {
		if err := addVertices(g, method, leaf); err != nil {
			return nil, err
		}
		if err := addEdge(g, method, cfg.centerID, leaf); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
