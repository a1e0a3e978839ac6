// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_sparse.go — stochastic constructors: RandomSparse(n, p) and
// RandomForward(n).
//
// Contract:
//   • Both require cfg.rng (WithSeed / WithRand), except RandomSparse with
//     p ∈ {0,1} which is deterministic.
//   • Vertices idFn(0..n-1) arrive in index order.
//   • Trial order is fixed, so a fixed seed yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomForward     = "RandomForward"
	minRandomSparseVertices = 1
	minRandomForwardNodes   = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi graph G(n, p): each
// unordered pair {i,j}, i<j, is an edge independently with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodRandomSparse, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// bernoulli draws one trial; p ∈ {0,1} never touches the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}
	return cfg.rng.Float64() < p
}

// RandomForward returns a Constructor for the online-coloring playground
// graph: a path backbone 0—1—…—(n-1), then for each vertex i a random number
// of extra edges to distinct later vertices. Every edge points forward in
// arrival order, so each new vertex's pre-neighborhood is non-empty.
//
// For vertex i the extra-edge count is drawn from [0, n-i-2] and targets
// from (i+1 .. n-1), rejecting ones already linked.
// Complexity: O(n²) expected.
func RandomForward(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomForwardNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomForward, n, minRandomForwardNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomForward, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := ring(g, methodRandomForward, ids, false); err != nil {
			return err
		}

		for i := 0; i < n-1; i++ {
			later := n - i - 1
			want := cfg.rng.Intn(later)
			for added := 0; added < want; {
				target := ids[i+1+cfg.rng.Intn(later)]
				if g.HasEdge(ids[i], target) {
					continue
				}
				if err := addEdge(g, methodRandomForward, ids[i], target); err != nil {
					return err
				}
				added++
			}
		}
		return nil
	}
}
