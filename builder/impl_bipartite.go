// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "{leftPrefix}{i}", right IDs "{rightPrefix}{j}".
//   • Arrival order alternates sides (L0, R0, L1, R1, …), then the longer
//     side's remainder.
//   • Edges: every cross pair, i asc over L then j asc over R.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvcolor/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)
		for i := 0; i < n1 || i < n2; i++ {
			if i < n1 {
				if err := addVertices(g, methodCompleteBipartite, left[i]); err != nil {
					return err
				}
			}
			if i < n2 {
				if err := addVertices(g, methodCompleteBipartite, right[i]); err != nil {
					return err
				}
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// prefixedIDs returns prefix0..prefix(n-1).
func prefixedIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + strconv.Itoa(i)
	}
	return ids
}
