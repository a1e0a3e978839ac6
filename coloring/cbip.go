// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// cbip.go — CBIP: online coloring against a bipartition of the current
// component.

package coloring

import "github.com/katalvlaran/lvcolor/bfs"

// CBIP colors vertices[0..k) in arrival order. For each vertex v it
// breadth-first searches v's component in the revealed sub-graph and splits
// it by depth parity: even depths (v included) form side A, odd depths side
// B. v takes the first token not used by the vertices of B colored so far.
//
// Odd cycles are not detected; the parity split is used as is and any
// resulting improper edge only shows up in Evaluate. An isolated vertex has
// an empty side B and always takes the first token.
//
// Complexity: O(k·(k + E)).
func CBIP(vertices []string, edges []Edge, k int, opts ...Option) Result {
	cfg := newConfig(opts...)
	r := reveal(vertices, edges, k)

	p := newPass(cfg.palette, len(r.order))
	for _, v := range r.order {
		p.assign(v, oppositeSide(r, v))
	}

	return p.result()
}

// oppositeSide returns the odd-depth side of v's component.
func oppositeSide(r *revealed, v string) []string {
	res, err := bfs.BFS(r.g, v)
	if err != nil {
		// v always exists in r.g
		return nil
	}
	_, b := res.Partition()
	return b
}
