// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// greedy.go — degree-sorted Greedy and the shared degree ordering.

package coloring

import (
	"cmp"
	"slices"
)

// Greedy colors the revealed sub-graph in descending degree order (ties keep
// arrival order). Each vertex takes the first token unused by neighbors
// already processed in this pass, regardless of when they arrived.
//
// Because the ordering is recomputed on every call, a revealed vertex may
// change color as k grows.
//
// Complexity: O(k log k + k·d + E).
func Greedy(vertices []string, edges []Edge, k int, opts ...Option) Result {
	cfg := newConfig(opts...)
	r := reveal(vertices, edges, k)

	p := newPass(cfg.palette, len(r.order))
	for _, v := range degreeOrder(r) {
		p.assign(v, r.neighbors(v))
	}

	return p.result()
}

// degreeOrder returns the revealed vertices sorted by descending degree in
// the revealed sub-graph; the stable sort keeps arrival order on ties.
func degreeOrder(r *revealed) []string {
	deg := make(map[string]int, len(r.order))
	for _, v := range r.order {
		deg[v], _ = r.g.Degree(v)
	}
	out := slices.Clone(r.order)
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(deg[b], deg[a])
	})
	return out
}
