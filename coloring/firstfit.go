// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// firstfit.go — FirstFit: online coloring in strict arrival order.

package coloring

// FirstFit colors vertices[0..k) in arrival order. Each vertex takes the
// first palette token not used by its pre-neighborhood, the revealed
// neighbors that arrived before it. Later neighbors never constrain it, so
// a vertex keeps its color for every larger k.
//
// Complexity: O(k·d + E) for maximum revealed degree d.
func FirstFit(vertices []string, edges []Edge, k int, opts ...Option) Result {
	cfg := newConfig(opts...)
	r := reveal(vertices, edges, k)

	p := newPass(cfg.palette, len(r.order))
	for _, v := range r.order {
		pre, _ := r.g.EarlierNeighborIDs(v)
		p.assign(v, pre)
	}

	return p.result()
}
