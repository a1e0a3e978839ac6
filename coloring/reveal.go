// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// reveal.go — builds the revealed sub-graph for one call and the pass state
// every algorithm colors into.

package coloring

import (
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/palette"
)

// revealed is the induced sub-graph on vertices[0..k).
type revealed struct {
	// order lists revealed vertex IDs in arrival order, without duplicates.
	order []string

	// g holds exactly the revealed vertices and the edges between them.
	g *core.Graph
}

// clampReveal bounds k to [0, n].
func clampReveal(k, n int) int {
	if k < 0 {
		return 0
	}
	if k > n {
		return n
	}
	return k
}

// reveal constructs the revealed sub-graph. Empty IDs, edges touching an
// unrevealed or unknown vertex, self-loops and parallel edges are dropped
// silently.
//
// Complexity: O(k + E).
func reveal(vertices []string, edges []Edge, k int) *revealed {
	k = clampReveal(k, len(vertices))
	g := core.NewGraph()
	for _, v := range vertices[:k] {
		if v == "" {
			continue
		}
		_ = g.AddVertex(v) // idempotent: a repeated ID keeps its first slot
	}
	for _, e := range edges {
		u, v := e.Endpoints()
		if !g.HasVertex(u) || !g.HasVertex(v) {
			continue
		}
		_, _ = g.AddEdge(u, v) // loops and parallel edges are rejected by the store
	}

	return &revealed{order: g.Vertices(), g: g}
}

// neighbors returns the revealed neighbors of v in arrival order.
func (r *revealed) neighbors(v string) []string {
	nbrs, _ := r.g.NeighborIDs(v)
	return nbrs
}

// pass accumulates one algorithm run. It is created fresh per call.
type pass struct {
	pal       palette.Palette
	coloring  Coloring
	order     []string
	uncolored []string
}

func newPass(p palette.Palette, n int) *pass {
	return &pass{
		pal:      p,
		coloring: make(Coloring, n),
		order:    make([]string, 0, n),
	}
}

// assign gives v the first token not held by any colored vertex in
// constraining. With the palette exhausted v stays uncolored.
func (p *pass) assign(v string, constraining []string) {
	used := make(map[string]bool, len(constraining))
	for _, u := range constraining {
		if tok, ok := p.coloring[u]; ok {
			used[tok] = true
		}
	}
	p.order = append(p.order, v)
	tok, ok := p.pal.FirstFree(func(t string) bool { return used[t] })
	if !ok {
		p.uncolored = append(p.uncolored, v)
		return
	}
	p.coloring[v] = tok
}

func (p *pass) result() Result {
	return Result{
		Coloring:    p.coloring,
		TotalColors: p.coloring.Distinct(),
		Uncolored:   p.uncolored,
		Order:       p.order,
	}
}
