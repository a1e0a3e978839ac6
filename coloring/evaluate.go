// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// evaluate.go — conflict counting over the revealed edge set.

package coloring

// RevealedEdges returns the edges whose endpoints are both in
// vertices[0..k), normalized to bare IDs, in input order. Self-loops and
// repeated pairs are dropped. The result only grows as k grows.
func RevealedEdges(vertices []string, edges []Edge, k int) []Edge {
	r := reveal(vertices, edges, k)
	es := r.g.Edges()
	out := make([]Edge, 0, len(es))
	for _, e := range es {
		out = append(out, NewEdge(e.From, e.To))
	}
	return out
}

// Evaluate counts the edges whose two endpoints are both colored with the
// same token. Uncolored endpoints never conflict and self-loops are
// ignored. The check is diagnostic; no algorithm consults it.
func Evaluate(col Coloring, revealedEdges []Edge) Stats {
	st := Stats{TotalColors: col.Distinct()}
	for _, e := range revealedEdges {
		u, v := e.Endpoints()
		if u == v {
			continue
		}
		cu, okU := col[u]
		cv, okV := col[v]
		if okU && okV && cu == cv {
			st.Conflicts++
		}
	}
	return st
}

// Conflicting returns the edges Evaluate counts as conflicts, in order.
func Conflicting(col Coloring, revealedEdges []Edge) []Edge {
	var out []Edge
	for _, e := range revealedEdges {
		u, v := e.Endpoints()
		if u == v {
			continue
		}
		cu, okU := col[u]
		cv, okV := col[v]
		if okU && okV && cu == cv {
			out = append(out, e)
		}
	}
	return out
}

// Run executes fn and evaluates its coloring against the revealed edges.
func Run(fn Func, vertices []string, edges []Edge, k int, opts ...Option) (Result, Stats) {
	res := fn(vertices, edges, k, opts...)
	st := Evaluate(res.Coloring, RevealedEdges(vertices, edges, k))
	st.TotalColors = res.TotalColors
	return res, st
}
