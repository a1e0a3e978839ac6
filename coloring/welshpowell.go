// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// welshpowell.go — Welsh-Powell as a color-class sweep.

package coloring

// WelshPowell sorts the revealed vertices like Greedy, then fills one color
// class at a time: for each palette token in order it sweeps the sorted
// list and gives the token to every still-uncolored vertex with no neighbor
// already holding it. The sweep visits vertices in the same order as
// Greedy, so both produce the same coloring; they stay separate entries so
// a comparison reports each.
//
// Complexity: O(P·(k + E)) for palette size P.
func WelshPowell(vertices []string, edges []Edge, k int, opts ...Option) Result {
	cfg := newConfig(opts...)
	r := reveal(vertices, edges, k)
	order := degreeOrder(r)

	col := make(Coloring, len(order))
	for i := 0; i < cfg.palette.Len() && len(col) < len(order); i++ {
		tok := cfg.palette.At(i)
		for _, v := range order {
			if _, done := col[v]; done {
				continue
			}
			if holdsToken(col, r.neighbors(v), tok) {
				continue
			}
			col[v] = tok
		}
	}

	var uncolored []string
	for _, v := range order {
		if _, ok := col[v]; !ok {
			uncolored = append(uncolored, v)
		}
	}

	return Result{
		Coloring:    col,
		TotalColors: col.Distinct(),
		Uncolored:   uncolored,
		Order:       order,
	}
}

// holdsToken reports whether any of ids is colored tok.
func holdsToken(col Coloring, ids []string, tok string) bool {
	for _, id := range ids {
		if col[id] == tok {
			return true
		}
	}
	return false
}
