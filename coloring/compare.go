// SPDX-License-Identifier: MIT
// Package: lvcolor/coloring
//
// compare.go — side-by-side runs of every registered algorithm.

package coloring

// Entry is one algorithm's outcome inside a Comparison.
type Entry struct {
	Algorithm string `json:"algorithm"`
	Title     string `json:"title"`
	Stats
}

// Comparison holds one Entry per algorithm in registry order.
type Comparison struct {
	Entries []Entry `json:"entries"`
}

// Get returns the entry for name (exact registry key).
func (c Comparison) Get(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Algorithm == name {
			return e, true
		}
	}
	return Entry{}, false
}

// ByName returns the entries keyed by registry name.
func (c Comparison) ByName() map[string]Stats {
	out := make(map[string]Stats, len(c.Entries))
	for _, e := range c.Entries {
		out[e.Algorithm] = e.Stats
	}
	return out
}

// Best returns the entries sharing the fewest conflicts and, among those,
// the fewest colors, in registry order.
func (c Comparison) Best() []Entry {
	var best []Entry
	for _, e := range c.Entries {
		switch {
		case len(best) == 0:
			best = append(best, e)
		case e.Conflicts < best[0].Conflicts ||
			(e.Conflicts == best[0].Conflicts && e.TotalColors < best[0].TotalColors):
			best = append(best[:0], e)
		case e.Conflicts == best[0].Conflicts && e.TotalColors == best[0].TotalColors:
			best = append(best, e)
		}
	}
	return best
}

// Compare runs every registered algorithm on the same (vertices, edges, k)
// and evaluates each coloring on its own. Runs share no state.
func Compare(vertices []string, edges []Edge, k int, opts ...Option) Comparison {
	revealedEdges := RevealedEdges(vertices, edges, k)
	out := Comparison{Entries: make([]Entry, 0, len(registry))}
	for _, a := range registry {
		res := a.Fn(vertices, edges, k, opts...)
		st := Evaluate(res.Coloring, revealedEdges)
		out.Entries = append(out.Entries, Entry{
			Algorithm: a.Name,
			Title:     a.Title,
			Stats:     Stats{TotalColors: res.TotalColors, Conflicts: st.Conflicts},
		})
	}
	return out
}
