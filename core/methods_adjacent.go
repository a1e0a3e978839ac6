// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, EarlierNeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs ordered by arrival position.
//   - AdjacencyList() slices follow the same order.
package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, ordered by arrival position.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.neighborsLocked(id), nil
}

// EarlierNeighborIDs returns the neighbors of id that arrived before it,
// ordered by arrival position.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) EarlierNeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	all := g.neighborsLocked(id)
	out := all[:0]
	for _, nbr := range all {
		if g.vertices[nbr].Index < v.Index {
			out = append(out, nbr)
		}
	}

	return out, nil
}

// AdjacencyList returns a snapshot mapping each vertex to its neighbor IDs.
// Slices are freshly allocated and ordered by arrival position.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for _, id := range g.order {
		out[id] = g.neighborsLocked(id)
	}

	return out
}

// neighborsLocked collects and orders the neighbors of id. Caller holds mu.
func (g *Graph) neighborsLocked(id string) []string {
	adj := g.adjacency[id]
	ids := make([]string, 0, len(adj))
	for nbr := range adj {
		ids = append(ids, nbr)
	}
	sort.Slice(ids, func(i, j int) bool {
		return g.vertices[ids[i]].Index < g.vertices[ids[j]].Index
	})

	return ids
}
