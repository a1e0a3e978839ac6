// File: view.go
// Role: Non-mutating graph views (induced sub-graph, deep clone).
// Determinism:
//   - Preserves vertex arrival order, edge IDs and edge insertion order.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set keep: the result
// contains only vertices v where keep[v] is true, in their original arrival
// order, and every edge whose endpoints are both kept. The input graph is not
// mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return g.copyWhere(func(id string) bool { return keep[id] })
}

// Clone returns a deep copy of g, carrying the edge ID sequence forward so
// edges added to the clone never collide with IDs already issued by g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.copyWhere(func(string) bool { return true })
}

// copyWhere builds a new graph from the vertices accepted by keep.
func (g *Graph) copyWhere(keep func(id string) bool) *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range g.order {
		if keep(id) {
			out.addVertexLocked(id)
		}
	}

	for eid, e := range g.edges {
		if !keep(e.From) || !keep(e.To) {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, seq: e.seq}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}

	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}
