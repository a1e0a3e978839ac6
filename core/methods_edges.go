// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgeBetween/HasEdge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// AddEdge inserts the undirected edge from–to and returns its ID.
// Missing endpoints are created on the fly, from before to.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Lock mu, create missing endpoints.
//  3. Reject the edge if from–to already exists in either orientation.
//  4. Generate eid atomically, store it and mirror the adjacency entry.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, seq: seq}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes one edge by ID.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// RemoveEdgeBetween deletes the edge joining u and v regardless of the
// orientation it was added with.
//
// Errors:
//   - ErrEdgeNotFound if u and v are not adjacent.
func (g *Graph) RemoveEdgeBetween(u, v string) error {
	g.mu.RLock()
	eid, ok := g.adjacency[u][v]
	g.mu.RUnlock()
	if !ok {
		return ErrEdgeNotFound
	}

	return g.RemoveEdge(eid)
}

// HasEdge reports whether u and v are adjacent. Orientation is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// GetEdge returns the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	cp := *e

	return &cp, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID and its sequence number.
//
// Determinism:
//   - Uses a monotonic uint64 counter incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) (string, uint64) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
