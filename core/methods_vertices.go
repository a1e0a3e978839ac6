// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in arrival order.
//
// Concurrency:
//   - Vertex catalog and adjacency protected by mu.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register the vertex at the next arrival
//     position and bootstrap its adjacency set.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op and keeps its position.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if absent. Caller holds mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Index: len(g.order)}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Position returns the arrival position of id.
// The boolean is false when the vertex does not exist.
func (g *Graph) Position(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, false
	}

	return v.Index, true
}

// RemoveVertex deletes the vertex and every incident edge, then compacts the
// arrival positions of the vertices that came after it.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(V + deg(v)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}

	// Drop incident edges from both adjacency sides.
	for nbr, eid := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		delete(g.edges, eid)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	// Compact arrival order.
	g.order = append(g.order[:v.Index], g.order[v.Index+1:]...)
	for i := v.Index; i < len(g.order); i++ {
		g.vertices[g.order[i]].Index = i
	}

	return nil
}

// Vertices returns all vertex IDs in arrival order.
// The returned slice is freshly allocated.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, id := range g.order {
		d := len(g.adjacency[id])
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return stats
}
