// Package core provides the thread-safe, in-memory undirected Graph that the
// coloring engine uses as its induced sub-graph store.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Arrival order: every vertex remembers the position at which it was
//     added. Vertices() and NeighborIDs() enumerate in that order, so an
//     algorithm that walks the graph sees vertices exactly as they arrived.
//   - Monotonic textual edge IDs ("e1", "e2", …) generated atomically.
//   - A single sync.RWMutex guards the vertex catalog, the edge catalog and
//     the adjacency sets.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(V + deg(v))
//	Position(id string) (int, bool)     // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error     // O(1)
//	RemoveEdgeBetween(u, v string) error
//	HasEdge(u, v string) bool           // O(1)
//
//	// Queries
//	Vertices() []string                 // arrival order
//	Edges() []*Edge                     // insertion order
//	NeighborIDs(id string) ([]string, error) // arrival order
//	Degree(id string) (int, error)
//	Stats() GraphStats
//
//	// Views
//	InducedSubgraph(g, keep) *Graph
//	Clone() *Graph
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed - AddEdge(u, v) when u–v (in either direction) exists.
package core
