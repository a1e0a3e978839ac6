// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphStats, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards vertices, order, edges and adjacency.
//   - nextEdgeID is advanced atomically so Clone can carry the sequence forward.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// edgeIDPrefix is the leading byte of every generated edge ID.
const edgeIDPrefix = 'e'

// Vertex represents a node in the graph.
//
// Index is the arrival position assigned when the vertex was added; it is
// stable for the lifetime of the vertex and only compacts on RemoveVertex.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the zero-based arrival position.
	Index int
}

// Edge represents an undirected connection between two vertices.
//
// From/To keep the orientation the caller used when adding the edge; the
// graph itself treats (From,To) and (To,From) as the same edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as supplied by the caller.
	From string

	// To is the second endpoint as supplied by the caller.
	To string

	// seq orders edges by insertion.
	seq uint64
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxDegree   int
	Isolated    int
}

// Graph is the core in-memory undirected graph.
//
// adjacency[u][v] holds the ID of the single edge joining u and v and is
// mirrored for v→u.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // arrival order of vertex IDs
	edges      map[string]*Edge   // edge ID → Edge

	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
