// Package core: type definitions, sentinel errors and construction options.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Graph operations. Callers branch with errors.Is.
var (
	// ErrNilGraph is returned when a nil *Graph is handed to a consumer.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID is returned when a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: empty vertex ID")

	// ErrVertexNotFound is returned when an operation names an absent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop is returned when an edge would connect a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrEdgeExists is returned when adding an edge that is already present.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound is returned when an operation names an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight is returned when an edge weight is below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrUnweighted is returned when a non-zero weight reaches an
	// unweighted graph.
	ErrUnweighted = errors.New("core: non-zero weight on unweighted graph")
)

// Vertex is a node in the graph. Metadata carries optional per-vertex
// attributes (grid row/column, layout hints); the map is owned by the
// graph and deep-copied on Clone.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is a value snapshot of one undirected edge. Listings return edges
// in canonical orientation (From < To lexicographically).
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is an undirected simple graph: no self-loops, no multi-edges.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu        sync.RWMutex
	weighted  bool
	vertices  map[string]*Vertex
	adjacency map[string]map[string]float64
	edgeCount int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithWeighted enables non-negative float64 edge weights. Without it the
// graph accepts only zero-weight edges.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// NewGraph returns an empty graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Weighted reports whether the graph was built with WithWeighted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.weighted
}
