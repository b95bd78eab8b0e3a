// Package spantree: Tree construction and edge mutation.
package spantree

import (
	"fmt"
	"sort"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/mst"
)

// Tree is a spanning tree over a base graph, stored as an adjacency set.
// The zero value is not usable; construct with New or NewFromEdges.
type Tree struct {
	base      *core.Graph
	adj       map[string]map[string]struct{}
	edgeCount int
}

// New seeds a chain state from the minimum spanning tree of base
// (Kruskal). A disconnected or unweighted base fails here, before any
// sampling starts.
func New(base *core.Graph) (*Tree, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	seed, _, err := mst.Kruskal(base)
	if err != nil {
		return nil, fmt.Errorf("spantree: seed: %w", err)
	}
	t := emptyState(base)
	for _, e := range seed {
		if err := t.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("spantree: seed edge %s-%s: %w", e.From, e.To, err)
		}
	}
	return t, nil
}

// NewFromEdges builds an explicit tree state from an edge list, then
// validates the full spanning-tree invariants. Useful for replaying
// recorded states and for seeding from another algorithm's output.
func NewFromEdges(base *core.Graph, edges [][2]string) (*Tree, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	t := emptyState(base)
	for _, e := range edges {
		if err := t.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("spantree: edge %s-%s: %w", e[0], e[1], err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// emptyState allocates an edgeless tree with a row per base vertex, so
// every base vertex is a tree vertex from the start.
func emptyState(base *core.Graph) *Tree {
	ids := base.Vertices()
	adj := make(map[string]map[string]struct{}, len(ids))
	for _, id := range ids {
		adj[id] = make(map[string]struct{})
	}
	return &Tree{base: base, adj: adj}
}

// Base returns the graph this tree spans.
func (t *Tree) Base() *core.Graph { return t.base }

// VertexCount returns the number of vertices (same as the base graph).
func (t *Tree) VertexCount() int { return len(t.adj) }

// EdgeCount returns the number of tree edges.
func (t *Tree) EdgeCount() int { return t.edgeCount }

// HasEdge reports whether (u,v) is a tree edge.
// Complexity: O(1).
func (t *Tree) HasEdge(u, v string) bool {
	_, ok := t.adj[u][v]
	return ok
}

// AddEdge puts the base edge (u,v) into the tree.
//
// Preconditions (local only, so swaps may pass through forest states):
//   - both endpoints are base vertices   → core.ErrVertexNotFound
//   - (u,v) is an edge of the base graph → ErrNotBaseEdge
//   - (u,v) is not already a tree edge   → ErrEdgePresent
//
// Complexity: O(1).
func (t *Tree) AddEdge(u, v string) error {
	if _, ok := t.adj[u]; !ok {
		return fmt.Errorf("spantree: add %s-%s: %w", u, v, core.ErrVertexNotFound)
	}
	if _, ok := t.adj[v]; !ok {
		return fmt.Errorf("spantree: add %s-%s: %w", u, v, core.ErrVertexNotFound)
	}
	if !t.base.HasEdge(u, v) {
		return fmt.Errorf("spantree: add %s-%s: %w", u, v, ErrNotBaseEdge)
	}
	if _, ok := t.adj[u][v]; ok {
		return fmt.Errorf("spantree: add %s-%s: %w", u, v, ErrEdgePresent)
	}
	t.adj[u][v] = struct{}{}
	t.adj[v][u] = struct{}{}
	t.edgeCount++
	return nil
}

// RemoveEdge takes (u,v) out of the tree. Vertices always stay.
// Complexity: O(1).
func (t *Tree) RemoveEdge(u, v string) error {
	if _, ok := t.adj[u][v]; !ok {
		return fmt.Errorf("spantree: remove %s-%s: %w", u, v, ErrEdgeMissing)
	}
	delete(t.adj[u], v)
	delete(t.adj[v], u)
	t.edgeCount--
	return nil
}

// Vertices returns all vertex IDs in ascending order.
func (t *Tree) Vertices() []string {
	ids := make([]string, 0, len(t.adj))
	for id := range t.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Edges returns every tree edge once, canonical ([0] < [1]) and sorted.
// Complexity: O(V log V) for a tree.
func (t *Tree) Edges() [][2]string {
	edges := make([][2]string, 0, t.edgeCount)
	for u, row := range t.adj {
		for v := range row {
			if u < v {
				edges = append(edges, [2]string{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// Clone duplicates the tree state. The base graph is shared, not
// copied: clones are alternative states over the same immutable base.
func (t *Tree) Clone() *Tree {
	adj := make(map[string]map[string]struct{}, len(t.adj))
	for u, row := range t.adj {
		dup := make(map[string]struct{}, len(row))
		for v := range row {
			dup[v] = struct{}{}
		}
		adj[u] = dup
	}
	return &Tree{base: t.base, adj: adj, edgeCount: t.edgeCount}
}
