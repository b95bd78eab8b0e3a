// Package mst: Kruskal's algorithm over core.Graph.
package mst

import (
	"sort"

	"github.com/mazespan/mazespan/core"
)

// Kruskal computes a minimum spanning tree by scanning edges in
// ascending weight order and joining components with union-find.
//
// Steps:
//  1. Validate: graph non-nil and weighted.
//  2. Snapshot vertices and edges (both deterministically ordered).
//  3. Stable-sort edges by weight; ties keep canonical (From,To) order,
//     so the result is reproducible for a fixed input.
//  4. Union-find with path compression and union by rank; accept edges
//     that join two components.
//  5. Fewer than |V|-1 accepted edges ⇒ ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if g == nil || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Snapshot the graph.
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		// Single vertex: the empty tree spans it.
		return []core.Edge{}, 0, nil
	}
	edges := g.Edges()

	// 3. Ascending weight, stable for ties.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find accept loop.
	uf := newUnionFind(vertices)
	tree := make([]core.Edge, 0, n-1)
	var total float64
	for _, e := range edges {
		if !uf.union(e.From, e.To) {
			continue // same component, would close a cycle
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	// 5. Spanning check.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// unionFind is a classic disjoint-set forest keyed by vertex ID.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(vertices []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(vertices)),
		rank:   make(map[string]int, len(vertices)),
	}
	for _, v := range vertices {
		uf.parent[v] = v
	}
	return uf
}

// find returns the set representative of v with path compression.
func (uf *unionFind) find(v string) string {
	root := v
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[v] != root {
		uf.parent[v], v = root, uf.parent[v]
	}
	return root
}

// union merges the sets of a and b; returns false when already joined.
func (uf *unionFind) union(a, b string) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	return true
}
