// Package spantree: degree, path and depth queries plus validation.
package spantree

import (
	"fmt"
	"sort"

	"github.com/mazespan/mazespan/core"
)

// Degree returns the number of tree edges incident to id.
// Complexity: O(1).
func (t *Tree) Degree(id string) (int, error) {
	row, ok := t.adj[id]
	if !ok {
		return 0, fmt.Errorf("spantree: degree %s: %w", id, core.ErrVertexNotFound)
	}
	return len(row), nil
}

// DegreeCounts returns the tree's degree histogram: count[d] vertices
// have exactly d tree edges.
// Complexity: O(V).
func (t *Tree) DegreeCounts() map[int]int {
	counts := make(map[int]int)
	for _, row := range t.adj {
		counts[len(row)]++
	}
	return counts
}

// Neighbors returns the tree neighbors of id in ascending order.
// Complexity: O(deg log deg).
func (t *Tree) Neighbors(id string) ([]string, error) {
	row, ok := t.adj[id]
	if !ok {
		return nil, fmt.Errorf("spantree: neighbors %s: %w", id, core.ErrVertexNotFound)
	}
	ids := make([]string, 0, len(row))
	for v := range row {
		ids = append(ids, v)
	}
	sort.Strings(ids)
	return ids, nil
}

// Path returns the unique tree path from one vertex to another,
// inclusive of both endpoints, found by breadth-first search over tree
// edges. In a valid tree the result does not depend on traversal order.
//
// Errors: core.ErrVertexNotFound for unknown endpoints; ErrNotATree
// when no path exists (the structure is not connected).
//
// Complexity: O(V) for a tree.
func (t *Tree) Path(from, to string) ([]string, error) {
	if _, ok := t.adj[from]; !ok {
		return nil, fmt.Errorf("spantree: path from %s: %w", from, core.ErrVertexNotFound)
	}
	if _, ok := t.adj[to]; !ok {
		return nil, fmt.Errorf("spantree: path to %s: %w", to, core.ErrVertexNotFound)
	}
	if from == to {
		return []string{from}, nil
	}

	parent := map[string]string{from: from}
	queue := []string{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range t.adj[u] {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			if v == to {
				return rebuild(parent, from, to), nil
			}
			queue = append(queue, v)
		}
	}
	return nil, fmt.Errorf("spantree: no path %s-%s: %w", from, to, ErrNotATree)
}

// rebuild walks the parent map backwards from to and reverses.
func rebuild(parent map[string]string, from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DepthFrom returns the depth of every vertex below root (root is 0),
// by breadth-first search over tree edges. A vertex left unreached
// means the structure is not a spanning tree, and the query fails with
// ErrNotATree rather than returning a partial map.
//
// Complexity: O(V) for a tree.
func (t *Tree) DepthFrom(root string) (map[string]int, error) {
	if _, ok := t.adj[root]; !ok {
		return nil, fmt.Errorf("spantree: depth from %s: %w", root, core.ErrVertexNotFound)
	}
	depth := map[string]int{root: 0}
	queue := []string{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range t.adj[u] {
			if _, seen := depth[v]; seen {
				continue
			}
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}
	if len(depth) != len(t.adj) {
		return nil, fmt.Errorf("spantree: %d of %d vertices reachable from %s: %w",
			len(depth), len(t.adj), root, ErrNotATree)
	}
	return depth, nil
}

// MaxDepthFrom returns the depth of the deepest vertex below root.
func (t *Tree) MaxDepthFrom(root string) (int, error) {
	depth, err := t.DepthFrom(root)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, d := range depth {
		if d > max {
			max = d
		}
	}
	return max, nil
}

// Validate checks the full spanning-tree invariants:
//  1. exactly VertexCount-1 edges;
//  2. every vertex reachable from one (connectivity; with the count
//     this implies acyclicity);
//  3. every tree edge is a base edge.
//
// Complexity: O(V) for a tree.
func (t *Tree) Validate() error {
	n := len(t.adj)
	if n == 0 {
		return fmt.Errorf("spantree: empty state: %w", ErrNotATree)
	}
	if t.edgeCount != n-1 {
		return fmt.Errorf("spantree: %d edges for %d vertices: %w", t.edgeCount, n, ErrNotATree)
	}
	for u, row := range t.adj {
		for v := range row {
			if u < v && !t.base.HasEdge(u, v) {
				return fmt.Errorf("spantree: edge %s-%s: %w", u, v, ErrNotBaseEdge)
			}
		}
	}
	var start string
	for id := range t.adj {
		start = id
		break
	}
	if _, err := t.DepthFrom(start); err != nil {
		return err
	}
	return nil
}
