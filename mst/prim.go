// Package mst: Prim's algorithm over core.Graph.
package mst

import (
	"container/heap"

	"github.com/mazespan/mazespan/core"
)

// Prim computes a minimum spanning tree by growing outward from root
// with a min-heap of frontier edges.
//
// Steps:
//  1. Validate: graph non-nil and weighted; root non-empty and present.
//  2. Single-vertex graphs yield the trivial empty tree.
//  3. Mark root visited, push its incident edges.
//  4. Pop the lightest frontier edge; skip if the far endpoint is
//     already in the tree, otherwise accept it and push that endpoint's
//     edges. Heap ties break on canonical (From,To) order for
//     reproducibility.
//  5. Fewer than |V|-1 accepted edges ⇒ ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if g == nil || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 2. Trivial tree.
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Seed the frontier from the root.
	visited := make(map[string]bool, n)
	visited[root] = true
	pq := &edgeHeap{}
	heap.Init(pq)
	rootEdges, err := g.Neighbors(root)
	if err != nil {
		return nil, 0, err
	}
	for _, e := range rootEdges {
		heap.Push(pq, e)
	}

	// 4. Grow until the tree spans or the frontier runs dry.
	tree := make([]core.Edge, 0, n-1)
	var total float64
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight

		next, err := g.Neighbors(e.To)
		if err != nil {
			return nil, 0, err
		}
		for _, ne := range next {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 5. Spanning check.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgeHeap is a min-heap of frontier edges ordered by weight, with
// canonical (From,To) order breaking ties.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}
	if h[i].From != h[j].From {
		return h[i].From < h[j].From
	}
	return h[i].To < h[j].To
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
