// Package core defines the fundamental graph container shared by every
// other package in mazespan: an undirected simple graph with string
// vertex IDs and float64 edge weights.
//
// The container is deliberately small. It stores vertices, edges and
// per-vertex metadata, answers membership/degree/neighbor queries, and
// guarantees deterministic ordering on every listing operation (sorted
// vertex IDs, canonical From<To edges). Algorithms live elsewhere:
// seed trees in mst, chain state in spantree, sampling in mcmc.
//
// Concurrency: all exported methods are safe for concurrent use via a
// single RWMutex. The sampling pipeline itself is single-threaded; the
// lock is a container-level guarantee, not a concurrency invitation.
//
// Weights: a graph constructed with WithWeighted accepts arbitrary
// non-negative float64 weights. An unweighted graph accepts only zero
// weights and reports ErrUnweighted otherwise, so weight-free layers
// (the maze dual lattice) cannot silently grow weight semantics.
//
// Typical construction:
//
//	g := core.NewGraph(core.WithWeighted())
//	_ = g.AddEdge("0,0", "0,1", 0.37)
//	_ = g.AddEdge("0,0", "1,0", 0.82)
//	deg, _ := g.Degree("0,0") // 2
package core
