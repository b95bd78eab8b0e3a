// Package spantree models the state of a spanning-tree sampling chain:
// a tree T over a fixed base graph G, mutated one edge swap at a time.
//
// A Tree stores edge membership only. Weights stay on the base graph:
// they matter for seeding, never for the chain itself. After every
// complete operation the structure satisfies the spanning-tree
// invariants:
//
//   - EdgeCount() == VertexCount() - 1
//   - connected (hence acyclic)
//   - every tree edge is an edge of the base graph
//
// Validate checks all three. AddEdge and RemoveEdge deliberately check
// only local preconditions (endpoints known, membership, base edge), so
// a proposal may pass through the intermediate two-component state and
// then restore the invariants; that intermediate state is visible only
// to the code performing the swap.
//
// Queries are what downstream consumers need from a sampled tree:
// membership (HasEdge), Degree and DegreeCounts for degree-bounded
// energies, Path (the unique tree path, by BFS) and DepthFrom /
// MaxDepthFrom for depth-bounded energies and maze solutions.
//
// Trees are not safe for concurrent use. A chain is one logical
// thread; the tree belongs to that thread.
//
// Construction:
//
//	t, err := spantree.New(g)                  // Kruskal seed
//	t, err := spantree.NewFromEdges(g, edges)  // explicit state
package spantree
