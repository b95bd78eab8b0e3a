// Package mazespan generates mazes by sampling random spanning trees of
// grid graphs with a Metropolis Markov chain and simulated annealing.
//
// 🚀 What is mazespan?
//
//	A library that treats maze generation as distribution sampling:
//		• Core primitives: undirected weighted graphs with string vertex IDs
//		• Lattices: rectangular grids with i.i.d. random edge weights
//		• Seed trees: Kruskal & Prim minimum spanning trees
//		• Chain state: spanning trees with degree, path and depth queries
//		• Sampler: edge-swap Metropolis proposals over the tree space
//		• Energies: bounded-degree and bounded-depth penalties
//		• Annealing: phased β schedules with per-phase statistics
//		• Mazes: dual-lattice walls, boundary, entry/exit and solution path
//
// ✨ Why choose mazespan?
//
//   - Reproducible – one seed drives weights, proposals and acceptance
//   - Honest errors – sentinel errors, no panics on bad input
//   - Observable – chain traces with summaries, CSV/JSONL export
//   - Declarative – TOML recipes bake a maze in one call
//
// Everything is organized under focused subpackages:
//
//	core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	grid/     — rectangular lattice builder with weight functions
//	mst/      — Kruskal & Prim seed trees
//	spantree/ — spanning-tree chain state and validation
//	mcmc/     — energies, proposals, Metropolis sampler, annealing
//	trace/    — chain traces, summaries and export
//	maze/     — dual-lattice assembly: walls, boundary, solution
//	recipe/   — TOML front door for the whole pipeline
//
// Quick ASCII example (3×3 grid, one sampled spanning tree, its maze):
//
//	0,0─0,1─0,2        ┌───────┐
//	 │                 │ ╶─┐ ╷ │
//	1,0─1,1─1,2   ⇒    │ ╷ │ │ │
//	 │       │         │ │ ╵ │ │
//	2,0─2,1─2,2        └───────┘
//
//	tree edges become corridors; every non-tree lattice edge
//	becomes a wall segment on the dual lattice.
//
// Dive into the subpackage docs for the sampler contract, energy
// definitions and annealing schedules.
//
//	go get github.com/mazespan/mazespan
package mazespan
