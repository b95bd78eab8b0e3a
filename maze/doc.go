// Package maze assembles grid mazes from sampled spanning trees.
//
// A maze is a spanning tree of a rows×cols lattice rendered on the
// dual lattice: the tree edges are corridors between cells, and every
// base edge the tree does not use becomes a wall segment crossing it.
// The unique tree path from the entry cell "0,0" to the exit cell
// "rows-1,cols-1" is the maze solution.
//
// # Generators
//
//	m, err := maze.Generate(25, 25, maze.WithSeed(42), maze.WithBoundary())
//
// Generate stops at the seed tree (Kruskal by default, Prim via
// WithSeedMethod): the classic randomized-MST maze. GenerateLowDegree
// anneals the tree under the bounded-degree energy first, trading
// branchy junctions for long corridors (β=10, one phase of 100
// iterations by default). GenerateBoundedDepth anneals under the
// bounded-depth energy with the grid center as default root, keeping
// every cell within a few turns of the middle.
//
// # Coordinates
//
// Cells sit on the integer lattice with IDs "r,c"; wall endpoints sit
// on the half-unit dual lattice with IDs like "0.5,-0.5". Positions
// maps both families onto the plane as (x=column, y=-row), one
// consistent frame for downstream consumers.
//
// # Determinism
//
// One seed drives everything: SplitMix64 derivation splits it into a
// grid-weight stream and a chain stream, so a fixed seed reproduces
// the grid, the tree, the walls and the solution exactly.
package maze
