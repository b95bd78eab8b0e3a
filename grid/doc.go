// Package grid builds the rectangular lattices that the sampling
// pipeline runs on: rows×cols orthogonal grids with 4-neighborhood
// connectivity and i.i.d. random edge weights.
//
// Canonical model:
//   - Vertex IDs use the fixed scheme "r,c" (row-major order), so a
//     cell's coordinates stay readable in logs, traces and tests.
//   - Each cell links to its right (r,c+1) and bottom (r+1,c) neighbor
//     where they exist; the result is connected and simple.
//   - Weights default to Uniform[0,1); randomized weights are what make
//     the minimum spanning tree of the lattice a random maze.
//
// Determinism:
//   - Vertices are added row-major (r ascending, then c), edges emitted
//     right-then-bottom per cell, weights drawn from a single seeded
//     generator. A fixed seed reproduces the lattice exactly.
//
// Construction:
//
//	g, err := grid.Build(9, 9, grid.WithSeed(42))
//
// Helpers translate between IDs and coordinates (ID, ParseID), expose
// plane positions for downstream layout (Pos, with y negated so row 0
// sits on top), and name the conventional cells (Start, End, Center).
package grid
