// Package grid: lattice construction and coordinate helpers.
package grid

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mazespan/mazespan/core"
)

// Build constructs a rows×cols orthogonal lattice as a weighted
// core.Graph.
//
// Steps:
//  1. Validate dimensions and options (fail fast, no partial graph).
//  2. Add vertices row-major with IDs "r,c" and row/col metadata.
//  3. Emit edges per cell, right then bottom, drawing each weight from
//     the seeded generator.
//
// Error conditions:
//   - ErrBadDims      : rows < 1 or cols < 1.
//   - ErrNilWeightFn  : a nil WeightFn was configured.
//
// Complexity: O(rows·cols) time and space.
func Build(rows, cols int, opts ...Option) (*core.Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if rows < minDim || cols < minDim {
		return nil, fmt.Errorf("grid: rows=%d, cols=%d: %w", rows, cols, ErrBadDims)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	g := core.NewGraph(core.WithWeighted())

	// Vertices first, row-major, so insertion order never depends on
	// the edge walk below.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := ID(r, c)
			if err := g.AddVertex(id); err != nil {
				return nil, fmt.Errorf("grid: add vertex %s: %w", id, err)
			}
			v, err := g.Vertex(id)
			if err != nil {
				return nil, fmt.Errorf("grid: vertex %s: %w", id, err)
			}
			v.Metadata["row"] = r
			v.Metadata["col"] = c
		}
	}

	// Edges second: right neighbor, then bottom neighbor. One weight
	// draw per emitted edge keeps the stream aligned with the walk.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := ID(r, c)
			if c+1 < cols {
				v := ID(r, c+1)
				if err := g.AddEdge(u, v, cfg.weightFn(rng)); err != nil {
					return nil, fmt.Errorf("grid: add edge %s-%s: %w", u, v, err)
				}
			}
			if r+1 < rows {
				v := ID(r+1, c)
				if err := g.AddEdge(u, v, cfg.weightFn(rng)); err != nil {
					return nil, fmt.Errorf("grid: add edge %s-%s: %w", u, v, err)
				}
			}
		}
	}

	return g, nil
}

// ID composes the canonical cell ID "r,c".
func ID(r, c int) string {
	return fmt.Sprintf(idFmt, r, c)
}

// ParseID splits a canonical cell ID back into (row, col).
// Returns ErrBadID for anything that does not round-trip through ID.
func ParseID(id string) (int, int, error) {
	rs, cs, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("grid: parse %q: %w", id, ErrBadID)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return 0, 0, fmt.Errorf("grid: parse %q: %w", id, ErrBadID)
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return 0, 0, fmt.Errorf("grid: parse %q: %w", id, ErrBadID)
	}
	return r, c, nil
}

// Pos maps a cell ID to a plane position (x=col, y=-row), so row 0
// renders on top under the usual mathematical y-up convention.
func Pos(id string) (float64, float64, error) {
	r, c, err := ParseID(id)
	if err != nil {
		return 0, 0, err
	}
	return float64(c), -float64(r), nil
}

// Start returns the conventional entry cell "0,0".
func Start() string {
	return ID(0, 0)
}

// End returns the conventional exit cell "rows-1,cols-1".
func End(rows, cols int) string {
	return ID(rows-1, cols-1)
}

// Center returns the cell at (rows/2, cols/2), the default root for
// depth-bounded sampling.
func Center(rows, cols int) string {
	return ID(rows/2, cols/2)
}
