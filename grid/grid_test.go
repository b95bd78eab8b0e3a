// Package grid_test verifies lattice shape, weight policies,
// determinism and the coordinate helpers.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/grid"
)

const testSeed int64 = 42

func TestBuild_Shape(t *testing.T) {
	const rows, cols = 3, 4
	g, err := grid.Build(rows, cols, grid.WithSeed(testSeed))
	require.NoError(t, err)

	// V = rows·cols, E = rows·(cols-1) + (rows-1)·cols.
	assert.Equal(t, rows*cols, g.VertexCount())
	assert.Equal(t, rows*(cols-1)+(rows-1)*cols, g.EdgeCount())

	// Interior cell has 4 neighbors, corner has 2.
	deg, err := g.Degree(grid.ID(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
	deg, err = g.Degree(grid.ID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	// Only orthogonal links exist.
	assert.True(t, g.HasEdge(grid.ID(0, 0), grid.ID(0, 1)))
	assert.True(t, g.HasEdge(grid.ID(0, 0), grid.ID(1, 0)))
	assert.False(t, g.HasEdge(grid.ID(0, 0), grid.ID(1, 1)))

	// Metadata carries the coordinates.
	v, err := g.Vertex(grid.ID(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, v.Metadata["row"])
	assert.Equal(t, 3, v.Metadata["col"])
}

func TestBuild_SingleCell(t *testing.T) {
	g, err := grid.Build(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuild_BadDims(t *testing.T) {
	_, err := grid.Build(0, 5)
	assert.ErrorIs(t, err, grid.ErrBadDims)
	_, err = grid.Build(5, -1)
	assert.ErrorIs(t, err, grid.ErrBadDims)
}

func TestBuild_NilWeightFn(t *testing.T) {
	_, err := grid.Build(2, 2, grid.WithWeightFn(nil))
	assert.ErrorIs(t, err, grid.ErrNilWeightFn)
}

func TestBuild_WeightPolicies(t *testing.T) {
	// Default weights live in [0,1).
	g, err := grid.Build(4, 4, grid.WithSeed(testSeed))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.Less(t, e.Weight, 1.0)
	}

	// Constant weights are exact.
	g, err = grid.Build(3, 3, grid.WithConstWeight(2.5))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	// Uniform weights respect the interval.
	g, err = grid.Build(4, 4, grid.WithSeed(testSeed), grid.WithUniformWeight(1, 3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 3.0)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := grid.Build(5, 5, grid.WithSeed(testSeed))
	require.NoError(t, err)
	b, err := grid.Build(5, 5, grid.WithSeed(testSeed))
	require.NoError(t, err)

	// Same seed, same lattice, edge for edge.
	assert.Equal(t, a.Edges(), b.Edges())

	// Seed 0 falls back to the package default and stays reproducible.
	c, err := grid.Build(5, 5)
	require.NoError(t, err)
	d, err := grid.Build(5, 5, grid.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, c.Edges(), d.Edges())

	// A different seed changes at least one weight.
	e, err := grid.Build(5, 5, grid.WithSeed(testSeed+1))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges(), e.Edges())
}

func TestIDHelpers(t *testing.T) {
	id := grid.ID(7, 12)
	assert.Equal(t, "7,12", id)

	r, c, err := grid.ParseID(id)
	require.NoError(t, err)
	assert.Equal(t, 7, r)
	assert.Equal(t, 12, c)

	for _, bad := range []string{"", "7", "a,b", "1,2,3", "1;2"} {
		_, _, err := grid.ParseID(bad)
		assert.ErrorIs(t, err, grid.ErrBadID, "id=%q", bad)
	}

	x, y, err := grid.Pos("2,3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, -2.0, y)

	assert.Equal(t, "0,0", grid.Start())
	assert.Equal(t, "8,8", grid.End(9, 9))
	assert.Equal(t, "4,4", grid.Center(9, 9))
	assert.Equal(t, "2,2", grid.Center(4, 4))
}

func TestBuild_GraphIsWeightedCore(t *testing.T) {
	g, err := grid.Build(2, 2, grid.WithSeed(testSeed))
	require.NoError(t, err)
	assert.True(t, g.Weighted())

	// The result is a plain core.Graph: mutable downstream.
	require.NoError(t, g.RemoveEdge(grid.ID(0, 0), grid.ID(0, 1)))
	assert.Equal(t, 3, g.EdgeCount())
	_, err = g.EdgeWeight(grid.ID(0, 0), grid.ID(0, 1))
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
