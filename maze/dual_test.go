package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/grid"
	"github.com/mazespan/mazespan/maze"
	"github.com/mazespan/mazespan/spantree"
)

func TestDual_HandBuilt(t *testing.T) {
	g, err := grid.Build(2, 2)
	require.NoError(t, err)
	tr, err := spantree.NewFromEdges(g, [][2]string{
		{"0,0", "0,1"}, {"0,0", "1,0"}, {"1,0", "1,1"},
	})
	require.NoError(t, err)

	walls, err := maze.Dual(g, tr)
	require.NoError(t, err)

	// The lone unused edge 0,1-1,1 becomes one vertical wall between
	// the columns.
	assert.Equal(t, 1, walls.EdgeCount())
	assert.True(t, walls.HasEdge("0.5,0.5", "0.5,1.5"))
}

func TestDual_FullTree(t *testing.T) {
	g, err := grid.Build(3, 4, grid.WithSeed(2))
	require.NoError(t, err)
	tr, err := spantree.New(g)
	require.NoError(t, err)

	walls, err := maze.Dual(g, tr)
	require.NoError(t, err)

	// Every base edge is either a passage or a wall.
	assert.Equal(t, g.EdgeCount()-tr.EdgeCount(), walls.EdgeCount())
	for _, e := range tr.Edges() {
		assert.True(t, g.HasEdge(e[0], e[1]))
	}
}

func TestDual_Errors(t *testing.T) {
	g, err := grid.Build(2, 2)
	require.NoError(t, err)
	tr, err := spantree.New(g)
	require.NoError(t, err)

	_, err = maze.Dual(nil, tr)
	require.ErrorIs(t, err, core.ErrNilGraph)
	_, err = maze.Dual(g, nil)
	require.ErrorIs(t, err, maze.ErrNilTree)
}

func TestBoundary_Segments(t *testing.T) {
	walls := core.NewGraph()
	require.NoError(t, maze.Boundary(walls, 2, 2))

	// 2(rows+cols)-2 segments on a 2x2 grid.
	assert.Equal(t, 6, walls.EdgeCount())

	assert.True(t, walls.HasEdge("-0.5,0.5", "-0.5,1.5"), "top right of the entry gap")
	assert.False(t, walls.HasEdge("-0.5,-0.5", "-0.5,0.5"), "entry gap stays open")
	assert.True(t, walls.HasEdge("1.5,-0.5", "1.5,0.5"), "bottom left of the exit gap")
	assert.False(t, walls.HasEdge("1.5,0.5", "1.5,1.5"), "exit gap stays open")
	assert.True(t, walls.HasEdge("-0.5,-0.5", "0.5,-0.5"))
	assert.True(t, walls.HasEdge("0.5,-0.5", "1.5,-0.5"))
	assert.True(t, walls.HasEdge("-0.5,1.5", "0.5,1.5"))
	assert.True(t, walls.HasEdge("0.5,1.5", "1.5,1.5"))
}

func TestBoundary_Errors(t *testing.T) {
	require.ErrorIs(t, maze.Boundary(nil, 2, 2), core.ErrNilGraph)
	require.ErrorIs(t, maze.Boundary(core.NewGraph(), 0, 2), grid.ErrBadDims)
	require.ErrorIs(t, maze.Boundary(core.NewGraph(), 2, -1), grid.ErrBadDims)
}

func TestWallPos(t *testing.T) {
	x, y, err := maze.WallPos("0.5,-0.5")
	require.NoError(t, err)
	assert.Equal(t, -0.5, x)
	assert.Equal(t, -0.5, y)

	x, y, err = maze.WallPos("2.5,1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, x)
	assert.Equal(t, -2.5, y)

	_, _, err = maze.WallPos("zigzag")
	require.ErrorIs(t, err, grid.ErrBadID)
	_, _, err = maze.WallPos("a,b")
	require.ErrorIs(t, err, grid.ErrBadID)
}
