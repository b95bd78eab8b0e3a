package mcmc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/grid"
	"github.com/mazespan/mazespan/mcmc"
	"github.com/mazespan/mazespan/spantree"
)

// serpentine is the boustrophedon spanning tree of a 3×3 grid: one
// corridor from 0,0 to 2,2, no vertex above degree 2.
var serpentine = [][2]string{
	{"0,0", "0,1"}, {"0,1", "0,2"},
	{"0,2", "1,2"}, {"1,1", "1,2"},
	{"1,0", "1,1"}, {"1,0", "2,0"},
	{"2,0", "2,1"}, {"2,1", "2,2"},
}

// crossed is a 3×3 spanning tree with a degree-4 hub at 1,1 and
// degree-3 vertices at 0,1 and 2,1.
var crossed = [][2]string{
	{"1,1", "0,1"}, {"1,1", "1,0"}, {"1,1", "1,2"}, {"1,1", "2,1"},
	{"0,1", "0,0"}, {"0,1", "0,2"},
	{"2,1", "2,0"}, {"2,1", "2,2"},
}

// treeFromEdges pins a 3×3 grid spanning tree to an explicit edge set.
func treeFromEdges(t *testing.T, edges [][2]string) *spantree.Tree {
	t.Helper()
	g, err := grid.Build(3, 3)
	require.NoError(t, err)
	tr, err := spantree.NewFromEdges(g, edges)
	require.NoError(t, err)
	return tr
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bounded-degree", mcmc.KindBoundedDegree.String())
	assert.Equal(t, "bounded-depth", mcmc.KindBoundedDepth.String())
	assert.Equal(t, "kind(99)", mcmc.Kind(99).String())
}

func TestBoundedDegree_Violations(t *testing.T) {
	corridor := treeFromEdges(t, serpentine)
	hub := treeFromEdges(t, crossed)

	tests := []struct {
		name string
		tree *spantree.Tree
		d    int
		want int
	}{
		{"corridor has no branching", corridor, 3, 0},
		{"hub tree branches three times", hub, 3, 3},
		{"only the hub reaches degree four", hub, 4, 1},
		{"bound one counts every vertex", hub, 1, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mcmc.BoundedDegree(tc.d).Violations(tc.tree)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBoundedDepth_Violations(t *testing.T) {
	corridor := treeFromEdges(t, serpentine)
	hub := treeFromEdges(t, crossed)

	tests := []struct {
		name     string
		tree     *spantree.Tree
		root     string
		k        int
		want     int
		maxDepth int
	}{
		{"corner root sees the full corridor", corridor, "0,0", 5, 3, 8},
		{"center root halves the corridor", corridor, "1,1", 5, 0, 4},
		{"hub tree is shallow", hub, "1,1", 1, 4, 2},
		{"bound zero spares only the root", hub, "1,1", 0, 8, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := mcmc.BoundedDepth(tc.root, tc.k)

			got, err := e.Violations(tc.tree)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			obs, err := e.Observe(tc.tree, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.maxDepth, obs.MaxDepth)
		})
	}
}

func TestEnergy_LogProbScalesWithBeta(t *testing.T) {
	hub := treeFromEdges(t, crossed)
	e := mcmc.BoundedDegree(3) // 3 violations on the hub tree

	for _, beta := range []float64{0, 1, 2.5, 10} {
		lp, err := e.LogProb(hub, beta)
		require.NoError(t, err)
		assert.InDelta(t, -3*beta, lp, 1e-12, "beta=%g", beta)
	}
}

func TestEnergy_Observe(t *testing.T) {
	hub := treeFromEdges(t, crossed)

	obs, err := mcmc.BoundedDegree(3).Observe(hub, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, obs.Violations)
	assert.InDelta(t, -6.0, obs.Energy, 1e-12)
	assert.Zero(t, obs.MaxDepth, "degree variant leaves MaxDepth unset")

	obs, err = mcmc.BoundedDepth("0,0", 5).Observe(treeFromEdges(t, serpentine), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, obs.Violations)
	assert.InDelta(t, -3.0, obs.Energy, 1e-12)
	assert.Equal(t, 8, obs.MaxDepth)
}

func TestEnergy_Errors(t *testing.T) {
	t.Run("nil tree", func(t *testing.T) {
		_, err := mcmc.BoundedDegree(3).Violations(nil)
		require.ErrorIs(t, err, mcmc.ErrNilTree)
	})

	t.Run("missing depth root", func(t *testing.T) {
		_, err := mcmc.BoundedDepth("9,9", 5).Violations(treeFromEdges(t, serpentine))
		require.ErrorIs(t, err, core.ErrVertexNotFound)
	})

	t.Run("forest refused", func(t *testing.T) {
		tr := treeFromEdges(t, serpentine)
		require.NoError(t, tr.RemoveEdge("0,0", "0,1"))

		_, err := mcmc.BoundedDegree(3).Violations(tr)
		require.ErrorIs(t, err, spantree.ErrNotATree)
		_, err = mcmc.BoundedDepth("1,1", 5).Violations(tr)
		require.ErrorIs(t, err, spantree.ErrNotATree)
	})
}
