package recipe_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazespan/mazespan/maze"
	"github.com/mazespan/mazespan/mcmc"
	"github.com/mazespan/mazespan/recipe"
)

func TestParse_Minimal(t *testing.T) {
	r, err := recipe.Parse([]byte("rows = 4\ncols = 4\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, r.Rows)
	assert.Equal(t, 4, r.Cols)
	assert.Empty(t, r.Variant)
	assert.Nil(t, r.Burn)
	assert.Nil(t, r.Thin)

	m, err := r.Bake()
	require.NoError(t, err)
	assert.Nil(t, m.Anneal, "the default variant does not anneal")
	require.NoError(t, m.Tree.Validate())
}

func TestParse_AllFields(t *testing.T) {
	r, err := recipe.Parse([]byte(`
rows        = 12
cols        = 10
variant     = "bounded-depth"
seed        = 42
boundary    = true
seed_method = "prim"
depth_bound = 6
root        = "5,5"
phases      = 8
iters       = 200
burn        = 0
thin        = 20
`))
	require.NoError(t, err)

	assert.Equal(t, 12, r.Rows)
	assert.Equal(t, 10, r.Cols)
	assert.Equal(t, recipe.VariantBoundedDepth, r.Variant)
	assert.Equal(t, int64(42), r.Seed)
	assert.True(t, r.Boundary)
	assert.Equal(t, "prim", r.SeedMethod)
	assert.Equal(t, 6, r.DepthBound)
	assert.Equal(t, "5,5", r.Root)
	assert.Equal(t, 8, r.Phases)
	assert.Equal(t, 200, r.Iters)
	require.NotNil(t, r.Burn)
	assert.Equal(t, 0, *r.Burn)
	require.NotNil(t, r.Thin)
	assert.Equal(t, 20, *r.Thin)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want error
	}{
		{"missing cols", "rows = 4\n", recipe.ErrBadRecipe},
		{"unknown variant", "rows = 4\ncols = 4\nvariant = \"spiral\"\n", recipe.ErrUnknownVariant},
		{"unknown seed method", "rows = 4\ncols = 4\nseed_method = \"dfs\"\n", recipe.ErrBadRecipe},
		{"negative iters", "rows = 4\ncols = 4\niters = -1\n", recipe.ErrBadRecipe},
		{"negative beta", "rows = 4\ncols = 4\nbeta = -2.0\n", recipe.ErrBadRecipe},
		{"negative ladder entry", "rows = 4\ncols = 4\nbetas = [1.0, -1.0]\n", recipe.ErrBadRecipe},
		{"negative burn", "rows = 4\ncols = 4\nburn = -1\n", recipe.ErrBadRecipe},
		{"zero thin", "rows = 4\ncols = 4\nthin = 0\n", recipe.ErrBadRecipe},
		{"negative degree bound", "rows = 4\ncols = 4\ndegree_bound = -3\n", recipe.ErrBadRecipe},
		{"conflicting schedules", "rows = 4\ncols = 4\nbeta = 5.0\nphases = 3\n", recipe.ErrBadRecipe},
		{"ladder plus linear", "rows = 4\ncols = 4\nbetas = [1.0]\nbeta_step = 2.0\n", recipe.ErrBadRecipe},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := recipe.Parse([]byte(tc.toml))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_DecodeError(t *testing.T) {
	_, err := recipe.Parse([]byte("rows = [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows = 5\ncols = 3\nseed = 9\n"), 0o644))

	r, err := recipe.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rows)
	assert.Equal(t, 3, r.Cols)
	assert.Equal(t, int64(9), r.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := recipe.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRecipe_BakeMatchesDirectCall(t *testing.T) {
	r, err := recipe.Parse([]byte(`
rows     = 5
cols     = 5
seed     = 7
boundary = true
`))
	require.NoError(t, err)
	baked, err := r.Bake()
	require.NoError(t, err)

	direct, err := maze.Generate(5, 5, maze.WithSeed(7), maze.WithBoundary())
	require.NoError(t, err)

	assert.Equal(t, direct.Tree.Edges(), baked.Tree.Edges())
	assert.Equal(t, direct.Walls.Edges(), baked.Walls.Edges())
	assert.Equal(t, direct.Solution, baked.Solution)
}

func TestRecipe_BakeLowDegree(t *testing.T) {
	r, err := recipe.Parse([]byte(`
rows    = 5
cols    = 5
variant = "low-degree"
seed    = 5
`))
	require.NoError(t, err)
	baked, err := r.Bake()
	require.NoError(t, err)

	require.NotNil(t, baked.Anneal)
	assert.Equal(t, mcmc.KindBoundedDegree, baked.Anneal.Kind)

	direct, err := maze.GenerateLowDegree(5, 5, maze.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, direct.Tree.Edges(), baked.Tree.Edges())
	assert.Equal(t, direct.Anneal.Phases, baked.Anneal.Phases)
}

func TestRecipe_BakeBoundedDepth(t *testing.T) {
	r, err := recipe.Parse([]byte(`
rows        = 4
cols        = 4
variant     = "bounded-depth"
seed        = 6
depth_bound = 7
root        = "0,0"
phases      = 2
iters       = 30
thin        = 3
`))
	require.NoError(t, err)
	baked, err := r.Bake()
	require.NoError(t, err)

	require.NotNil(t, baked.Anneal)
	assert.Equal(t, mcmc.KindBoundedDepth, baked.Anneal.Kind)
	require.Len(t, baked.Anneal.Phases, 2)
	assert.Equal(t, 20, baked.Anneal.Trace.Len())

	direct, err := maze.GenerateBoundedDepth(4, 4,
		maze.WithSeed(6), maze.WithDepthBound(7), maze.WithRoot("0,0"),
		maze.WithPhases(2), maze.WithIters(30), maze.WithThin(3))
	require.NoError(t, err)
	assert.Equal(t, direct.Tree.Edges(), baked.Tree.Edges())
}

func TestRecipe_BakeCallerOverride(t *testing.T) {
	r, err := recipe.Parse([]byte("rows = 5\ncols = 5\nseed = 5\n"))
	require.NoError(t, err)

	baked, err := r.Bake(maze.WithSeed(9))
	require.NoError(t, err)
	direct, err := maze.Generate(5, 5, maze.WithSeed(9))
	require.NoError(t, err)

	assert.Equal(t, direct.Tree.Edges(), baked.Tree.Edges(),
		"caller options must win over recipe fields")
}

func TestRecipe_BakeValidatesHandBuilt(t *testing.T) {
	r := &recipe.Recipe{Rows: 3, Cols: 3, Variant: "spiral"}
	_, err := r.Bake()
	require.ErrorIs(t, err, recipe.ErrUnknownVariant)

	r = &recipe.Recipe{Rows: 0, Cols: 3}
	_, err = r.Bake()
	require.ErrorIs(t, err, recipe.ErrBadRecipe)
}

func TestRecipe_BakeLogsThrough(t *testing.T) {
	var buf bytes.Buffer
	r := &recipe.Recipe{
		Rows:    3,
		Cols:    3,
		Variant: recipe.VariantLowDegree,
		Seed:    2,
		Logger:  log.New(&buf),
	}

	_, err := r.Bake()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "baking maze")
	assert.Contains(t, out, "phase complete")
}
