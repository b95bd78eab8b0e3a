package maze

import (
	"fmt"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/grid"
	"github.com/mazespan/mazespan/mcmc"
	"github.com/mazespan/mazespan/mst"
	"github.com/mazespan/mazespan/spantree"
)

// Generate builds the plain randomized-MST maze: a seeded weighted
// lattice, its minimum spanning tree, and the wall assembly. No
// annealing runs; Maze.Anneal stays nil.
//
// Steps:
//  1. Build the rows×cols lattice with Uniform[0,1) weights from the
//     grid stream of the seed.
//  2. Seed the spanning tree (Kruskal by default, Prim on request).
//  3. Render walls on the dual lattice, the boundary if requested, and
//     the entry-to-exit solution path.
//
// Complexity: O(rows·cols · log(rows·cols)).
func Generate(rows, cols int, opts ...Option) (*Maze, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return assemble(rows, cols, cfg, nil)
}

// GenerateLowDegree anneals the seed tree under the bounded-degree
// energy before assembly, trading branchy junctions for corridors.
// Defaults: one phase at β=10, 100 iterations, burn 99, degree bound
// 3. Harder mazes, slower generation.
//
// Complexity: O(iters · rows·cols) on top of Generate.
func GenerateLowDegree(rows, cols int, opts ...Option) (*Maze, error) {
	cfg := lowDegreeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := mcmc.BoundedDegree(cfg.degree)

	return assemble(rows, cols, cfg, &e)
}

// GenerateBoundedDepth anneals the seed tree under the bounded-depth
// energy before assembly, pulling every cell within the depth bound of
// the root. Defaults: the full β ramp (ten phases stepping by five),
// depth bound 5, root at the grid center, every tenth iteration
// recorded.
//
// Complexity: O(phases · iters · rows·cols) on top of Generate.
func GenerateBoundedDepth(rows, cols int, opts ...Option) (*Maze, error) {
	cfg := boundedDepthConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	root := cfg.root
	if root == "" {
		root = grid.Center(rows, cols)
	}
	e := mcmc.BoundedDepth(root, cfg.depth)

	return assemble(rows, cols, cfg, &e)
}

// assemble runs the shared pipeline: grid, seed tree, optional chain,
// walls, solution. A non-nil energy selects the annealed path.
func assemble(rows, cols int, cfg config, energy *mcmc.Energy) (*Maze, error) {
	if cfg.err != nil {
		return nil, cfg.err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	g, err := grid.Build(rows, cols, grid.WithSeed(deriveSeed(seed, gridStream)))
	if err != nil {
		return nil, err
	}

	tree, err := seedTree(g, cfg.method)
	if err != nil {
		return nil, err
	}

	m := &Maze{
		Rows:  rows,
		Cols:  cols,
		Grid:  g,
		Tree:  tree,
		Entry: grid.Start(),
		Exit:  grid.End(rows, cols),
	}

	if energy != nil {
		ar, err := mcmc.Anneal(tree, *energy, cfg.chainOptions(seed)...)
		if err != nil {
			return nil, err
		}
		m.Anneal = ar
	}

	walls, err := Dual(g, tree)
	if err != nil {
		return nil, err
	}
	if cfg.boundary {
		if err := Boundary(walls, rows, cols); err != nil {
			return nil, err
		}
	}
	m.Walls = walls

	solution, err := tree.Path(m.Entry, m.Exit)
	if err != nil {
		return nil, err
	}
	m.Solution = solution

	return m, nil
}

// seedTree builds the chain's starting state.
func seedTree(g *core.Graph, method Method) (*spantree.Tree, error) {
	switch method {
	case MethodKruskal:
		return spantree.New(g)
	case MethodPrim:
		edges, _, err := mst.Prim(g, grid.Start())
		if err != nil {
			return nil, fmt.Errorf("maze: prim seed: %w", err)
		}
		pairs := make([][2]string, len(edges))
		for i, e := range edges {
			pairs[i] = [2]string{e.From, e.To}
		}
		return spantree.NewFromEdges(g, pairs)
	default:
		return nil, fmt.Errorf("maze: method %d: %w", int(method), ErrUnknownMethod)
	}
}

// chainOptions translates the maze configuration into chain options,
// deriving the chain stream from the top-level seed.
func (cfg config) chainOptions(seed int64) []mcmc.Option {
	opts := []mcmc.Option{
		mcmc.WithSeed(deriveSeed(seed, chainStream)),
		mcmc.WithIters(cfg.iters),
		mcmc.WithBurn(cfg.burn),
		mcmc.WithThin(cfg.thin),
		mcmc.WithContext(cfg.ctx),
		mcmc.WithLogger(cfg.logger),
	}
	if len(cfg.betas) > 0 {
		opts = append(opts, mcmc.WithBetas(cfg.betas))
	} else {
		opts = append(opts, mcmc.WithPhases(cfg.phases), mcmc.WithBetaStep(cfg.betaStep))
	}

	return opts
}

// SolutionPath re-derives the entry-to-exit path from the current
// tree. Useful after further chain moves on a shared tree; Solution
// keeps the path from assembly time.
func (m *Maze) SolutionPath() ([]string, error) {
	return m.Tree.Path(m.Entry, m.Exit)
}

// Positions maps every cell ID and wall endpoint ID onto the plane as
// (x=column, y=-row). The two ID families never collide: cells sit on
// integers, wall endpoints on half-units.
func (m *Maze) Positions() (map[string][2]float64, error) {
	pos := make(map[string][2]float64, m.Grid.VertexCount()+m.Walls.VertexCount())
	for _, id := range m.Grid.Vertices() {
		x, y, err := grid.Pos(id)
		if err != nil {
			return nil, err
		}
		pos[id] = [2]float64{x, y}
	}
	for _, id := range m.Walls.Vertices() {
		x, y, err := WallPos(id)
		if err != nil {
			return nil, err
		}
		pos[id] = [2]float64{x, y}
	}

	return pos, nil
}
