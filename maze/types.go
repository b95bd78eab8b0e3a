// Package maze: types, sentinel errors and configuration options.
package maze

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/mazespan/mazespan/core"
	"github.com/mazespan/mazespan/mcmc"
	"github.com/mazespan/mazespan/spantree"
)

var (
	// ErrNilTree indicates a nil tree handed to wall assembly.
	ErrNilTree = errors.New("maze: tree is nil")

	// ErrUnknownMethod indicates a seed-tree method outside the enum.
	ErrUnknownMethod = errors.New("maze: unknown seed method")

	// ErrOptionViolation indicates an option outside its documented
	// range.
	ErrOptionViolation = errors.New("maze: option out of range")
)

// Default knobs of the annealed generators.
const (
	// DefaultLowDegreeBeta is the fixed β of GenerateLowDegree.
	DefaultLowDegreeBeta float64 = 10
	// DefaultLowDegreeIters is its single-phase iteration count; burn
	// defaults to one less, keeping only the end state in the trace.
	DefaultLowDegreeIters = 100
	// DefaultDepthThin keeps every tenth iteration of a
	// GenerateBoundedDepth phase.
	DefaultDepthThin = 10
)

// Method selects the seed-tree algorithm.
type Method int

const (
	// MethodKruskal seeds with Kruskal's minimum spanning tree.
	MethodKruskal Method = iota
	// MethodPrim seeds with Prim's, grown from the entry cell.
	MethodPrim
)

// String names the method for logs and recipes.
func (m Method) String() string {
	switch m {
	case MethodKruskal:
		return "kruskal"
	case MethodPrim:
		return "prim"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Maze is a fully assembled maze: the weighted base lattice, the
// spanning tree of corridors, the dual wall graph, and the solution
// path between the two designated corner cells.
type Maze struct {
	// Rows, Cols are the lattice dimensions.
	Rows, Cols int
	// Grid is the weighted base lattice the tree spans.
	Grid *core.Graph
	// Tree holds the corridors.
	Tree *spantree.Tree
	// Walls is the unweighted dual graph; one edge per wall segment.
	Walls *core.Graph
	// Entry and Exit are the corner cells "0,0" and "rows-1,cols-1".
	Entry, Exit string
	// Solution is the tree path from Entry to Exit, inclusive.
	Solution []string
	// Anneal reports the chain run that shaped the tree; nil for the
	// plain Generate.
	Anneal *mcmc.AnnealResult
}

// config collects generator options. Option constructors record the
// first violation in err; the generators surface it before any work.
type config struct {
	seed     int64
	method   Method
	boundary bool
	degree   int
	depth    int
	root     string
	phases   int
	iters    int
	burn     int
	thin     int
	betaStep float64
	betas    []float64
	ctx      context.Context
	logger   *log.Logger
	err      error
}

// Option configures maze generation.
type Option func(*config)

// defaultConfig is the shared baseline; the annealed generators
// overlay their variant defaults before user options apply.
func defaultConfig() config {
	return config{
		method:   MethodKruskal,
		degree:   mcmc.DefaultDegreeBound,
		depth:    mcmc.DefaultDepthBound,
		phases:   mcmc.DefaultPhases,
		iters:    mcmc.DefaultIters,
		burn:     0,
		thin:     1,
		betaStep: mcmc.DefaultBetaStep,
		ctx:      context.Background(),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// lowDegreeConfig: one phase at β=10, 100 iterations, burn 99.
func lowDegreeConfig() config {
	cfg := defaultConfig()
	cfg.betas = []float64{DefaultLowDegreeBeta}
	cfg.iters = DefaultLowDegreeIters
	cfg.burn = DefaultLowDegreeIters - 1
	return cfg
}

// boundedDepthConfig: the full β ramp with a thinned trace.
func boundedDepthConfig() config {
	cfg := defaultConfig()
	cfg.thin = DefaultDepthThin
	return cfg
}

// WithSeed fixes the top-level seed; 0 selects the stable default.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.seed = seed }
}

// WithSeedMethod selects the seed-tree algorithm.
func WithSeedMethod(m Method) Option {
	return func(cfg *config) {
		if m != MethodKruskal && m != MethodPrim {
			cfg.err = fmt.Errorf("maze: method %d: %w", int(m), ErrUnknownMethod)
			return
		}
		cfg.method = m
	}
}

// WithBoundary walls the rectangle in, leaving an entry gap above the
// start cell and an exit gap below the end cell.
func WithBoundary() Option {
	return func(cfg *config) { cfg.boundary = true }
}

// WithDegreeBound sets the degree threshold of GenerateLowDegree;
// must be ≥ 1.
func WithDegreeBound(d int) Option {
	return func(cfg *config) {
		if d < 1 {
			cfg.err = fmt.Errorf("maze: degree bound %d must be >= 1: %w", d, ErrOptionViolation)
			return
		}
		cfg.degree = d
	}
}

// WithDepthBound sets the depth threshold of GenerateBoundedDepth;
// must be ≥ 0.
func WithDepthBound(k int) Option {
	return func(cfg *config) {
		if k < 0 {
			cfg.err = fmt.Errorf("maze: depth bound %d must be >= 0: %w", k, ErrOptionViolation)
			return
		}
		cfg.depth = k
	}
}

// WithRoot anchors the depth bound at a cell; must be non-empty. The
// default is the grid center.
func WithRoot(id string) Option {
	return func(cfg *config) {
		if id == "" {
			cfg.err = fmt.Errorf("maze: depth root must not be empty: %w", ErrOptionViolation)
			return
		}
		cfg.root = id
	}
}

// WithBeta pins the chain to one phase at a fixed β ≥ 0.
func WithBeta(beta float64) Option {
	return func(cfg *config) {
		if beta < 0 {
			cfg.err = fmt.Errorf("maze: beta=%g must be >= 0: %w", beta, ErrOptionViolation)
			return
		}
		cfg.betas = []float64{beta}
	}
}

// WithBetas installs an explicit β schedule, one phase per entry; all
// entries must be ≥ 0.
func WithBetas(betas []float64) Option {
	return func(cfg *config) {
		if len(betas) == 0 {
			cfg.err = fmt.Errorf("maze: beta schedule must not be empty: %w", ErrOptionViolation)
			return
		}
		for _, b := range betas {
			if b < 0 {
				cfg.err = fmt.Errorf("maze: scheduled beta=%g must be >= 0: %w", b, ErrOptionViolation)
				return
			}
		}
		cfg.betas = append([]float64(nil), betas...)
	}
}

// WithPhases switches to the ramp schedule β_p = p·step with the given
// phase count; must be ≥ 1.
func WithPhases(phases int) Option {
	return func(cfg *config) {
		if phases < 1 {
			cfg.err = fmt.Errorf("maze: phases=%d must be >= 1: %w", phases, ErrOptionViolation)
			return
		}
		cfg.phases = phases
		cfg.betas = nil
	}
}

// WithBetaStep switches to the ramp schedule and sets its β increment;
// must be ≥ 0.
func WithBetaStep(step float64) Option {
	return func(cfg *config) {
		if step < 0 {
			cfg.err = fmt.Errorf("maze: beta step=%g must be >= 0: %w", step, ErrOptionViolation)
			return
		}
		cfg.betaStep = step
		cfg.betas = nil
	}
}

// WithIters sets iterations per phase; must be ≥ 1.
func WithIters(iters int) Option {
	return func(cfg *config) {
		if iters < 1 {
			cfg.err = fmt.Errorf("maze: iters=%d must be >= 1: %w", iters, ErrOptionViolation)
			return
		}
		cfg.iters = iters
	}
}

// WithBurn sets the per-phase burn-in; must be ≥ 0.
func WithBurn(burn int) Option {
	return func(cfg *config) {
		if burn < 0 {
			cfg.err = fmt.Errorf("maze: burn=%d must be >= 0: %w", burn, ErrOptionViolation)
			return
		}
		cfg.burn = burn
	}
}

// WithThin records every thin-th post-burn iteration; must be ≥ 1.
func WithThin(thin int) Option {
	return func(cfg *config) {
		if thin < 1 {
			cfg.err = fmt.Errorf("maze: thin=%d must be >= 1: %w", thin, ErrOptionViolation)
			return
		}
		cfg.thin = thin
	}
}

// WithContext installs a cancellation context for the annealing run;
// must be non-nil.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		if ctx == nil {
			cfg.err = fmt.Errorf("maze: nil context: %w", ErrOptionViolation)
			return
		}
		cfg.ctx = ctx
	}
}

// WithLogger routes phase progress to a logger; must be non-nil.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			cfg.err = fmt.Errorf("maze: nil logger: %w", ErrOptionViolation)
			return
		}
		cfg.logger = logger
	}
}
