// Package mcmc: sentinel errors, tunables and run options.
package mcmc

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by sampler construction and runs.
var (
	// ErrNilTree is returned when a nil tree reaches a constructor.
	ErrNilTree = errors.New("mcmc: tree is nil")

	// ErrOptionViolation is returned when an option value is out of its
	// documented range.
	ErrOptionViolation = errors.New("mcmc: option out of range")

	// ErrUnknownKind is returned for an energy kind this package does
	// not define.
	ErrUnknownKind = errors.New("mcmc: unknown energy kind")

	// ErrProposalExhausted is returned when no non-tree base edge can be
	// drawn: the base graph has no swappable edge at all, or bounded
	// resampling gave up.
	ErrProposalExhausted = errors.New("mcmc: no non-tree edge available")
)

// Default parameter values, matching the annealing entry points of the
// model this sampler descends from.
const (
	// DefaultDegreeBound is the degree threshold d when none is given.
	DefaultDegreeBound = 3
	// DefaultDepthBound is the depth threshold k when none is given.
	DefaultDepthBound = 5
	// DefaultPhases is the annealing phase count.
	DefaultPhases = 10
	// DefaultIters is the per-phase iteration count.
	DefaultIters = 1000
	// DefaultBetaStep is the per-phase β increment; phase 0 runs at β=0.
	DefaultBetaStep float64 = 5
)

const (
	// proposalAttemptsFactor scales the resampling bound by |E|.
	proposalAttemptsFactor = 16
	// minProposalAttempts floors the resampling bound on tiny graphs.
	minProposalAttempts = 64
)

// Options collects chain configuration. Use DefaultOptions then apply
// functional Option values; invalid inputs are remembered and surfaced
// by validate at construction time.
type Options struct {
	// Seed fixes the chain's random stream; 0 selects the package default.
	Seed int64
	// Beta is the inverse temperature for direct Sampler runs.
	// Anneal overrides it phase by phase.
	Beta float64
	// Burn discards the first Burn iterations of every run from the
	// trace (the chain still moves). May meet or exceed the iteration
	// count, leaving the trace empty.
	Burn int
	// Thin records every Thin-th post-burn iteration.
	Thin int
	// Phases is the number of annealing phases.
	Phases int
	// Iters is the per-phase iteration count used by Anneal.
	Iters int
	// BetaStep sets the annealing schedule β_p = p · BetaStep.
	BetaStep float64
	// Betas, when non-empty, replaces the linear schedule entirely.
	Betas []float64
	// Ctx cancels a run between iterations.
	Ctx context.Context
	// Logger receives per-phase annealing progress. Defaults to a
	// discard logger so the library is silent unless asked.
	Logger *log.Logger

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: default seed,
// β=0, no burn-in, no thinning, ten phases of a thousand iterations
// with β stepping by five, background context, silent logger.
func DefaultOptions() Options {
	return Options{
		Seed:     0,
		Beta:     0,
		Burn:     0,
		Thin:     1,
		Phases:   DefaultPhases,
		Iters:    DefaultIters,
		BetaStep: DefaultBetaStep,
		Ctx:      context.Background(),
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithSeed fixes the random stream (0 = package default).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBeta sets the inverse temperature for direct runs; must be ≥ 0.
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if beta < 0 {
			o.err = fmt.Errorf("mcmc: beta=%g must be >= 0: %w", beta, ErrOptionViolation)
			return
		}
		o.Beta = beta
	}
}

// WithBurn discards the first burn iterations of each run from the
// trace; must be ≥ 0.
func WithBurn(burn int) Option {
	return func(o *Options) {
		if burn < 0 {
			o.err = fmt.Errorf("mcmc: burn=%d must be >= 0: %w", burn, ErrOptionViolation)
			return
		}
		o.Burn = burn
	}
}

// WithThin records every thin-th post-burn iteration; must be ≥ 1.
func WithThin(thin int) Option {
	return func(o *Options) {
		if thin < 1 {
			o.err = fmt.Errorf("mcmc: thin=%d must be >= 1: %w", thin, ErrOptionViolation)
			return
		}
		o.Thin = thin
	}
}

// WithPhases sets the annealing phase count; must be ≥ 1.
func WithPhases(phases int) Option {
	return func(o *Options) {
		if phases < 1 {
			o.err = fmt.Errorf("mcmc: phases=%d must be >= 1: %w", phases, ErrOptionViolation)
			return
		}
		o.Phases = phases
	}
}

// WithIters sets the per-phase iteration count; must be ≥ 1.
func WithIters(iters int) Option {
	return func(o *Options) {
		if iters < 1 {
			o.err = fmt.Errorf("mcmc: iters=%d must be >= 1: %w", iters, ErrOptionViolation)
			return
		}
		o.Iters = iters
	}
}

// WithBetaStep sets the linear schedule increment; must be ≥ 0.
func WithBetaStep(step float64) Option {
	return func(o *Options) {
		if step < 0 {
			o.err = fmt.Errorf("mcmc: beta step=%g must be >= 0: %w", step, ErrOptionViolation)
			return
		}
		o.BetaStep = step
	}
}

// WithBetas replaces the linear schedule with explicit per-phase β
// values; every entry must be ≥ 0 and the list non-empty.
func WithBetas(betas []float64) Option {
	return func(o *Options) {
		if len(betas) == 0 {
			o.err = fmt.Errorf("mcmc: empty beta schedule: %w", ErrOptionViolation)
			return
		}
		for i, b := range betas {
			if b < 0 {
				o.err = fmt.Errorf("mcmc: beta[%d]=%g must be >= 0: %w", i, b, ErrOptionViolation)
				return
			}
		}
		o.Betas = append([]float64(nil), betas...)
	}
}

// WithContext installs a cancellation context checked between
// iterations; must be non-nil.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("mcmc: nil context: %w", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithLogger installs a structured logger for annealing progress; must
// be non-nil (use the default to stay silent).
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			o.err = fmt.Errorf("mcmc: nil logger: %w", ErrOptionViolation)
			return
		}
		o.Logger = logger
	}
}

// validate surfaces any recorded option error.
func (o *Options) validate() error {
	return o.err
}

// betaFor returns the β of annealing phase p under the configured
// schedule.
func (o *Options) betaFor(p int) float64 {
	if len(o.Betas) > 0 {
		return o.Betas[p]
	}
	return float64(p) * o.BetaStep
}

// phaseCount returns the number of annealing phases under the
// configured schedule.
func (o *Options) phaseCount() int {
	if len(o.Betas) > 0 {
		return len(o.Betas)
	}
	return o.Phases
}
