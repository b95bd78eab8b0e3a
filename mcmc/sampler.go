// Package mcmc: the Metropolis sampler.
package mcmc

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mazespan/mazespan/spantree"
	"github.com/mazespan/mazespan/trace"
)

// Sampler runs a Metropolis chain over the spanning trees of one base
// graph, mutating its tree in place. Not safe for concurrent use: a
// chain is one logical thread.
type Sampler struct {
	tree   *spantree.Tree
	energy Energy
	opts   Options
	rng    *rand.Rand
	prop   *Proposer
	beta   float64
	logp   float64
	phase  int
	tr     *trace.Trace
}

// Result summarizes one Run call. The Trace pointer is the sampler's
// cumulative trace: repeated runs (annealing phases) keep appending to
// it.
type Result struct {
	// Tree is the chain state after the run (same object the sampler
	// mutates).
	Tree *spantree.Tree
	// Iterations, Accepted and Rejected count this run only.
	Iterations int
	Accepted   int
	Rejected   int
	// Energy is the chain's log-probability after the run, at the β
	// the run ended with.
	Energy float64
	// Trace is the cumulative recorded history.
	Trace *trace.Trace
}

// AcceptanceRate returns Accepted / Iterations, or zero before any
// iteration.
func (r *Result) AcceptanceRate() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Iterations)
}

// NewSampler validates everything up front and builds a chain at
// Options.Beta: a valid spanning tree, well-formed energy parameters,
// a swappable base graph, one seeded stream.
//
// Error conditions:
//   - ErrNilTree / spantree.ErrNotATree : missing or invalid tree.
//   - ErrOptionViolation                : malformed options or energy bounds.
//   - core.ErrVertexNotFound            : depth root absent from the tree.
//   - ErrProposalExhausted              : base graph has no non-tree edge.
func NewSampler(t *spantree.Tree, e Energy, opts ...Option) (*Sampler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNilTree
	}
	if err := e.validate(t); err != nil {
		return nil, err
	}

	rng := rngFromSeed(o.Seed)
	prop, err := newProposer(t, rng)
	if err != nil {
		return nil, err
	}
	logp, err := e.LogProb(t, o.Beta)
	if err != nil {
		return nil, err
	}

	return &Sampler{
		tree:   t,
		energy: e,
		opts:   o,
		rng:    rng,
		prop:   prop,
		beta:   o.Beta,
		logp:   logp,
		tr:     trace.New(e.Kind.String()),
	}, nil
}

// Tree returns the chain state.
func (s *Sampler) Tree() *spantree.Tree { return s.tree }

// Beta returns the current inverse temperature.
func (s *Sampler) Beta() float64 { return s.beta }

// CurrentEnergy returns the cached log-probability of the current
// state at the current β.
func (s *Sampler) CurrentEnergy() float64 { return s.logp }

// Trace returns the cumulative recorded history.
func (s *Sampler) Trace() *trace.Trace { return s.tr }

// SetBeta moves the chain to a new inverse temperature and re-bases
// the cached energy with a full recompute.
func (s *Sampler) SetBeta(beta float64) error {
	if beta < 0 {
		return fmt.Errorf("mcmc: beta=%g must be >= 0: %w", beta, ErrOptionViolation)
	}
	logp, err := s.energy.LogProb(s.tree, beta)
	if err != nil {
		return err
	}
	s.beta = beta
	s.logp = logp
	return nil
}

// stepResult carries the per-iteration quantities the tests and the
// run loop care about.
type stepResult struct {
	delta    float64
	accepted bool
}

// step performs one Metropolis iteration: propose, evaluate, draw,
// accept or revert.
//
// The acceptance draw happens on every iteration, also when Δ ≥ 0
// (where exp(Δ) ≥ 1 > u guarantees acceptance); the random stream
// therefore advances identically regardless of which branch wins.
func (s *Sampler) step() (stepResult, error) {
	rec, err := s.prop.Propose()
	if err != nil {
		return stepResult{}, err
	}

	next, err := s.energy.LogProb(s.tree, s.beta)
	if err != nil {
		return stepResult{}, err
	}
	delta := next - s.logp

	if u := s.rng.Float64(); u < math.Exp(delta) {
		s.logp = next
		return stepResult{delta: delta, accepted: true}, nil
	}
	if err := s.prop.Revert(rec); err != nil {
		return stepResult{}, err
	}
	return stepResult{delta: delta, accepted: false}, nil
}

// Step performs one iteration without trace recording and reports
// whether the proposal was accepted. Run is the loop most callers
// want; Step exists for instrumented experiments.
func (s *Sampler) Step() (bool, error) {
	res, err := s.step()
	if err != nil {
		return false, err
	}
	return res.accepted, nil
}

// Run performs iters iterations at the current β, recording the
// post-decision state of iteration i into the trace when i ≥ burn and
// (i-burn) mod thin == 0. The context installed via WithContext is
// checked between iterations.
//
// Complexity: O(iters · V).
func (s *Sampler) Run(iters int) (*Result, error) {
	if iters < 1 {
		return nil, fmt.Errorf("mcmc: iters=%d must be >= 1: %w", iters, ErrOptionViolation)
	}

	accepted, rejected := 0, 0
	for i := 0; i < iters; i++ {
		select {
		case <-s.opts.Ctx.Done():
			return nil, fmt.Errorf("mcmc: run canceled at iteration %d: %w", i, s.opts.Ctx.Err())
		default:
		}

		res, err := s.step()
		if err != nil {
			return nil, err
		}
		if res.accepted {
			accepted++
		} else {
			rejected++
		}

		if i >= s.opts.Burn && (i-s.opts.Burn)%s.opts.Thin == 0 {
			obs, err := s.energy.Observe(s.tree, s.beta)
			if err != nil {
				return nil, err
			}
			s.tr.Append(trace.Sample{
				Iteration:  i,
				Phase:      s.phase,
				Beta:       s.beta,
				Energy:     obs.Energy,
				Violations: obs.Violations,
				MaxDepth:   obs.MaxDepth,
				Accepted:   res.accepted,
			})
		}
	}

	return &Result{
		Tree:       s.tree,
		Iterations: iters,
		Accepted:   accepted,
		Rejected:   rejected,
		Energy:     s.logp,
		Trace:      s.tr,
	}, nil
}
