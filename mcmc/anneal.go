// Package mcmc: the simulated-annealing driver.
package mcmc

import (
	"time"

	"github.com/mazespan/mazespan/spantree"
	"github.com/mazespan/mazespan/trace"
)

// PhaseStats summarizes one annealing phase. The variant-specific
// fields mirror what the underlying model reports per phase: the
// degree variant watches the fraction of degree-2 vertices, the depth
// variant watches max depth and how much of the phase's trace stayed
// within the bound.
type PhaseStats struct {
	// Phase index, zero-based; Beta the phase ran at.
	Phase int
	Beta  float64
	// Iterations and Accepted count this phase.
	Iterations int
	Accepted   int
	// Energy, Violations and FracViolating describe the tree at phase
	// end.
	Energy        float64
	Violations    int
	FracViolating float64
	// FracDegreeTwo is the fraction of degree-2 vertices at phase end
	// (bounded-degree runs).
	FracDegreeTwo float64
	// MaxDepth is the deepest vertex below the root at phase end;
	// FracTraceWithinDepth is the fraction of the phase's recorded
	// samples with MaxDepth within the bound (bounded-depth runs).
	MaxDepth             int
	FracTraceWithinDepth float64
}

// AnnealResult is the outcome of a full annealing run.
type AnnealResult struct {
	// RunID is the trace's uuid, for joining logs with exports.
	RunID string
	// Kind names the energy variant.
	Kind Kind
	// Phases holds one PhaseStats per completed phase, in order.
	Phases []PhaseStats
	// Final is the tree after the last phase (the same object the
	// caller handed in, mutated in place).
	Final *spantree.Tree
	// Trace is the combined recorded history across phases.
	Trace *trace.Trace
	// TotalIterations and Accepted aggregate all phases.
	TotalIterations int
	Accepted        int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Anneal drives a Metropolis chain through rising-β phases: phase p
// runs Options.Iters iterations at β_p = p·BetaStep (or the explicit
// WithBetas schedule). The tree mutates in place; every phase appends
// its statistics and logs one progress line.
//
// Phase 0 of the default schedule runs at β=0, an unbiased walk that
// decorrelates the chain from its minimum-spanning-tree seed before
// the penalty ramps up.
//
// Complexity: O(phases · iters · V).
func Anneal(t *spantree.Tree, e Energy, opts ...Option) (*AnnealResult, error) {
	s, err := NewSampler(t, e, opts...)
	if err != nil {
		return nil, err
	}

	phases := s.opts.phaseCount()
	result := &AnnealResult{
		RunID: s.tr.RunID,
		Kind:  e.Kind,
		Final: t,
		Trace: s.tr,
	}

	start := time.Now()
	for p := 0; p < phases; p++ {
		beta := s.opts.betaFor(p)
		if err := s.SetBeta(beta); err != nil {
			return nil, err
		}
		s.phase = p

		run, err := s.Run(s.opts.Iters)
		if err != nil {
			return nil, err
		}

		stats, err := s.phaseStats(p, beta, run)
		if err != nil {
			return nil, err
		}
		result.Phases = append(result.Phases, stats)
		result.TotalIterations += run.Iterations
		result.Accepted += run.Accepted

		logPhase(s, stats, phases)
	}
	result.Elapsed = time.Since(start)

	return result, nil
}

// phaseStats observes the tree at phase end and folds in the phase's
// recorded samples.
func (s *Sampler) phaseStats(phase int, beta float64, run *Result) (PhaseStats, error) {
	obs, err := s.energy.Observe(s.tree, beta)
	if err != nil {
		return PhaseStats{}, err
	}
	n := s.tree.VertexCount()

	stats := PhaseStats{
		Phase:         phase,
		Beta:          beta,
		Iterations:    run.Iterations,
		Accepted:      run.Accepted,
		Energy:        obs.Energy,
		Violations:    obs.Violations,
		FracViolating: float64(obs.Violations) / float64(n),
	}

	switch s.energy.Kind {
	case KindBoundedDegree:
		stats.FracDegreeTwo = float64(s.tree.DegreeCounts()[2]) / float64(n)

	case KindBoundedDepth:
		stats.MaxDepth = obs.MaxDepth
		samples := s.tr.PhaseSamples(phase)
		if len(samples) == 0 {
			// Burn ate the whole phase: fall back to the final state.
			if obs.MaxDepth <= s.energy.DepthBound {
				stats.FracTraceWithinDepth = 1
			}
			break
		}
		within := 0
		for _, smp := range samples {
			if smp.MaxDepth <= s.energy.DepthBound {
				within++
			}
		}
		stats.FracTraceWithinDepth = float64(within) / float64(len(samples))
	}

	return stats, nil
}

// logPhase emits one structured progress line per completed phase.
func logPhase(s *Sampler, stats PhaseStats, phases int) {
	logger := s.opts.Logger
	switch s.energy.Kind {
	case KindBoundedDegree:
		logger.Info("phase complete",
			"phase", stats.Phase+1,
			"phases", phases,
			"beta", stats.Beta,
			"accepted", stats.Accepted,
			"iters", stats.Iterations,
			"energy", stats.Energy,
			"frac_deg2", stats.FracDegreeTwo,
		)
	case KindBoundedDepth:
		logger.Info("phase complete",
			"phase", stats.Phase+1,
			"phases", phases,
			"beta", stats.Beta,
			"accepted", stats.Accepted,
			"iters", stats.Iterations,
			"energy", stats.Energy,
			"max_depth", stats.MaxDepth,
			"trace_within_bound", stats.FracTraceWithinDepth,
		)
	}
}
