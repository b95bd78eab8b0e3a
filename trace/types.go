// Package trace: sample and trace types.
package trace

import "github.com/google/uuid"

// Sample is one recorded chain state, observed after the accept/reject
// decision of its iteration.
type Sample struct {
	// Iteration is the zero-based iteration index within its phase.
	Iteration int `json:"iteration"`
	// Phase is the annealing phase the sample belongs to (0 for plain
	// single-phase runs).
	Phase int `json:"phase"`
	// Beta is the inverse temperature the iteration ran at.
	Beta float64 `json:"beta"`
	// Energy is the unnormalized log-probability of the recorded state.
	Energy float64 `json:"energy"`
	// Violations counts the vertices violating the structural bound.
	Violations int `json:"violations"`
	// MaxDepth is the deepest vertex below the root; meaningful only
	// for depth-bounded runs, zero otherwise.
	MaxDepth int `json:"max_depth"`
	// Accepted reports whether the iteration's proposal was accepted.
	Accepted bool `json:"accepted"`
}

// Trace is the recorded history of one run.
type Trace struct {
	// RunID uniquely identifies the run across exports.
	RunID string `json:"run_id"`
	// Kind names the energy variant driving the run.
	Kind string `json:"kind"`
	// Samples in recording order.
	Samples []Sample `json:"samples"`
}

// New returns an empty trace for the given energy kind with a fresh
// run ID.
func New(kind string) *Trace {
	return &Trace{RunID: uuid.New().String(), Kind: kind}
}

// Append adds one sample.
func (tr *Trace) Append(s Sample) {
	tr.Samples = append(tr.Samples, s)
}

// Len returns the number of recorded samples.
func (tr *Trace) Len() int { return len(tr.Samples) }

// Last returns the most recent sample; ok is false on an empty trace.
func (tr *Trace) Last() (Sample, bool) {
	if len(tr.Samples) == 0 {
		return Sample{}, false
	}
	return tr.Samples[len(tr.Samples)-1], true
}

// PhaseSamples returns the samples recorded during one annealing phase.
func (tr *Trace) PhaseSamples(phase int) []Sample {
	out := make([]Sample, 0)
	for _, s := range tr.Samples {
		if s.Phase == phase {
			out = append(out, s)
		}
	}
	return out
}

// AcceptRate returns the fraction of recorded samples whose iteration
// accepted its proposal; zero on an empty trace.
func (tr *Trace) AcceptRate() float64 {
	if len(tr.Samples) == 0 {
		return 0
	}
	accepted := 0
	for _, s := range tr.Samples {
		if s.Accepted {
			accepted++
		}
	}
	return float64(accepted) / float64(len(tr.Samples))
}

// Energies returns the recorded energies in order.
func (tr *Trace) Energies() []float64 {
	out := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		out[i] = s.Energy
	}
	return out
}
