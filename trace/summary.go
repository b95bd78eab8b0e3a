// Package trace: aggregate statistics over a recorded trace.
package trace

import "github.com/montanaflynn/stats"

// violationPercentile is the upper percentile reported by Summary.
const violationPercentile = 95

// Summary condenses a trace into the aggregates worth logging.
type Summary struct {
	Samples        int     `json:"samples"`
	Accepted       int     `json:"accepted"`
	AcceptRate     float64 `json:"accept_rate"`
	MeanEnergy     float64 `json:"mean_energy"`
	MinEnergy      float64 `json:"min_energy"`
	MaxEnergy      float64 `json:"max_energy"`
	MeanViolations float64 `json:"mean_violations"`
	MaxViolations  int     `json:"max_violations"`
	P95Violations  float64 `json:"p95_violations"`
}

// Summary computes aggregates over all recorded samples. An empty
// trace yields the zero Summary; no error paths are exposed because
// the inputs are the package's own well-formed samples.
func (tr *Trace) Summary() Summary {
	n := len(tr.Samples)
	if n == 0 {
		return Summary{}
	}

	energies := make(stats.Float64Data, n)
	violations := make(stats.Float64Data, n)
	accepted := 0
	maxViolations := 0
	for i, s := range tr.Samples {
		energies[i] = s.Energy
		violations[i] = float64(s.Violations)
		if s.Accepted {
			accepted++
		}
		if s.Violations > maxViolations {
			maxViolations = s.Violations
		}
	}

	// stats errors only on empty input, which is excluded above.
	meanE, _ := stats.Mean(energies)
	minE, _ := stats.Min(energies)
	maxE, _ := stats.Max(energies)
	meanV, _ := stats.Mean(violations)
	p95V, _ := stats.Percentile(violations, violationPercentile)

	return Summary{
		Samples:        n,
		Accepted:       accepted,
		AcceptRate:     float64(accepted) / float64(n),
		MeanEnergy:     meanE,
		MinEnergy:      minE,
		MaxEnergy:      maxE,
		MeanViolations: meanV,
		MaxViolations:  maxViolations,
		P95Violations:  p95V,
	}
}
