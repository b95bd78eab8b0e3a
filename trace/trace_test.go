// Package trace_test verifies recording, summaries and the CSV/JSONL
// export formats.
package trace_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazespan/mazespan/trace"
)

func sampleTrace() *trace.Trace {
	tr := trace.New("bounded-degree")
	tr.Append(trace.Sample{Iteration: 0, Phase: 0, Beta: 0, Energy: -30, Violations: 3, Accepted: true})
	tr.Append(trace.Sample{Iteration: 1, Phase: 0, Beta: 0, Energy: -20, Violations: 2, Accepted: true})
	tr.Append(trace.Sample{Iteration: 2, Phase: 1, Beta: 5, Energy: -20, Violations: 2, Accepted: false})
	tr.Append(trace.Sample{Iteration: 3, Phase: 1, Beta: 5, Energy: -10, Violations: 1, Accepted: true})
	return tr
}

func TestNew_AssignsRunID(t *testing.T) {
	a, b := trace.New("bounded-degree"), trace.New("bounded-depth")
	assert.NotEmpty(t, a.RunID)
	assert.NotEmpty(t, b.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, "bounded-degree", a.Kind)
	assert.Zero(t, a.Len())
}

func TestRecordingHelpers(t *testing.T) {
	tr := sampleTrace()

	assert.Equal(t, 4, tr.Len())

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, 3, last.Iteration)

	_, ok = trace.New("bounded-degree").Last()
	assert.False(t, ok)

	assert.Len(t, tr.PhaseSamples(0), 2)
	assert.Len(t, tr.PhaseSamples(1), 2)
	assert.Empty(t, tr.PhaseSamples(2))

	assert.InDelta(t, 0.75, tr.AcceptRate(), 1e-9)
	assert.Equal(t, []float64{-30, -20, -20, -10}, tr.Energies())
}

func TestSummary(t *testing.T) {
	tr := sampleTrace()
	s := tr.Summary()

	assert.Equal(t, 4, s.Samples)
	assert.Equal(t, 3, s.Accepted)
	assert.InDelta(t, 0.75, s.AcceptRate, 1e-9)
	assert.InDelta(t, -20.0, s.MeanEnergy, 1e-9)
	assert.InDelta(t, -30.0, s.MinEnergy, 1e-9)
	assert.InDelta(t, -10.0, s.MaxEnergy, 1e-9)
	assert.InDelta(t, 2.0, s.MeanViolations, 1e-9)
	assert.Equal(t, 3, s.MaxViolations)
	assert.GreaterOrEqual(t, s.P95Violations, 2.0)

	// Empty traces summarize to the zero value.
	assert.Equal(t, trace.Summary{}, trace.New("bounded-degree").Summary())
}

func TestWriteCSV(t *testing.T) {
	tr := sampleTrace()
	var buf bytes.Buffer
	require.NoError(t, tr.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"iteration", "phase", "beta", "energy", "violations", "max_depth", "accepted"}, records[0])
	assert.Equal(t, []string{"0", "0", "0", "-30", "3", "0", "true"}, records[1])
	assert.Equal(t, []string{"3", "1", "5", "-10", "1", "0", "true"}, records[4])
}

func TestWriteJSONL(t *testing.T) {
	tr := sampleTrace()
	var buf bytes.Buffer
	require.NoError(t, tr.WriteJSONL(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var first struct {
		RunID      string  `json:"run_id"`
		Kind       string  `json:"kind"`
		Iteration  int     `json:"iteration"`
		Beta       float64 `json:"beta"`
		Energy     float64 `json:"energy"`
		Violations int     `json:"violations"`
		Accepted   bool    `json:"accepted"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, tr.RunID, first.RunID)
	assert.Equal(t, "bounded-degree", first.Kind)
	assert.Equal(t, 0, first.Iteration)
	assert.Equal(t, -30.0, first.Energy)
	assert.Equal(t, 3, first.Violations)
	assert.True(t, first.Accepted)

	// Every line carries the same run ID.
	for _, line := range lines {
		var row struct {
			RunID string `json:"run_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &row))
		assert.Equal(t, tr.RunID, row.RunID)
	}
}
