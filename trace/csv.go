// Package trace: CSV export.
package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader lists the exported columns in order.
var csvHeader = []string{"iteration", "phase", "beta", "energy", "violations", "max_depth", "accepted"}

// WriteCSV writes the trace as CSV: a header row followed by one
// record per sample. Floats use the shortest round-trip formatting.
func (tr *Trace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("trace: write csv header: %w", err)
	}
	for i, s := range tr.Samples {
		record := []string{
			strconv.Itoa(s.Iteration),
			strconv.Itoa(s.Phase),
			strconv.FormatFloat(s.Beta, 'g', -1, 64),
			strconv.FormatFloat(s.Energy, 'g', -1, 64),
			strconv.Itoa(s.Violations),
			strconv.Itoa(s.MaxDepth),
			strconv.FormatBool(s.Accepted),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("trace: write csv record %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("trace: flush csv: %w", err)
	}
	return nil
}
