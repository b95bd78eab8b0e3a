// Package trace: JSON-lines export.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSONL writes one JSON object per sample, newline-delimited.
// The run ID and kind ride on every line so a single stream can carry
// many runs.
func (tr *Trace) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for i, s := range tr.Samples {
		line := struct {
			RunID string `json:"run_id"`
			Kind  string `json:"kind"`
			Sample
		}{RunID: tr.RunID, Kind: tr.Kind, Sample: s}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("trace: write jsonl record %d: %w", i, err)
		}
	}
	return nil
}
