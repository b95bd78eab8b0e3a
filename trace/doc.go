// Package trace records the observed states of a sampling chain and
// turns them into summaries and exportable logs.
//
// A Trace is an append-only sequence of Samples, one per recorded
// iteration (after burn-in, at the configured thinning stride). Each
// Sample captures the post-decision state: energy, violation count,
// max depth for depth-bounded runs, and whether the proposal that led
// here was accepted. Every trace carries a uuid RunID so exported
// artifacts stay attributable when many chains run over time.
//
// Summaries lean on montanaflynn/stats for the usual aggregate
// questions (mean/min/max energy, violation percentiles); export is
// plain CSV or JSONL over any io.Writer, one record per sample. The
// package never reads traces back; they flow out of the system only.
package trace
