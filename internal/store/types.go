// Package store provides SQLite persistence for analysis run snapshots, so
// runs can be compared over time.
package store

import "time"

// Run is a point-in-time capture of one analysis run's summary metrics.
type Run struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Shell   string    `json:"shell"`
	Version string    `json:"version"`
}

// Metric is one named summary value within a run.
type Metric struct {
	ID     int64   `json:"id"`
	RunID  int64   `json:"run_id"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Detail string  `json:"detail,omitempty"`
}

// RunDiff compares two runs.
type RunDiff struct {
	Previous *Run          `json:"previous"`
	Current  *Run          `json:"current"`
	Deltas   []MetricDelta `json:"deltas"`
}

// MetricDelta is the change of one metric between two runs.
type MetricDelta struct {
	Name     string  `json:"name"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Delta    float64 `json:"delta"`
}
