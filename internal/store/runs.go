package store

import (
	"database/sql"
	"time"
)

// CreateRun inserts a new run snapshot and returns its ID.
func (db *DB) CreateRun(shell, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO runs (taken_at, shell, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), shell, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertMetric records one summary metric for a run.
func (db *DB) InsertMetric(runID int64, name string, value float64, detail string) error {
	_, err := db.conn.Exec(
		"INSERT INTO run_metrics (run_id, name, value, detail) VALUES (?, ?, ?, ?)",
		runID, name, value, detail,
	)
	return err
}

// GetRunN returns the Nth most recent run (1 = latest, 2 = previous), or
// nil when fewer runs exist.
func (db *DB) GetRunN(n int) (*Run, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, shell, version FROM runs ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanRun(row)
}

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var takenAt string
	err := row.Scan(&r.ID, &takenAt, &r.Shell, &r.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &r, nil
}

// GetMetrics returns all metrics recorded for a run, in insertion order.
func (db *DB) GetMetrics(runID int64) ([]Metric, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, name, value, COALESCE(detail, '') FROM run_metrics WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []Metric
	for rows.Next() {
		var m Metric
		if err := rows.Scan(&m.ID, &m.RunID, &m.Name, &m.Value, &m.Detail); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// DiffLatestRuns compares the two most recent runs metric by metric.
// Metrics present in only one run are skipped. Returns nil when fewer than
// two runs exist.
func (db *DB) DiffLatestRuns() (*RunDiff, error) {
	current, err := db.GetRunN(1)
	if err != nil || current == nil {
		return nil, err
	}
	previous, err := db.GetRunN(2)
	if err != nil || previous == nil {
		return nil, err
	}

	currentMetrics, err := db.GetMetrics(current.ID)
	if err != nil {
		return nil, err
	}
	previousMetrics, err := db.GetMetrics(previous.ID)
	if err != nil {
		return nil, err
	}

	prevByName := make(map[string]float64, len(previousMetrics))
	for _, m := range previousMetrics {
		prevByName[m.Name] = m.Value
	}

	diff := &RunDiff{Previous: previous, Current: current}
	for _, m := range currentMetrics {
		prev, ok := prevByName[m.Name]
		if !ok {
			continue
		}
		diff.Deltas = append(diff.Deltas, MetricDelta{
			Name:     m.Name,
			Previous: prev,
			Current:  m.Value,
			Delta:    m.Value - prev,
		})
	}
	return diff, nil
}
