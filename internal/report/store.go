// Package report implements the report store (C11): a durable, queryable
// summary of a run, backed by modernc.org/sqlite — an embedded,
// dependency-free database with no server process, matching the rest of
// the tool's no-network-services posture. The driver (C9) writes to it
// incrementally as each phase completes; nccat report opens it read-only.
package report

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the summary database for one run's report.db file.
type Store struct {
	db *sql.DB
}

// Open creates (or reopens) the report database at path and ensures its
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("report: applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenReadOnly opens an existing report database without applying the
// schema, for nccat report's read-only inspection.
func OpenReadOnly(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("report: opening %s read-only: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// LatestRunID returns the most recently started run's id, for callers
// (nccat report) that inspect a root without already knowing which run
// produced it. Returns "" if the store has no runs recorded yet.
func (s *Store) LatestRunID() (string, error) {
	var runID string
	err := s.db.QueryRow(`SELECT run_id FROM runs ORDER BY started_at DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return runID, err
}

// RecordRun inserts the run's identity row. Called once at the start of
// a run by the driver.
func (s *Store) RecordRun(runID, root string, startedAt time.Time) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO runs (run_id, root, started_at) VALUES (?, ?, ?)`,
		runID, root, startedAt.Format(time.RFC3339))
	return err
}

// RecordVariant inserts one generated variant's oracle outcome (spec.md
// §3's grouping record).
func (s *Store) RecordVariant(runID string, fileID int, phase string, level int, mss, verdict string) error {
	_, err := s.db.Exec(`INSERT INTO variants (run_id, file_id, phase, level, mss, verdict) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, fileID, phase, level, mss, verdict)
	return err
}

// RecordMutation inserts one mutation-ledger entry (spec.md §3's mutation
// ledger, C7's per-node analysis).
func (s *Store) RecordMutation(runID, mssKey string, nodeID int, passings, failings []string, original string) error {
	_, err := s.db.Exec(`INSERT INTO mutations (run_id, mss_key, node_id, passings, failings, original) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, mssKey, nodeID, strings.Join(passings, ","), strings.Join(failings, ","), original)
	return err
}

// RecordIdentifiedNode inserts one relevant node id with a free-form
// source label. The driver records every learner A node with the single
// label "learner-a"; which admission path (singleton, larger-r,
// always-failing residual, retry) found the node is not recorded.
func (s *Store) RecordIdentifiedNode(runID string, nodeID int, mssKey, source string) error {
	_, err := s.db.Exec(`INSERT INTO identified_nodes (run_id, node_id, mss_key, source) VALUES (?, ?, ?, ?)`,
		runID, nodeID, mssKey, source)
	return err
}

// LevelTally is one phase/level's pass/fail/invalid counts, as printed by
// nccat report.
type LevelTally struct {
	Phase    string
	Level    int
	Passings int
	Failings int
	Invalids int
}

// Tallies returns per-phase/level pass/fail/invalid counts for a run,
// ordered by phase then level.
func (s *Store) Tallies(runID string) ([]LevelTally, error) {
	rows, err := s.db.Query(`
		SELECT phase, level,
			SUM(CASE WHEN verdict = 'pass' THEN 1 ELSE 0 END),
			SUM(CASE WHEN verdict = 'fail' THEN 1 ELSE 0 END),
			SUM(CASE WHEN verdict = 'invalid' THEN 1 ELSE 0 END)
		FROM variants
		WHERE run_id = ?
		GROUP BY phase, level
		ORDER BY phase, level`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LevelTally
	for rows.Next() {
		var t LevelTally
		if err := rows.Scan(&t.Phase, &t.Level, &t.Passings, &t.Failings, &t.Invalids); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// IdentifiedNodeIDs returns the distinct relevant node ids recorded for a
// run, sorted ascending.
func (s *Store) IdentifiedNodeIDs(runID string) ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT node_id FROM identified_nodes WHERE run_id = ? ORDER BY node_id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
