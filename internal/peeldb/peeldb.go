// Package peeldb archives peeling runs in a SQLite database so different
// threshold and projection configurations can be compared after the fact.
package peeldb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/coin-lab/paretoviz/internal/peel"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the run-archive database handle.
type DB struct {
	*sql.DB
}

// Run describes one archived peeling run.
type Run struct {
	ID         string
	InputPath  string
	Mode       string
	Threshold  string
	Dimension  int
	PointCount int
	LayerCount int
	CreatedAt  string
}

// Open opens (or creates) the archive at path and applies any pending
// schema migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("peeldb: open %s: %w", path, err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("peeldb: migrate %s: %w", path, err)
	}

	return &DB{db}, nil
}

// migrateUp applies the embedded migrations to the latest version.
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	// Note: m is not closed here because that would close the underlying
	// DB connection.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// RecordRun stores a run and its layer sequence, returning the generated
// run ID.
func (db *DB) RecordRun(inputPath, mode string, policy peel.ThresholdPolicy, dim int, seq peel.Sequence) (string, error) {
	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("peeldb: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO peel_runs (run_id, input_path, mode, threshold, dimension, point_count, layer_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, inputPath, mode, policy.String(), dim, seq.Points(), len(seq))
	if err != nil {
		return "", fmt.Errorf("peeldb: insert run: %w", err)
	}

	for depth, layer := range seq {
		_, err = tx.Exec(`
			INSERT INTO peel_layers (run_id, depth, member_count, members)
			VALUES (?, ?, ?, ?)`,
			runID, depth, len(layer), formatMembers(layer))
		if err != nil {
			return "", fmt.Errorf("peeldb: insert layer %d: %w", depth, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("peeldb: commit: %w", err)
	}
	return runID, nil
}

// Layers reads back the layer sequence of a run, outermost first.
func (db *DB) Layers(runID string) (peel.Sequence, error) {
	rows, err := db.Query(`
		SELECT members FROM peel_layers WHERE run_id = ? ORDER BY depth`, runID)
	if err != nil {
		return nil, fmt.Errorf("peeldb: query layers: %w", err)
	}
	defer rows.Close()

	var seq peel.Sequence
	for rows.Next() {
		var members string
		if err := rows.Scan(&members); err != nil {
			return nil, fmt.Errorf("peeldb: scan layer: %w", err)
		}
		layer, err := parseMembers(members)
		if err != nil {
			return nil, fmt.Errorf("peeldb: run %s: %w", runID, err)
		}
		seq = append(seq, layer)
	}
	return seq, rows.Err()
}

// ListRuns returns all archived runs, newest first.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, input_path, mode, threshold, dimension, point_count, layer_count, created_at
		FROM peel_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("peeldb: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.InputPath, &r.Mode, &r.Threshold,
			&r.Dimension, &r.PointCount, &r.LayerCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("peeldb: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func formatMembers(layer peel.Layer) string {
	parts := make([]string, len(layer))
	for i, idx := range layer {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, " ")
}

func parseMembers(s string) (peel.Layer, error) {
	fields := strings.Fields(s)
	layer := make(peel.Layer, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid member %q", f)
		}
		layer[i] = v
	}
	return layer, nil
}
