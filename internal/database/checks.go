package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jroosing/hydrazone/internal/helpers"
	"github.com/jroosing/hydrazone/internal/zone"
)

const (
	// DefaultListLimit is used by ListChecks when limit is not positive.
	DefaultListLimit = 100
	// MaxListLimit caps ListChecks.
	MaxListLimit = 1000
)

// Check is one journaled parse attempt.
type Check struct {
	ID         string
	Line       string
	Source     string // "api", "cli", ...
	Accepted   bool
	RecordType string // set when Accepted
	ErrKind    string // set when rejected
	Diagnostic string
	CreatedAt  time.Time
}

// CheckStats summarises the journal.
type CheckStats struct {
	Total    int
	Accepted int
	Rejected int
	ByType   map[string]int
	ByKind   map[string]int
}

// NewCheck describes the outcome of parsing line: row and err are the
// results of zone.ParseRow.
func NewCheck(line, source string, row zone.Row, err error) Check {
	c := Check{Line: line, Source: source}
	if err == nil {
		c.Accepted = true
		if row.Resource != nil {
			c.RecordType = row.Resource.Type().String()
		}
		return c
	}

	c.ErrKind = zone.KindOf(err)
	var pe *zone.ParseError
	if errors.As(err, &pe) {
		c.Diagnostic = pe.Diagnostic()
	} else {
		c.Diagnostic = err.Error()
	}
	return c
}

// RecordCheck stores c and returns it with ID and CreatedAt filled in when
// they were empty.
func (db *DB) RecordCheck(c Check) (Check, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = db.now()
	}
	c.CreatedAt = c.CreatedAt.UTC()

	_, err := db.conn.Exec(`
		INSERT INTO row_checks (id, line, source, accepted, record_type, err_kind, diagnostic, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Line, c.Source, c.Accepted, c.RecordType, c.ErrKind, c.Diagnostic, c.CreatedAt.UnixNano())
	if err != nil {
		return Check{}, fmt.Errorf("failed to record check: %w", err)
	}
	return c, nil
}

// GetCheck returns the check with the given id, or ErrNotFound.
func (db *DB) GetCheck(id string) (Check, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, line, source, accepted, record_type, err_kind, diagnostic, created_at
		FROM row_checks WHERE id = ?
	`, id)

	c, err := scanCheck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Check{}, fmt.Errorf("check %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Check{}, fmt.Errorf("failed to get check: %w", err)
	}
	return c, nil
}

// ListChecks returns up to limit checks, newest first. limit is capped at
// MaxListLimit.
func (db *DB) ListChecks(limit int) ([]Check, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = helpers.ClampInt(limit, 1, MaxListLimit)

	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, line, source, accepted, record_type, err_kind, diagnostic, created_at
		FROM row_checks
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	checks := make([]Check, 0)
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// CheckStats counts the journal by outcome, record type and error kind.
func (db *DB) CheckStats() (CheckStats, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	stats := CheckStats{ByType: map[string]int{}, ByKind: map[string]int{}}

	rows, err := db.conn.Query(`
		SELECT accepted, record_type, err_kind, COUNT(*)
		FROM row_checks
		GROUP BY accepted, record_type, err_kind
	`)
	if err != nil {
		return CheckStats{}, fmt.Errorf("failed to query check stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			accepted bool
			typ      string
			kind     string
			n        int
		)
		if err := rows.Scan(&accepted, &typ, &kind, &n); err != nil {
			return CheckStats{}, fmt.Errorf("failed to scan check stats: %w", err)
		}
		stats.Total += n
		if accepted {
			stats.Accepted += n
			stats.ByType[typ] += n
		} else {
			stats.Rejected += n
			stats.ByKind[kind] += n
		}
	}
	return stats, rows.Err()
}

// PurgeChecks deletes every check and returns how many were removed.
func (db *DB) PurgeChecks() (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec("DELETE FROM row_checks")
	if err != nil {
		return 0, fmt.Errorf("failed to purge checks: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCheck(s scanner) (Check, error) {
	var (
		c       Check
		created int64
	)
	err := s.Scan(&c.ID, &c.Line, &c.Source, &c.Accepted, &c.RecordType, &c.ErrKind, &c.Diagnostic, &created)
	if err != nil {
		return Check{}, err
	}
	c.CreatedAt = time.Unix(0, created).UTC()
	return c, nil
}
