package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jroosing/hydrazone/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "checks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// clock returns a now func that advances one second per call.
func clock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Health())
	v, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
}

func TestOpenTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checks.db")

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.RecordCheck(Check{Line: "www A 192.0.2.1", Accepted: true, RecordType: "A"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	checks, err := db.ListChecks(0)
	require.NoError(t, err)
	assert.Len(t, checks, 1)
}

func TestRecordAndGetCheck(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	db.now = clock(start)

	saved, err := db.RecordCheck(Check{
		Line:       "foo 300 IN BOGUS 1.2.3.4",
		Source:     "api",
		ErrKind:    "syntax",
		Diagnostic: "0: at line 1:\n",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, start.Add(time.Second), saved.CreatedAt)

	got, err := db.GetCheck(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.False(t, got.Accepted)
}

func TestGetCheckNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := db.GetCheck("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListChecksNewestFirst(t *testing.T) {
	db := openTestDB(t)
	db.now = clock(time.Unix(1700000000, 0))

	for _, line := range []string{"a A 192.0.2.1", "b A 192.0.2.2", "c A 192.0.2.3"} {
		_, err := db.RecordCheck(Check{Line: line, Accepted: true, RecordType: "A"})
		require.NoError(t, err)
	}

	checks, err := db.ListChecks(2)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "c A 192.0.2.3", checks[0].Line)
	assert.Equal(t, "b A 192.0.2.2", checks[1].Line)
}

func TestListChecksEmpty(t *testing.T) {
	db := openTestDB(t)

	checks, err := db.ListChecks(10)
	require.NoError(t, err)
	assert.NotNil(t, checks)
	assert.Empty(t, checks)
}

func TestCheckStatsAndPurge(t *testing.T) {
	db := openTestDB(t)

	records := []Check{
		{Line: "a A 192.0.2.1", Accepted: true, RecordType: "A"},
		{Line: "b A 192.0.2.2", Accepted: true, RecordType: "A"},
		{Line: "c MX 10 mail", Accepted: true, RecordType: "MX"},
		{Line: "d BOGUS x", ErrKind: "syntax"},
		{Line: "e MX 10", ErrKind: "incomplete"},
	}
	for _, c := range records {
		_, err := db.RecordCheck(c)
		require.NoError(t, err)
	}

	stats, err := db.CheckStats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Accepted)
	assert.Equal(t, 2, stats.Rejected)
	assert.Equal(t, map[string]int{"A": 2, "MX": 1}, stats.ByType)
	assert.Equal(t, map[string]int{"syntax": 1, "incomplete": 1}, stats.ByKind)

	n, err := db.PurgeChecks()
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	stats, err = db.CheckStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByType)
}

func TestNewCheck(t *testing.T) {
	row, err := zone.ParseRow("www MX 10 mail")
	require.NoError(t, err)
	c := NewCheck("www MX 10 mail", "cli", row, nil)
	assert.True(t, c.Accepted)
	assert.Equal(t, "MX", c.RecordType)
	assert.Empty(t, c.ErrKind)

	_, err = zone.ParseRow("www BOGUS x")
	require.Error(t, err)
	c = NewCheck("www BOGUS x", "api", zone.Row{}, err)
	assert.False(t, c.Accepted)
	assert.Equal(t, "syntax", c.ErrKind)
	assert.Contains(t, c.Diagnostic, "in Resource Data")

	_, err = zone.ParseRow("www A \xff")
	require.Error(t, err)
	c = NewCheck("www A \xff", "api", zone.Row{}, err)
	assert.Equal(t, "tokenize", c.ErrKind)
	assert.Contains(t, c.Diagnostic, "invalid input encoding")
}
