// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/scam-shield/cliparse"
	"github.com/danielhkuo/scam-shield/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), cliparse.DatabaseSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_CreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first, err := Open(ctx, cliparse.DatabaseSQLite, path)
	require.NoError(t, err)
	require.NoError(t, first.InsertReport(ctx, models.NewReport{JobTitle: "a", CompanyName: "b", Description: "c"}))
	require.NoError(t, first.Close())

	// Reopening must keep existing rows
	second, err := Open(ctx, cliparse.DatabaseSQLite, path)
	require.NoError(t, err)
	defer second.Close()

	reports, err := second.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.NoError(t, second.Ping(ctx))
}

func TestOpen_BusyTimeoutOnEveryConnection(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// No idle connections: each query dials a fresh one.
	store.db.SetMaxIdleConns(0)

	for i := 0; i < 3; i++ {
		var timeout int
		require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout)
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"scam_shield.db", "scam_shield.db?_pragma=busy_timeout(5000)"},
		{"file:data.db?mode=rwc", "file:data.db?mode=rwc&_pragma=busy_timeout(5000)"},
		{"data.db?_pragma=busy_timeout(100)", "data.db?_pragma=busy_timeout(100)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.in), tt.in)
	}
}

func TestAggregateStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	stats, err := store.AggregateStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Flagged)
	assert.NotNil(t, stats.Distribution)
	assert.Empty(t, stats.Distribution)

	analyses := []models.Analysis{
		{JobTitle: "Data Entry", CompanyName: "Acme", RiskScore: 85, RiskLevel: "High Risk"},
		{JobTitle: "Courier", CompanyName: "Fast Ltd", RiskScore: 90, RiskLevel: "High Risk"},
		{JobTitle: "Engineer", CompanyName: "Real Corp", RiskScore: 10, RiskLevel: "Low Risk"},
		{JobTitle: "Assistant", CompanyName: "Maybe Inc", RiskScore: 50, RiskLevel: "Medium Risk"},
		// Not the sentinel: match is exact
		{JobTitle: "Agent", CompanyName: "Lower Co", RiskScore: 80, RiskLevel: "high risk"},
	}
	for _, a := range analyses {
		require.NoError(t, store.InsertAnalysis(ctx, a))
	}

	stats, err = store.AggregateStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Flagged)
	assert.ElementsMatch(t, []models.RiskBucket{
		{RiskLevel: "High Risk", Count: 2},
		{RiskLevel: "Low Risk", Count: 1},
		{RiskLevel: "Medium Risk", Count: 1},
		{RiskLevel: "high risk", Count: 1},
	}, stats.Distribution)
}

func TestReports_DefaultStatusAndOrdering(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, store.InsertReport(ctx, models.NewReport{
			JobTitle:    title,
			CompanyName: "Acme",
			Description: "suspicious",
		}))
	}

	reports, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	// Newest first, ids strictly decreasing
	assert.Equal(t, "third", reports[0].JobTitle)
	assert.Equal(t, "second", reports[1].JobTitle)
	assert.Equal(t, "first", reports[2].JobTitle)
	for i := 1; i < len(reports); i++ {
		assert.Greater(t, reports[i-1].ID, reports[i].ID)
		assert.False(t, reports[i-1].CreatedAt.Before(reports[i].CreatedAt))
	}

	for _, r := range reports {
		assert.Equal(t, models.StatusPending, r.Status)
		assert.WithinDuration(t, time.Now(), r.CreatedAt, time.Hour)
	}
}

func TestUpdateReportStatus(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two"} {
		require.NoError(t, store.InsertReport(ctx, models.NewReport{JobTitle: title, CompanyName: "c", Description: "d"}))
	}
	before, err := store.ListReports(ctx)
	require.NoError(t, err)
	target := before[1]

	require.NoError(t, store.UpdateReportStatus(ctx, target.ID, models.StatusConfirmed))

	after, err := store.ListReports(ctx)
	require.NoError(t, err)
	for i, r := range after {
		if r.ID == target.ID {
			assert.Equal(t, models.StatusConfirmed, r.Status)
		} else {
			assert.Equal(t, models.StatusPending, r.Status)
		}
		// Only status changes
		assert.Equal(t, before[i].CreatedAt, r.CreatedAt)
		assert.Equal(t, before[i].JobTitle, r.JobTitle)
	}

	// Unknown id is a silent no-op
	require.NoError(t, store.UpdateReportStatus(ctx, 9999, "whatever"))
	unchanged, err := store.ListReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, unchanged)
}

func TestTimestampScan(t *testing.T) {
	want := time.Date(2026, 10, 15, 2, 27, 0, 0, time.UTC)

	tests := []struct {
		name string
		src  any
	}{
		{"time value", want},
		{"sqlite text", "2026-10-15 02:27:00"},
		{"bytes", []byte("2026-10-15 02:27:00")},
		{"rfc3339", "2026-10-15T02:27:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts timestamp
			require.NoError(t, ts.Scan(tt.src))
			assert.True(t, want.Equal(time.Time(ts)))
		})
	}

	var ts timestamp
	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(42))
}
