// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/scam-shield/cliparse"
	"github.com/danielhkuo/scam-shield/models"
)

// Store wraps the database handle. Every method is a single statement (or a
// sequence of independent reads) and safe for concurrent use.
type Store struct {
	db     *sql.DB
	dbType string
}

// Open connects to the configured database, verifies the connection and
// creates the schema.
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	driver := "sqlite"
	if dbType == cliparse.DatabasePostgres {
		driver = "postgres"
	}

	dsn := url
	if dbType == cliparse.DatabaseSQLite {
		dsn = sqliteDSN(url)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == cliparse.DatabaseSQLite {
		// A single connection serializes writers.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(ctx, conn, dbType); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn, dbType: dbType}, nil
}

// sqliteDSN adds a busy timeout to a SQLite path. The driver applies
// _pragma parameters to every connection it opens.
func sqliteDSN(path string) string {
	if strings.Contains(path, "busy_timeout") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InsertAnalysis appends an analysis record.
func (s *Store) InsertAnalysis(ctx context.Context, a models.Analysis) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (job_title, company_name, risk_score, risk_level)
		VALUES ($1, $2, $3, $4)
	`, a.JobTitle, a.CompanyName, a.RiskScore, a.RiskLevel)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// AggregateStats counts all analyses, those at the high-risk level, and the
// per-level distribution.
func (s *Store) AggregateStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&stats.Total)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count analyses: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM analyses WHERE risk_level = $1", models.HighRiskLevel,
	).Scan(&stats.Flagged)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count flagged analyses: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(risk_level, ''), COUNT(*)
		FROM analyses
		GROUP BY risk_level
		ORDER BY risk_level
	`)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to query risk distribution: %w", err)
	}
	defer rows.Close()

	stats.Distribution = []models.RiskBucket{}
	for rows.Next() {
		var b models.RiskBucket
		if err := rows.Scan(&b.RiskLevel, &b.Count); err != nil {
			return models.Stats{}, fmt.Errorf("failed to scan risk bucket: %w", err)
		}
		stats.Distribution = append(stats.Distribution, b)
	}
	if err := rows.Err(); err != nil {
		return models.Stats{}, fmt.Errorf("failed to read risk distribution: %w", err)
	}

	return stats, nil
}

// InsertReport appends a report; status takes the column default.
func (s *Store) InsertReport(ctx context.Context, r models.NewReport) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (job_title, company_name, description)
		VALUES ($1, $2, $3)
	`, r.JobTitle, r.CompanyName, r.Description)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// ListReports returns every report, newest first.
func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(job_title, ''), COALESCE(company_name, ''),
		       COALESCE(description, ''), COALESCE(status, $1), created_at
		FROM reports
		ORDER BY created_at DESC, id DESC
	`, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var r models.Report
		var createdAt timestamp
		if err := rows.Scan(&r.ID, &r.JobTitle, &r.CompanyName, &r.Description, &r.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		r.CreatedAt = time.Time(createdAt)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reports: %w", err)
	}

	return reports, nil
}

// UpdateReportStatus overwrites the status of report id. An unknown id
// matches no rows and is not an error.
func (s *Store) UpdateReportStatus(ctx context.Context, id int64, status string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE reports SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update report %d: %w", id, err)
	}
	return nil
}

// timestamp scans created_at from either driver. SQLite may hand back the
// CURRENT_TIMESTAMP text instead of a time.Time.
type timestamp time.Time

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = timestamp(time.Time{})
		return nil
	case time.Time:
		*t = timestamp(v)
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
