// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the SQL store.

Open connects, pings and creates the schema, which is safe to repeat:

	store, err := db.Open(ctx, cliparse.DatabaseSQLite, "scam_shield.db")

SQLite (modernc.org/sqlite, no cgo) is the default. PostgreSQL is available
through lib/pq for deployments that already run one.

# Tables

  - analyses: job_title, company_name, risk_score, risk_level, created_at
  - reports: job_title, company_name, description, status, created_at

Both are append-only. The only update is a report's status.
*/
package db
