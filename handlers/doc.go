// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Scam Shield API.

# Handler Types

Each handler is a struct holding the *app.App:

  - AdminHandler: admin login
  - AnalysisHandler: analysis submission and statistics
  - ReportHandler: report submission and admin review

	reportHandler := handlers.NewReportHandler(a)

# Endpoints

	POST  /api/admin/login        → Login (returns token)
	POST  /api/analyze/save       → SaveAnalysis
	GET   /api/stats              → GetStats
	POST  /api/reports            → SubmitReport
	GET   /api/admin/reports      → ListReports (admin)
	PATCH /api/admin/reports/{id} → UpdateReportStatus (admin)

Admin handlers assume middleware.RequireAdmin has already run.

# Validation

Request bodies decode into typed structs from models and are validated
before any store call. A failure answers 400 with the offending field in
the message. Store errors are logged and answered with 500.
*/
package handlers
