// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

Request types carry the front-end's camelCase JSON and each has a Validate
method that returns the typed domain value or a *ValidationError:

	analysis, err := req.Validate()

Report is serialized in the snake_case row shape the admin UI reads
(job_title, company_name, created_at).

HighRiskLevel ("High Risk") is the label counted as a flagged scam.
*/
package models
