// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	r.Use(middleware.WithLogging)

Assigns a request id (or keeps an incoming X-Request-ID), echoes it in the
response, and logs completion with status and duration_ms.

# Metrics

	r.Use(middleware.WithMetrics)

Counts requests and observes latency labelled by chi route pattern.

# CORS

	r.Use(middleware.CORS(cfg.CORSOrigins))

# Admin Gate

	admin.Use(middleware.RequireAdmin(gate))

Answers 401 when no bearer token is sent and 403 when the token is invalid
or expired. The verified principal is available through PrincipalFrom.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ParseJSONBody caps bodies at 10 MiB and turns JSON type mismatches into a
*models.ValidationError.
*/
package middleware
