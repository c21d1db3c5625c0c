// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Scam Shield API server.

Scam Shield scores job postings for scam risk in the browser and sends the
results here. The server stores each analysis, serves aggregate statistics,
collects scam reports from users, and lets an admin review those reports.

# Starting the Server

With no configuration the server listens on 0.0.0.0:3000 and keeps its data
in scam_shield.db:

	go run .

Or with flags:

	go run . -p 8080 -d /var/lib/scam-shield/data.db -env production

A .env file in the working directory is loaded first; real environment
variables take precedence over it.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - BIND_ADDR (-addr): Bind address (default: 0.0.0.0)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - ADMIN_PASSWORD (-admin-password): Admin login password
  - ADMIN_PASSWORD_HASH: bcrypt hash used instead of ADMIN_PASSWORD
  - JWT_SECRET (-jwt-secret): Admin token signing key
  - APP_ENV or NODE_ENV (-env): development or production
  - DIST_DIR (-dist): Built front-end directory (production)
  - DEV_SERVER_URL (-dev-server): Front-end dev server (development)
  - CORS_ORIGINS (-cors): Allowed origins, comma-separated
  - LOG_LEVEL (-log-level): debug, info, warn or error

ADMIN_PASSWORD and JWT_SECRET fall back to well-known defaults when unset.
The server logs a warning at startup for each default in use; set both in
any shared deployment.

# Architecture

  - app: Store, auth gate and config, built once in main
  - router: chi routes and middleware stack
  - handlers: HTTP request handlers
  - middleware: logging, metrics, CORS, admin gate, JSON helpers
  - auth: admin password check and JWT issue/verify
  - db: SQL store and schema
  - assets: front-end dev proxy or static SPA serving
  - models: request, response and domain types
  - cliparse: configuration parsing
*/
package main
