// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Scam Shield API.

	mux := router.NewRouter(app, frontend)

Every request passes through panic recovery, request logging, Prometheus
metrics and CORS. Routes under /api/admin other than login also require a
bearer token.

Unknown /api paths get a JSON 404. Any other unmatched path is handed to
the front-end handler from package assets.
*/
package router
