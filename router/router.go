// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/scam-shield/app"
	"github.com/danielhkuo/scam-shield/handlers"
	"github.com/danielhkuo/scam-shield/middleware"
)

// NewRouter wires the API routes. Requests outside /api, /health and
// /metrics go to frontend; a nil frontend leaves them as plain 404s.
func NewRouter(a *app.App, frontend http.Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)
	mux.Use(middleware.WithLogging)
	mux.Use(middleware.WithMetrics)
	mux.Use(middleware.CORS(a.Config.CORSOrigins))

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(a)
	analysisHandler := handlers.NewAnalysisHandler(a)
	reportHandler := handlers.NewReportHandler(a)

	// Health check
	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.Store.Ping(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/api", func(api chi.Router) {
		// Public
		api.Post("/admin/login", adminHandler.Login)
		api.Post("/analyze/save", analysisHandler.SaveAnalysis)
		api.Get("/stats", analysisHandler.GetStats)
		api.Post("/reports", reportHandler.SubmitReport)

		// Admin only
		api.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin(a.Gate))
			admin.Get("/admin/reports", reportHandler.ListReports)
			admin.Patch("/admin/reports/{id}", reportHandler.UpdateReportStatus)
		})

		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Unknown API route")
		})
	})

	if frontend != nil {
		mux.NotFound(frontend.ServeHTTP)
	}

	return mux
}
