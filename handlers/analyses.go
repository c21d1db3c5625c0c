// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/scam-shield/app"
	"github.com/danielhkuo/scam-shield/middleware"
	"github.com/danielhkuo/scam-shield/models"
)

type AnalysisHandler struct {
	app *app.App
}

func NewAnalysisHandler(a *app.App) *AnalysisHandler {
	return &AnalysisHandler{app: a}
}

// SaveAnalysis handles POST /api/analyze/save
func (h *AnalysisHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAnalysisRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	analysis, err := req.Validate()
	if err != nil {
		writeBodyError(w, err)
		return
	}

	if err := h.app.Store.InsertAnalysis(r.Context(), analysis); err != nil {
		slog.Error("failed to save analysis", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}

	analysesSaved.Inc()
	slog.Debug("analysis saved", "risk_level", analysis.RiskLevel, "risk_score", analysis.RiskScore)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// GetStats handles GET /api/stats
func (h *AnalysisHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.Store.AggregateStats(r.Context())
	if err != nil {
		slog.Error("failed to aggregate stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalAnalyses:    stats.Total,
		FlaggedScams:     stats.Flagged,
		RiskDistribution: stats.Distribution,
	})
}
