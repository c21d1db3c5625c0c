// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/scam-shield/app"
	"github.com/danielhkuo/scam-shield/middleware"
	"github.com/danielhkuo/scam-shield/models"
)

type ReportHandler struct {
	app *app.App
}

func NewReportHandler(a *app.App) *ReportHandler {
	return &ReportHandler{app: a}
}

// SubmitReport handles POST /api/reports
func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitReportRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	report, err := req.Validate()
	if err != nil {
		writeBodyError(w, err)
		return
	}

	if err := h.app.Store.InsertReport(r.Context(), report); err != nil {
		slog.Error("failed to save report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save report")
		return
	}

	reportsSubmitted.Inc()
	slog.Info("report submitted", "company", report.CompanyName)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// ListReports handles GET /api/admin/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.app.Store.ListReports(r.Context())
	if err != nil {
		slog.Error("failed to list reports", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reports)
}

// UpdateReportStatus handles PATCH /api/admin/reports/{id}
func (h *ReportHandler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id: must be a positive integer")
		return
	}

	var req models.UpdateReportStatusRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	status, err := req.Validate()
	if err != nil {
		writeBodyError(w, err)
		return
	}

	if err := h.app.Store.UpdateReportStatus(r.Context(), id, status); err != nil {
		slog.Error("failed to update report status", "report_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update report")
		return
	}

	reportStatusUpdates.WithLabelValues(statusLabel(status)).Inc()
	slog.Info("report status updated", "report_id", id, "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// statusLabel keeps the metric label set bounded; status itself is free text.
func statusLabel(status string) string {
	switch status {
	case models.StatusPending, models.StatusReviewed, models.StatusConfirmed, models.StatusDismissed:
		return status
	}
	return "other"
}
