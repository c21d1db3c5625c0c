// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/scam-shield/app"
	"github.com/danielhkuo/scam-shield/auth"
	"github.com/danielhkuo/scam-shield/middleware"
	"github.com/danielhkuo/scam-shield/models"
)

type AdminHandler struct {
	app *app.App
}

func NewAdminHandler(a *app.App) *AdminHandler {
	return &AdminHandler{app: a}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	token, err := h.app.Gate.IssueToken(req.Password)
	if errors.Is(err, auth.ErrInvalidCredential) {
		adminLogins.WithLabelValues("rejected").Inc()
		slog.Warn("admin login rejected", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	if err != nil {
		slog.Error("failed to issue admin token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	adminLogins.WithLabelValues("accepted").Inc()
	slog.Info("admin logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// writeBodyError maps a request decoding or validation failure to 400.
func writeBodyError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
}
