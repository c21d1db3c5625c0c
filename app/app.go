// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package app holds the per-process state shared by all handlers.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/scam-shield/auth"
	"github.com/danielhkuo/scam-shield/cliparse"
	"github.com/danielhkuo/scam-shield/db"
)

// App owns everything a request handler needs. It is built once at startup,
// shared read-only by all requests, and closed on shutdown.
type App struct {
	Config cliparse.Config
	Store  *db.Store
	Gate   *auth.Gate
}

// New opens the store and prepares the auth gate.
func New(ctx context.Context, cfg cliparse.Config) (*App, error) {
	if cfg.UsingDefaultPassword {
		slog.Warn("ADMIN_PASSWORD not set, using the built-in default password")
	}
	if cfg.UsingDefaultSecret {
		slog.Warn("JWT_SECRET not set, admin tokens are signed with the built-in default key")
	}

	if cfg.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid ADMIN_PASSWORD_HASH: %w", err)
		}
	}

	store, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	return &App{
		Config: cfg,
		Store:  store,
		Gate:   auth.NewGate(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.JWTSecret),
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
