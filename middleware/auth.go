// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/scam-shield/auth"
)

const principalKey contextKey = "principal"

// TokenVerifier is satisfied by *auth.Gate.
type TokenVerifier interface {
	VerifyToken(token string) (auth.Principal, error)
}

// RequireAdmin rejects requests without a valid bearer token: 401 when no
// token is presented, 403 when the token fails verification.
func RequireAdmin(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				ErrorResponse(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}

			principal, err := v.VerifyToken(token)
			if err != nil {
				slog.Warn("admin token rejected",
					"request_id", RequestID(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				ErrorResponse(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom returns the principal stored by RequireAdmin.
func PrincipalFrom(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}
