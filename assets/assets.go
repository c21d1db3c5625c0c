// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package assets serves the front-end.
package assets

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/danielhkuo/scam-shield/cliparse"
)

// New returns the front-end handler for the configured mode.
func New(cfg cliparse.Config) (http.Handler, error) {
	if cfg.IsProduction() {
		slog.Info("serving front-end from disk", "dir", cfg.DistDir)
		return NewSPA(cfg.DistDir), nil
	}
	slog.Info("proxying front-end to dev server", "url", cfg.DevServerURL)
	return NewDevProxy(cfg.DevServerURL)
}

// NewDevProxy forwards requests to the front-end dev server. Websocket
// upgrades pass through, so live reload keeps working.
func NewDevProxy(target string) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid dev server URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid dev server URL %q", target)
	}

	proxy := httputil.NewSingleHostReverseProxy(u)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		slog.Error("dev server unreachable", "url", target, "path", r.URL.Path, "error", err)
		http.Error(w, "front-end dev server unavailable", http.StatusBadGateway)
	}
	return proxy, nil
}

// NewSPA serves files from dir. Paths that don't name an existing file get
// dir/index.html so client-side routes resolve.
func NewSPA(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		serveIndex(w, r, index)
	})
}

// serveIndex writes the entry document regardless of the request path.
// http.ServeFile would reject paths containing "..".
func serveIndex(w http.ResponseWriter, r *http.Request, index string) {
	f, err := os.Open(index)
	if err != nil {
		slog.Error("index.html unavailable", "path", index, "error", err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "failed to read index.html", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", info.ModTime(), f)
}
