// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/scam-shield/app"
	"github.com/danielhkuo/scam-shield/cliparse"
	"github.com/danielhkuo/scam-shield/models"
)

// TestAdminPassword is the admin password of GetTestConfig
const TestAdminPassword = "test-admin-password"

// GetTestConfig returns a standard test configuration backed by a fresh
// SQLite file in a per-test temp dir.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:          3000,
		BindAddr:      "127.0.0.1",
		DatabaseType:  cliparse.DatabaseSQLite,
		DatabaseURL:   filepath.Join(t.TempDir(), "scam_shield_test.db"),
		AdminPassword: TestAdminPassword,
		JWTSecret:     "test-signing-key",
		Mode:          cliparse.ModeDevelopment,
		CORSOrigins:   []string{"*"},
	}
}

// SetupTestApp builds an App over an empty database. It is closed when the
// test finishes.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	a, err := app.New(context.Background(), GetTestConfig(t))
	if err != nil {
		t.Fatalf("Failed to set up app: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

// AdminToken issues a valid admin token for a.
func AdminToken(t *testing.T, a *app.App) string {
	t.Helper()

	token, err := a.Gate.IssueToken(TestAdminPassword)
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// BearerHeader returns request headers carrying token.
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestAnalysis inserts an analysis directly through the store
func CreateTestAnalysis(t *testing.T, a *app.App, level string, score int) {
	t.Helper()

	err := a.Store.InsertAnalysis(context.Background(), models.Analysis{
		JobTitle:    "Test Job",
		CompanyName: "Test Co",
		RiskScore:   score,
		RiskLevel:   level,
	})
	if err != nil {
		t.Fatalf("Failed to create test analysis: %v", err)
	}
}

// CreateTestReport inserts a report and returns its id
func CreateTestReport(t *testing.T, a *app.App, title string) int64 {
	t.Helper()

	ctx := context.Background()
	err := a.Store.InsertReport(ctx, models.NewReport{
		JobTitle:    title,
		CompanyName: "Test Co",
		Description: "Asked for an upfront training fee",
	})
	if err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}

	reports, err := a.Store.ListReports(ctx)
	if err != nil || len(reports) == 0 {
		t.Fatalf("Failed to read back test report: %v", err)
	}
	return reports[0].ID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
