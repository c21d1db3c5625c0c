// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/scam-shield/models"
	"github.com/danielhkuo/scam-shield/testutil"
)

// withURLParam attaches a chi route param the way the router would
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSubmitReport(t *testing.T) {
	a := testutil.SetupTestApp(t)
	handler := NewReportHandler(a)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid report",
			requestBody: models.SubmitReportRequest{
				JobTitle: "Remote Packager", CompanyName: "Boxes R Us", Description: "Wanted my bank login",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing description",
			requestBody:    models.SubmitReportRequest{JobTitle: "Remote Packager", CompanyName: "Boxes R Us"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "description wrong type",
			requestBody:    map[string]interface{}{"jobTitle": "x", "companyName": "y", "description": []string{"z"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/reports", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.SubmitReport(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	reports, err := a.Store.ListReports(t.Context())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Boxes R Us", reports[0].CompanyName)
	assert.Equal(t, models.StatusPending, reports[0].Status)
}

func TestListReports(t *testing.T) {
	a := testutil.SetupTestApp(t)
	handler := NewReportHandler(a)

	older := testutil.CreateTestReport(t, a, "older")
	newer := testutil.CreateTestReport(t, a, "newer")

	w := httptest.NewRecorder()
	handler.ListReports(w, testutil.MakeRequest("GET", "/api/admin/reports", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var reports []models.Report
	testutil.AssertJSON(t, w, &reports)
	require.Len(t, reports, 2)
	assert.Equal(t, newer, reports[0].ID)
	assert.Equal(t, older, reports[1].ID)
	assert.False(t, reports[0].CreatedAt.IsZero())
}

func TestListReports_Empty(t *testing.T) {
	a := testutil.SetupTestApp(t)
	handler := NewReportHandler(a)

	w := httptest.NewRecorder()
	handler.ListReports(w, testutil.MakeRequest("GET", "/api/admin/reports", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateReportStatus(t *testing.T) {
	a := testutil.SetupTestApp(t)
	handler := NewReportHandler(a)

	target := testutil.CreateTestReport(t, a, "target")
	other := testutil.CreateTestReport(t, a, "other")

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		expectedStatus int
	}{
		{"valid update", "", models.UpdateReportStatusRequest{Status: models.StatusConfirmed}, http.StatusOK},
		{"unknown id is a no-op", "424242", models.UpdateReportStatusRequest{Status: "reviewed"}, http.StatusOK},
		{"non-numeric id", "abc", models.UpdateReportStatusRequest{Status: "reviewed"}, http.StatusBadRequest},
		{"zero id", "0", models.UpdateReportStatusRequest{Status: "reviewed"}, http.StatusBadRequest},
		{"missing status", "", map[string]string{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.id
			if id == "" {
				id = strconv.FormatInt(target, 10)
			}
			req := testutil.MakeRequest("PATCH", "/api/admin/reports/"+id, tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.UpdateReportStatus(w, withURLParam(req, "id", id))

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	reports, err := a.Store.ListReports(t.Context())
	require.NoError(t, err)
	for _, r := range reports {
		switch r.ID {
		case target:
			assert.Equal(t, models.StatusConfirmed, r.Status)
		case other:
			assert.Equal(t, models.StatusPending, r.Status)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "confirmed", statusLabel(models.StatusConfirmed))
	assert.Equal(t, "other", statusLabel("escalated to legal"))
}
