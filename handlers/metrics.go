// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scamshield_analyses_saved_total",
		Help: "Analyses persisted.",
	})

	reportsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scamshield_reports_submitted_total",
		Help: "Scam reports persisted.",
	})

	reportStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamshield_report_status_updates_total",
		Help: "Report status updates by new status.",
	}, []string{"status"})

	adminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scamshield_admin_logins_total",
		Help: "Admin login attempts by result.",
	}, []string{"result"})
)
