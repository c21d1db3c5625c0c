package models

import (
	"fmt"
	"time"
)

// HighRiskLevel is the risk level counted as a flagged scam in stats.
const HighRiskLevel = "High Risk"

// Report status constants. The set is open-ended; these are the values the
// front-end uses.
const (
	StatusPending   = "pending"
	StatusReviewed  = "reviewed"
	StatusConfirmed = "confirmed"
	StatusDismissed = "dismissed"
)

// RoleAdmin is the only role claim issued in admin tokens.
const RoleAdmin = "admin"

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

// RiskScore is a pointer so an absent field can be told apart from zero.
type SaveAnalysisRequest struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	RiskScore   *int   `json:"riskScore"`
	RiskLevel   string `json:"riskLevel"`
}

type SubmitReportRequest struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type StatsResponse struct {
	TotalAnalyses    int          `json:"totalAnalyses"`
	FlaggedScams     int          `json:"flaggedScams"`
	RiskDistribution []RiskBucket `json:"riskDistribution"`
}

// Domain types

// Analysis is a validated risk-assessment submission.
type Analysis struct {
	JobTitle    string
	CompanyName string
	RiskScore   int
	RiskLevel   string
}

// NewReport is a validated report submission.
type NewReport struct {
	JobTitle    string
	CompanyName string
	Description string
}

type Report struct {
	ID          int64     `json:"id"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type RiskBucket struct {
	RiskLevel string `json:"risk_level"`
	Count     int    `json:"count"`
}

type Stats struct {
	Total        int
	Flagged      int
	Distribution []RiskBucket
}

// Validation

// ValidationError reports a request field that failed boundary validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// Validate converts the request into an Analysis.
func (r SaveAnalysisRequest) Validate() (Analysis, error) {
	for _, f := range []struct{ name, value string }{
		{"jobTitle", r.JobTitle},
		{"companyName", r.CompanyName},
		{"riskLevel", r.RiskLevel},
	} {
		if err := required(f.name, f.value); err != nil {
			return Analysis{}, err
		}
	}
	if r.RiskScore == nil {
		return Analysis{}, &ValidationError{Field: "riskScore", Message: "is required"}
	}
	return Analysis{
		JobTitle:    r.JobTitle,
		CompanyName: r.CompanyName,
		RiskScore:   *r.RiskScore,
		RiskLevel:   r.RiskLevel,
	}, nil
}

// Validate converts the request into a NewReport.
func (r SubmitReportRequest) Validate() (NewReport, error) {
	for _, f := range []struct{ name, value string }{
		{"jobTitle", r.JobTitle},
		{"companyName", r.CompanyName},
		{"description", r.Description},
	} {
		if err := required(f.name, f.value); err != nil {
			return NewReport{}, err
		}
	}
	return NewReport{
		JobTitle:    r.JobTitle,
		CompanyName: r.CompanyName,
		Description: r.Description,
	}, nil
}

func (r UpdateReportStatusRequest) Validate() (string, error) {
	if err := required("status", r.Status); err != nil {
		return "", err
	}
	return r.Status, nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
