package types

import (
	"log/slog"

	"github.com/google/uuid"
)

// TeamID represents a Wirespeed team identifier
type TeamID string

// String returns the string representation
func (id TeamID) String() string {
	return string(id)
}

// CaseID represents a case identifier
type CaseID string

// String returns the string representation
func (id CaseID) String() string {
	return string(id)
}

// DetectionID represents a detection identifier
type DetectionID string

// String returns the string representation
func (id DetectionID) String() string {
	return string(id)
}

// APIKey is a bearer credential for the Wirespeed API. It is redacted when logged.
type APIKey string

// String returns the raw credential
func (k APIKey) String() string {
	return string(k)
}

// LogValue hides the credential from structured logs
func (k APIKey) LogValue() slog.Value {
	if k == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("[REDACTED]")
}

// ReportID identifies a single report generation for log correlation
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID using UUID v7
func NewReportID() ReportID {
	id, err := uuid.NewV7()
	if err != nil {
		return ReportID(uuid.New().String())
	}
	return ReportID(id.String())
}
