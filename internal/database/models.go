package database

import (
	"time"

	"github.com/clauseguard/clauseguard/internal/models"
)

// Analysis represents one stored analysis run.
type Analysis struct {
	CreatedAt          time.Time
	ReportID           string
	Client             string
	Source             string
	OverallStatus      models.StatusBand
	RiskLevel          models.RiskLevel
	DetectedFrameworks []string
	OverallScore       int
	IssueCount         int
	ID                 int64
}

// IssueRow represents a stored compliance issue.
type IssueRow struct {
	IssueID     string
	FrameworkID string
	Requirement string
	Status      models.RequirementStatus
	Severity    models.Severity
	Description string
	Remediation string
	ID          int64
	AnalysisID  int64
}

// IssueFilter narrows issue queries.
type IssueFilter struct {
	Severity models.Severity
	Limit    int
	Offset   int
}
