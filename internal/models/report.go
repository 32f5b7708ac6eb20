package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"
)

// RequirementResult is the evaluation outcome for one requirement.
// Score is always within [0, Weight].
type RequirementResult struct {
	RequirementID string            `json:"requirement_id"`
	Name          string            `json:"name"`
	Weight        int               `json:"weight"`
	Status        RequirementStatus `json:"status"`
	Score         float64           `json:"score"`
}

// FrameworkResult aggregates requirement results into a 0-100 score and
// status band for one framework.
type FrameworkResult struct {
	FrameworkID  string              `json:"framework_id"`
	Score        int                 `json:"score"`
	Status       StatusBand          `json:"status"`
	Requirements []RequirementResult `json:"requirements"`
	Compliant    int                 `json:"compliant"`
	Partial      int                 `json:"partial"`
	Missing      int                 `json:"missing"`
}

// RecomputeScore recalculates the framework score from its requirement
// results. Used by tests to verify the stored score is reproducible.
func (fr *FrameworkResult) RecomputeScore() int {
	var achieved, total float64
	for _, rr := range fr.Requirements {
		achieved += rr.Score
		total += float64(rr.Weight)
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * achieved / total))
}

// Issue is a structured finding for a non-compliant requirement.
type Issue struct {
	ID          string            `json:"id"`
	FrameworkID string            `json:"framework_id"`
	Requirement string            `json:"requirement"`
	Status      RequirementStatus `json:"status"`
	Severity    Severity          `json:"severity"`
	Description string            `json:"description"`
	Impact      string            `json:"impact"`
	Remediation string            `json:"remediation"`
}

// IsValid checks if an issue has all required fields.
func (i *Issue) IsValid() error {
	if i.FrameworkID == "" {
		return fmt.Errorf("issue missing required field: framework_id")
	}
	if i.Requirement == "" {
		return fmt.Errorf("issue missing required field: requirement")
	}
	if !IsValidSeverity(i.Severity) {
		return fmt.Errorf("issue has invalid severity: %s", i.Severity)
	}
	if i.Status == StatusCompliant {
		return fmt.Errorf("issue raised for compliant requirement %s", i.Requirement)
	}
	return nil
}

// GenerateIssueID creates a stable, deterministic ID for an issue so the
// same gap maps to the same ID across analyses of the same contract.
func GenerateIssueID(frameworkID, requirementID string, status RequirementStatus) string {
	core := fmt.Sprintf("%s:%s:%s", frameworkID, requirementID, status)
	hash := sha256.Sum256([]byte(core))
	return hex.EncodeToString(hash[:8])
}

// RemediationItem is one recommended fix inside a phase.
type RemediationItem struct {
	FrameworkID string `json:"framework_id" yaml:"framework_id"`
	Requirement string `json:"requirement" yaml:"requirement"`
	Action      string `json:"action" yaml:"action"`
}

// RemediationPhase is a time-boxed bucket of fixes for one severity tier.
type RemediationPhase struct {
	Label    string            `json:"label" yaml:"label"`
	Priority Severity          `json:"priority" yaml:"priority"`
	Items    []RemediationItem `json:"items" yaml:"items"`
}

// EffortEstimate converts the issue set into hours, cost, and staffing.
type EffortEstimate struct {
	TotalHours int    `json:"total_hours" yaml:"total_hours"`
	HourlyRate int    `json:"hourly_rate" yaml:"hourly_rate"`
	TotalCost  int    `json:"total_cost" yaml:"total_cost"`
	Timeline   string `json:"timeline" yaml:"timeline"`
	Staffing   string `json:"staffing" yaml:"staffing"`
}

// Exposure projects the fine range and likelihood for one framework.
type Exposure struct {
	MaxFine    string `json:"max_fine" yaml:"max_fine"`
	Likelihood string `json:"likelihood" yaml:"likelihood"`
}

// Recommendation is a single suggested improvement.
type Recommendation struct {
	Title  string `json:"title"`
	Impact string `json:"impact"`
	Effort string `json:"effort"`
}

// RecommendationGroups holds the two fixed recommendation buckets.
type RecommendationGroups struct {
	QuickWins []Recommendation `json:"quick_wins"`
	Strategic []Recommendation `json:"strategic"`
}

// ComplianceReport is the terminal artifact of one analysis invocation.
type ComplianceReport struct {
	ID                 string                      `json:"id"`
	GeneratedAt        time.Time                   `json:"generated_at"`
	OverallScore       int                         `json:"overall_score"`
	OverallStatus      StatusBand                  `json:"overall_status"`
	RiskLevel          RiskLevel                   `json:"risk_level"`
	DetectedFrameworks []string                    `json:"detected_frameworks"`
	Frameworks         map[string]*FrameworkResult `json:"frameworks"`
	Issues             []Issue                     `json:"issues"`
	Phases             []RemediationPhase          `json:"phases"`
	Effort             EffortEstimate              `json:"effort"`
	Exposure           map[string]Exposure         `json:"exposure"`
	Recommendations    RecommendationGroups        `json:"recommendations"`
}

// CriticalCount returns the number of critical issues in the report.
func (r *ComplianceReport) CriticalCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			count++
		}
	}
	return count
}

// CountBySeverity tallies issues per severity tier.
func (r *ComplianceReport) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int, 4)
	for _, issue := range r.Issues {
		counts[issue.Severity]++
	}
	return counts
}
