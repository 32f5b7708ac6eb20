package analyzer

import (
	"fmt"

	"github.com/clauseguard/clauseguard/internal/catalog"
	"github.com/clauseguard/clauseguard/internal/models"
)

// impactForSeverity is the fixed severity to impact-text table.
func impactForSeverity(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical:
		return "Exposes the business to regulatory enforcement and material financial penalties"
	case models.SeverityHigh:
		return "Likely to be flagged in counterparty or regulator review and delay execution"
	case models.SeverityMedium:
		return "Weakens the compliance posture and may require renegotiation later"
	case models.SeverityLow:
		return "Minor gap; low standalone risk but contributes to overall exposure"
	default:
		return "Unassessed impact"
	}
}

// describeGap produces the canned issue description for a non-compliant
// requirement.
func describeGap(requirement string, status models.RequirementStatus) string {
	if status == models.StatusMissing {
		return fmt.Sprintf("The contract contains no language addressing %s", requirement)
	}
	return fmt.Sprintf("The contract addresses %s only partially or in unclear terms", requirement)
}

// generateIssues emits one issue per non-compliant requirement of a scored
// framework. Severity comes from the requirement weight alone.
func generateIssues(fw models.Framework, result *models.FrameworkResult, actions *catalog.ActionCatalog) []models.Issue {
	var issues []models.Issue
	for _, rr := range result.Requirements {
		if rr.Status == models.StatusCompliant {
			continue
		}

		severity := models.SeverityForWeight(rr.Weight)
		issues = append(issues, models.Issue{
			ID:          models.GenerateIssueID(fw.ID, rr.RequirementID, rr.Status),
			FrameworkID: fw.ID,
			Requirement: rr.Name,
			Status:      rr.Status,
			Severity:    severity,
			Description: describeGap(rr.Name, rr.Status),
			Impact:      impactForSeverity(severity),
			Remediation: actions.Action(fw.ID, fw.Name, rr.Name),
		})
	}
	return issues
}
