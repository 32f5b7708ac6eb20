// Package remediation builds time-boxed remediation plans and effort
// estimates from compliance issues.
package remediation

import "github.com/clauseguard/clauseguard/internal/models"

// phaseLabels maps each severity tier to its time-boxed phase, in the fixed
// order phases appear in a plan.
var phaseLabels = []struct {
	Severity models.Severity
	Label    string
}{
	{models.SeverityCritical, "Immediate (0-7 days)"},
	{models.SeverityHigh, "Short-term (1-4 weeks)"},
	{models.SeverityMedium, "Medium-term (1-3 months)"},
	{models.SeverityLow, "Long-term (3-6 months)"},
}

// PlanPhases buckets issues into severity-ordered phases. Only severities
// actually present in the issue set produce a phase; phases are never empty.
func PlanPhases(issues []models.Issue) []models.RemediationPhase {
	bySeverity := make(map[models.Severity][]models.RemediationItem, 4)
	for _, issue := range issues {
		bySeverity[issue.Severity] = append(bySeverity[issue.Severity], models.RemediationItem{
			FrameworkID: issue.FrameworkID,
			Requirement: issue.Requirement,
			Action:      issue.Remediation,
		})
	}

	var phases []models.RemediationPhase
	for _, pl := range phaseLabels {
		items := bySeverity[pl.Severity]
		if len(items) == 0 {
			continue
		}
		phases = append(phases, models.RemediationPhase{
			Label:    pl.Label,
			Priority: pl.Severity,
			Items:    items,
		})
	}
	return phases
}
