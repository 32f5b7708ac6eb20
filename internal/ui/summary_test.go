package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clauseguard/clauseguard/internal/models"
)

func summaryReport() *models.ComplianceReport {
	return &models.ComplianceReport{
		ID:                 "report-1",
		OverallScore:       62,
		OverallStatus:      models.BandAttention,
		RiskLevel:          models.RiskMedium,
		DetectedFrameworks: []string{"gdpr", "soc2"},
		Frameworks: map[string]*models.FrameworkResult{
			"soc2": {FrameworkID: "soc2", Score: 75, Status: models.BandGood, Compliant: 4, Partial: 2},
			"gdpr": {FrameworkID: "gdpr", Score: 49, Status: models.BandCritical, Compliant: 2, Partial: 2, Missing: 3},
		},
		Issues: []models.Issue{
			{ID: "a", FrameworkID: "gdpr", Requirement: "Data Retention", Status: models.StatusMissing, Severity: models.SeverityMedium},
			{ID: "b", FrameworkID: "gdpr", Requirement: "Breach Notification", Status: models.StatusMissing, Severity: models.SeverityCritical},
		},
		Phases: []models.RemediationPhase{
			{Label: "Immediate (0-7 days)", Priority: models.SeverityCritical, Items: []models.RemediationItem{{Requirement: "Breach Notification"}}},
		},
		Effort: models.EffortEstimate{TotalHours: 20, HourlyRate: 150, TotalCost: 3000, Timeline: "1 week", Staffing: "1 person"},
		Exposure: map[string]models.Exposure{
			"gdpr": {MaxFine: "€20M or 4% of global annual turnover", Likelihood: "high"},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(summaryReport())

	assert.Contains(t, out, "Contract Compliance Report")
	assert.Contains(t, out, "62/100 (attention)")
	assert.Contains(t, out, "medium")
	assert.Contains(t, out, "2 compliant / 2 partial / 3 missing")
	assert.Contains(t, out, "1 critical")
	assert.Contains(t, out, "1 medium")
	assert.Contains(t, out, "Immediate (0-7 days): 1 items")
	assert.Contains(t, out, "20 hours, 3000 total cost at 150/hr, 1 week, 1 person")
	assert.Contains(t, out, "€20M or 4% of global annual turnover (high likelihood)")

	// Frameworks render sorted by id.
	assert.Less(t, strings.Index(out, "gdpr"), strings.Index(out, "soc2"))
}

func TestRenderSummaryCleanReport(t *testing.T) {
	report := &models.ComplianceReport{
		OverallScore:  100,
		OverallStatus: models.BandExcellent,
		RiskLevel:     models.RiskMinimal,
		Frameworks: map[string]*models.FrameworkResult{
			"gdpr": {FrameworkID: "gdpr", Score: 100, Status: models.BandExcellent, Compliant: 7},
		},
	}

	out := RenderSummary(report)
	assert.Contains(t, out, "100/100 (excellent)")
	assert.NotContains(t, out, "Issues by severity")
	assert.NotContains(t, out, "Remediation plan")
	assert.NotContains(t, out, "Regulatory exposure")
}
