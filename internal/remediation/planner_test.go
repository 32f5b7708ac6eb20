package remediation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/models"
)

func issueWithSeverity(id string, severity models.Severity) models.Issue {
	return models.Issue{
		ID:          id,
		FrameworkID: "gdpr",
		Requirement: "Requirement " + id,
		Status:      models.StatusMissing,
		Severity:    severity,
		Remediation: "Fix " + id,
	}
}

func TestPlanPhasesOrder(t *testing.T) {
	issues := []models.Issue{
		issueWithSeverity("a", models.SeverityLow),
		issueWithSeverity("b", models.SeverityCritical),
		issueWithSeverity("c", models.SeverityMedium),
		issueWithSeverity("d", models.SeverityHigh),
		issueWithSeverity("e", models.SeverityCritical),
	}

	phases := PlanPhases(issues)
	require.Len(t, phases, 4)

	assert.Equal(t, "Immediate (0-7 days)", phases[0].Label)
	assert.Equal(t, models.SeverityCritical, phases[0].Priority)
	assert.Len(t, phases[0].Items, 2)

	assert.Equal(t, "Short-term (1-4 weeks)", phases[1].Label)
	assert.Equal(t, "Medium-term (1-3 months)", phases[2].Label)
	assert.Equal(t, "Long-term (3-6 months)", phases[3].Label)
}

func TestPlanPhasesSkipsEmptyTiers(t *testing.T) {
	issues := []models.Issue{
		issueWithSeverity("a", models.SeverityCritical),
		issueWithSeverity("b", models.SeverityLow),
	}

	phases := PlanPhases(issues)
	require.Len(t, phases, 2)
	assert.Equal(t, models.SeverityCritical, phases[0].Priority)
	assert.Equal(t, models.SeverityLow, phases[1].Priority)
}

func TestPlanPhasesEmptyIssues(t *testing.T) {
	assert.Empty(t, PlanPhases(nil))
}

func TestPlanPhasesItemFields(t *testing.T) {
	phases := PlanPhases([]models.Issue{issueWithSeverity("a", models.SeverityHigh)})
	require.Len(t, phases, 1)
	require.Len(t, phases[0].Items, 1)

	item := phases[0].Items[0]
	assert.Equal(t, "gdpr", item.FrameworkID)
	assert.Equal(t, "Requirement a", item.Requirement)
	assert.Equal(t, "Fix a", item.Action)
}
