package remediation

import "github.com/clauseguard/clauseguard/internal/models"

// DefaultHourlyRate is the default blended legal/engineering rate used for
// cost projection, in currency units per hour.
const DefaultHourlyRate = 150

// Effort hours per issue by severity.
const (
	hoursCritical = 16
	hoursHigh     = 8
	hoursMedium   = 4
	hoursLow      = 2
)

// HoursForSeverity returns the fixed remediation effort for one issue.
func HoursForSeverity(severity models.Severity) int {
	switch severity {
	case models.SeverityCritical:
		return hoursCritical
	case models.SeverityHigh:
		return hoursHigh
	case models.SeverityMedium:
		return hoursMedium
	case models.SeverityLow:
		return hoursLow
	default:
		return 0
	}
}

// EstimateEffort converts an issue set into total hours, cost, timeline,
// and staffing. A non-positive hourlyRate falls back to DefaultHourlyRate.
func EstimateEffort(issues []models.Issue, hourlyRate int) models.EffortEstimate {
	if hourlyRate <= 0 {
		hourlyRate = DefaultHourlyRate
	}

	totalHours := 0
	for _, issue := range issues {
		totalHours += HoursForSeverity(issue.Severity)
	}

	estimate := models.EffortEstimate{
		TotalHours: totalHours,
		HourlyRate: hourlyRate,
		TotalCost:  totalHours * hourlyRate,
	}

	switch {
	case totalHours <= 40:
		estimate.Timeline = "1 week"
		estimate.Staffing = "1 person"
	case totalHours <= 160:
		estimate.Timeline = "1 month"
		estimate.Staffing = "2-3 people"
	default:
		estimate.Timeline = "2-3 months"
		estimate.Staffing = "2-3 people"
	}

	return estimate
}
