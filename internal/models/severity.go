package models

// Severity is the criticality tier of a compliance issue. It is derived
// solely from the weight of the requirement that produced the issue.
type Severity string

// Severity levels, ordered from most to least critical.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// ValidSeverities returns all valid severity levels for validation.
func ValidSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// IsValidSeverity checks if a severity level is valid.
func IsValidSeverity(severity Severity) bool {
	switch severity {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// SeverityForWeight derives issue severity from a requirement weight.
// Severity depends on weight alone, never on how the requirement scored.
func SeverityForWeight(weight int) Severity {
	switch {
	case weight >= 9:
		return SeverityCritical
	case weight >= 7:
		return SeverityHigh
	case weight >= 5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// SeverityOrdinal returns a sortable rank for a severity, highest first.
func SeverityOrdinal(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}
