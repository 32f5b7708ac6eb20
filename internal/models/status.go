package models

// RequirementStatus classifies how well a single requirement is covered by
// the contract text.
type RequirementStatus string

// Requirement coverage states.
const (
	StatusCompliant RequirementStatus = "compliant"
	StatusPartial   RequirementStatus = "partial"
	StatusMissing   RequirementStatus = "missing"
)

// IsValidRequirementStatus checks if a requirement status is valid.
func IsValidRequirementStatus(status RequirementStatus) bool {
	switch status {
	case StatusCompliant, StatusPartial, StatusMissing:
		return true
	default:
		return false
	}
}

// StatusBand is the qualitative band for a 0-100 compliance score. The same
// band function applies to per-framework scores and the overall score.
type StatusBand string

// Score bands.
const (
	BandExcellent StatusBand = "excellent"
	BandGood      StatusBand = "good"
	BandAttention StatusBand = "attention"
	BandCritical  StatusBand = "critical"
	BandFailed    StatusBand = "failed"
)

// BandForScore maps a 0-100 score to its status band.
func BandForScore(score int) StatusBand {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 75:
		return BandGood
	case score >= 60:
		return BandAttention
	case score >= 40:
		return BandCritical
	default:
		return BandFailed
	}
}

// RiskLevel is the overall qualitative risk rating for a report.
type RiskLevel string

// Risk levels, ordered from least to most exposed.
const (
	RiskMinimal RiskLevel = "minimal"
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskSevere  RiskLevel = "severe"
)

// RiskFor derives the overall risk level from the overall score and the
// number of critical issues.
func RiskFor(overallScore, criticalCount int) RiskLevel {
	switch {
	case criticalCount > 3 || overallScore < 40:
		return RiskSevere
	case criticalCount > 1 || overallScore < 60:
		return RiskHigh
	case criticalCount > 0 || overallScore < 75:
		return RiskMedium
	case overallScore < 90:
		return RiskLow
	default:
		return RiskMinimal
	}
}
