package analyzer

import "github.com/clauseguard/clauseguard/internal/models"

// matchThreshold is the number of keyword hits needed for full compliance:
// ceil(0.6 × keywordCount), computed in integer arithmetic.
func matchThreshold(keywordCount int) int {
	return (3*keywordCount + 4) / 5
}

// evaluateRequirement classifies one requirement against folded contract
// text. Full keyword coverage at or above the threshold earns the full
// weight; any partial coverage earns half; zero matches earns nothing.
func evaluateRequirement(req models.Requirement, folded string) models.RequirementResult {
	matches := 0
	for _, keyword := range req.Keywords {
		if containsFolded(folded, keyword) {
			matches++
		}
	}

	result := models.RequirementResult{
		RequirementID: req.ID,
		Name:          req.Name,
		Weight:        req.Weight,
	}

	threshold := matchThreshold(len(req.Keywords))
	switch {
	case matches >= threshold:
		result.Status = models.StatusCompliant
		result.Score = float64(req.Weight)
	case matches > 0:
		result.Status = models.StatusPartial
		result.Score = float64(req.Weight) * 0.5
	default:
		result.Status = models.StatusMissing
		result.Score = 0
	}

	return result
}
