package analyzer

import (
	"math"

	"github.com/clauseguard/clauseguard/internal/models"
)

// scoreFramework evaluates every requirement of a framework and aggregates
// the results into a 0-100 score with a status band and per-status counts.
func scoreFramework(fw models.Framework, folded string) *models.FrameworkResult {
	result := &models.FrameworkResult{
		FrameworkID:  fw.ID,
		Requirements: make([]models.RequirementResult, 0, len(fw.Requirements)),
	}

	var achieved, total float64
	for _, req := range fw.Requirements {
		rr := evaluateRequirement(req, folded)
		result.Requirements = append(result.Requirements, rr)
		achieved += rr.Score
		total += float64(rr.Weight)

		switch rr.Status {
		case models.StatusCompliant:
			result.Compliant++
		case models.StatusPartial:
			result.Partial++
		case models.StatusMissing:
			result.Missing++
		}
	}

	if total > 0 {
		result.Score = int(math.Round(100 * achieved / total))
	}
	result.Status = models.BandForScore(result.Score)

	return result
}

// overallScore is the rounded unweighted mean of framework scores.
func overallScore(results map[string]*models.FrameworkResult, detected []string) int {
	if len(detected) == 0 {
		return 0
	}
	sum := 0
	for _, id := range detected {
		sum += results[id].Score
	}
	return int(math.Round(float64(sum) / float64(len(detected))))
}
