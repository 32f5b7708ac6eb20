// Package recommend derives quick-win and strategic recommendations from a
// compliance issue set.
package recommend

import (
	"fmt"
	"sort"

	"github.com/clauseguard/clauseguard/internal/models"
)

// maxQuickWins caps the quick-win list.
const maxQuickWins = 3

// Generate produces the two fixed recommendation groups. Quick wins are up
// to three medium or low severity issues, lowest effort first; strategic
// improvements are a fixed, analysis-independent program.
func Generate(issues []models.Issue) models.RecommendationGroups {
	var candidates []models.Issue
	for _, issue := range issues {
		if issue.Severity == models.SeverityMedium || issue.Severity == models.SeverityLow {
			candidates = append(candidates, issue)
		}
	}

	// Low severity first: cheapest fixes make the best quick wins.
	sort.SliceStable(candidates, func(i, j int) bool {
		return models.SeverityOrdinal(candidates[i].Severity) > models.SeverityOrdinal(candidates[j].Severity)
	})

	if len(candidates) > maxQuickWins {
		candidates = candidates[:maxQuickWins]
	}

	quickWins := make([]models.Recommendation, 0, len(candidates))
	for _, issue := range candidates {
		quickWins = append(quickWins, models.Recommendation{
			Title:  fmt.Sprintf("Address %s (%s)", issue.Requirement, issue.FrameworkID),
			Impact: "Improves the framework score by an estimated 5-10%",
			Effort: quickWinEffort(issue.Severity),
		})
	}

	return models.RecommendationGroups{
		QuickWins: quickWins,
		Strategic: strategicInitiatives(),
	}
}

func quickWinEffort(severity models.Severity) string {
	if severity == models.SeverityLow {
		return "1-2 hours"
	}
	return "2-4 hours"
}

// strategicInitiatives is the fixed strategic program recommended on every
// analysis regardless of findings.
func strategicInitiatives() []models.Recommendation {
	return []models.Recommendation{
		{
			Title:  "Establish continuous compliance monitoring",
			Impact: "Catches regressions before contracts are executed",
			Effort: "2-4 weeks",
		},
		{
			Title:  "Standardize a clause library for recurring obligations",
			Impact: "Eliminates repeated gaps across the contract portfolio",
			Effort: "4-6 weeks",
		},
		{
			Title:  "Adopt a recurring compliance audit cadence",
			Impact: "Keeps scored posture current as regulations evolve",
			Effort: "Quarterly, 1 week per cycle",
		},
	}
}
