// Package exposure projects per-framework regulatory fine exposure from
// framework scores and the statutory fine schedules.
package exposure

import (
	"github.com/clauseguard/clauseguard/internal/catalog"
	"github.com/clauseguard/clauseguard/internal/models"
)

// Project computes the {maxFine, likelihood} pair for every detected
// framework that carries a fine schedule. Frameworks without a schedule are
// absent from the result; that is a property of the framework, not an error.
func Project(results map[string]*models.FrameworkResult, schedules map[string]*catalog.FineSchedule) map[string]models.Exposure {
	projections := make(map[string]models.Exposure)
	for id, result := range results {
		schedule, ok := schedules[id]
		if !ok {
			continue
		}
		projections[id] = schedule.ExposureFor(result.Score)
	}
	return projections
}
