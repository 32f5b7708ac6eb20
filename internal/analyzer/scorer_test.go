package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/catalog"
	"github.com/clauseguard/clauseguard/internal/models"
)

func TestScoreFrameworkSinglePartial(t *testing.T) {
	registry := catalog.Default()
	fw, ok := registry.Lookup(catalog.FrameworkGDPR)
	require.True(t, ok)

	// "consent" is one of five lawful-basis keywords; the threshold is 3,
	// so the requirement lands partial at half its weight of 9.
	result := scoreFramework(fw, foldText("the customer gives consent"))

	var lawfulBasis *models.RequirementResult
	for i := range result.Requirements {
		if result.Requirements[i].RequirementID == "gdpr-lawful-basis" {
			lawfulBasis = &result.Requirements[i]
		}
	}
	require.NotNil(t, lawfulBasis)

	assert.Equal(t, models.StatusPartial, lawfulBasis.Status)
	assert.InDelta(t, 4.5, lawfulBasis.Score, 1e-9)
	assert.Equal(t, models.SeverityCritical, models.SeverityForWeight(lawfulBasis.Weight))

	assert.Equal(t, 1, result.Partial)
	assert.Equal(t, len(fw.Requirements)-1, result.Missing)
	assert.Zero(t, result.Compliant)

	// 4.5 achieved out of 51 total weight rounds to 9.
	assert.Equal(t, 9, result.Score)
	assert.Equal(t, result.RecomputeScore(), result.Score)
	assert.Equal(t, models.BandFailed, result.Status)
}

func TestScoreFrameworkAllMissing(t *testing.T) {
	registry := catalog.Default()
	fw, ok := registry.Lookup(catalog.FrameworkSOC2)
	require.True(t, ok)

	result := scoreFramework(fw, foldText("unrelated commercial terms"))

	assert.Zero(t, result.Score)
	assert.Equal(t, models.BandFailed, result.Status)
	assert.Equal(t, len(fw.Requirements), result.Missing)
	assert.Zero(t, result.Compliant)
	assert.Zero(t, result.Partial)
}

func TestOverallScore(t *testing.T) {
	results := map[string]*models.FrameworkResult{
		"a": {Score: 80},
		"b": {Score: 51},
	}

	// round((80 + 51) / 2) = round(65.5) = 66
	assert.Equal(t, 66, overallScore(results, []string{"a", "b"}))
	assert.Equal(t, 80, overallScore(results, []string{"a"}))
	assert.Zero(t, overallScore(nil, nil))
}
