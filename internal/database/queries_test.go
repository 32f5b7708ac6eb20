package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testReport(id string, generatedAt time.Time, issues []models.Issue) *models.ComplianceReport {
	return &models.ComplianceReport{
		ID:                 id,
		GeneratedAt:        generatedAt,
		OverallScore:       64,
		OverallStatus:      models.BandAttention,
		RiskLevel:          models.RiskMedium,
		DetectedFrameworks: []string{"gdpr", "soc2"},
		Issues:             issues,
	}
}

func testIssue(issueID string, severity models.Severity) models.Issue {
	return models.Issue{
		ID:          issueID,
		FrameworkID: "gdpr",
		Requirement: "Requirement " + issueID,
		Status:      models.StatusMissing,
		Severity:    severity,
		Description: "gap " + issueID,
		Remediation: "fix " + issueID,
	}
}

func TestSaveReportAndLookup(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	report := testReport("report-1", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), []models.Issue{
		testIssue("a", models.SeverityCritical),
		testIssue("b", models.SeverityLow),
	})

	analysisID, err := db.SaveReport(ctx, "acme", "contract.txt", report)
	require.NoError(t, err)
	assert.Positive(t, analysisID)

	analysis, err := db.GetAnalysisByReportID(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, analysisID, analysis.ID)
	assert.Equal(t, "acme", analysis.Client)
	assert.Equal(t, "contract.txt", analysis.Source)
	assert.Equal(t, 64, analysis.OverallScore)
	assert.Equal(t, models.BandAttention, analysis.OverallStatus)
	assert.Equal(t, models.RiskMedium, analysis.RiskLevel)
	assert.Equal(t, []string{"gdpr", "soc2"}, analysis.DetectedFrameworks)
	assert.Equal(t, 2, analysis.IssueCount)
}

func TestGetAnalysisByReportIDNotFound(t *testing.T) {
	db := testDB(t)

	analysis, err := db.GetAnalysisByReportID(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, analysis)
	assert.Contains(t, err.Error(), "not found")
}

func TestListAnalyses(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, row := range []struct {
		id     string
		client string
	}{
		{id: "r1", client: "acme"},
		{id: "r2", client: "globex"},
		{id: "r3", client: "acme"},
	} {
		report := testReport(row.id, base.Add(time.Duration(i)*time.Hour), nil)
		_, err := db.SaveReport(ctx, row.client, "c.txt", report)
		require.NoError(t, err)
	}

	t.Run("all clients newest first", func(t *testing.T) {
		analyses, err := db.ListAnalyses(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, analyses, 3)
		assert.Equal(t, "r3", analyses[0].ReportID)
		assert.Equal(t, "r2", analyses[1].ReportID)
		assert.Equal(t, "r1", analyses[2].ReportID)
	})

	t.Run("client filter", func(t *testing.T) {
		analyses, err := db.ListAnalyses(ctx, "acme", 0)
		require.NoError(t, err)
		require.Len(t, analyses, 2)
		for _, a := range analyses {
			assert.Equal(t, "acme", a.Client)
		}
	})

	t.Run("limit", func(t *testing.T) {
		analyses, err := db.ListAnalyses(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, analyses, 1)
		assert.Equal(t, "r3", analyses[0].ReportID)
	})
}

func TestGetIssues(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	report := testReport("report-1", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), []models.Issue{
		testIssue("m", models.SeverityMedium),
		testIssue("c", models.SeverityCritical),
		testIssue("h", models.SeverityHigh),
		testIssue("l", models.SeverityLow),
	})

	analysisID, err := db.SaveReport(ctx, "acme", "c.txt", report)
	require.NoError(t, err)

	t.Run("most severe first", func(t *testing.T) {
		issues, err := db.GetIssues(ctx, analysisID, IssueFilter{})
		require.NoError(t, err)
		require.Len(t, issues, 4)
		assert.Equal(t, models.SeverityCritical, issues[0].Severity)
		assert.Equal(t, models.SeverityHigh, issues[1].Severity)
		assert.Equal(t, models.SeverityMedium, issues[2].Severity)
		assert.Equal(t, models.SeverityLow, issues[3].Severity)
	})

	t.Run("severity filter", func(t *testing.T) {
		issues, err := db.GetIssues(ctx, analysisID, IssueFilter{Severity: models.SeverityCritical})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, "c", issues[0].IssueID)
		assert.Equal(t, "fix c", issues[0].Remediation)
	})

	t.Run("limit and offset", func(t *testing.T) {
		issues, err := db.GetIssues(ctx, analysisID, IssueFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, issues, 2)
		assert.Equal(t, models.SeverityHigh, issues[0].Severity)
		assert.Equal(t, models.SeverityMedium, issues[1].Severity)
	})
}

func TestSaveReportRollsBackOnBadIssue(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Duplicate issue ids violate the unique index and roll back the
	// analysis insert with them.
	report := testReport("report-1", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), []models.Issue{
		testIssue("dup", models.SeverityHigh),
		testIssue("dup", models.SeverityHigh),
	})

	_, err := db.SaveReport(ctx, "acme", "c.txt", report)
	require.Error(t, err)

	analyses, err := db.ListAnalyses(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestNewMemoryDB(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var version int
	err = db.QueryRowContext(context.Background(), "SELECT MAX(version) FROM migrations").Scan(&version)
	require.NoError(t, err)
	assert.Positive(t, version)
}
