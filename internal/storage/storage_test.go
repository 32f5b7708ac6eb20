package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/pkg/logger"
)

func sampleReport(id string, generatedAt time.Time) *models.ComplianceReport {
	return &models.ComplianceReport{
		ID:                 id,
		GeneratedAt:        generatedAt,
		OverallScore:       72,
		OverallStatus:      models.BandAttention,
		RiskLevel:          models.RiskMedium,
		DetectedFrameworks: []string{"gdpr"},
		Frameworks: map[string]*models.FrameworkResult{
			"gdpr": {FrameworkID: "gdpr", Score: 72, Status: models.BandAttention},
		},
		Issues: []models.Issue{
			{
				ID:          "abc123",
				FrameworkID: "gdpr",
				Requirement: "Data Retention",
				Status:      models.StatusMissing,
				Severity:    models.SeverityMedium,
			},
		},
	}
}

func TestSaveAndLoadAnalysis(t *testing.T) {
	store := NewStorageWithLogger(t.TempDir(), logger.NewMockLogger())

	generatedAt := time.Date(2026, 5, 2, 14, 30, 5, 0, time.UTC)
	report := sampleReport("report-1", generatedAt)

	dir, err := store.SaveAnalysis("Acme Corp", "contract.txt", "contract body", report)
	require.NoError(t, err)
	assert.Equal(t, "acme-corp-2026-05-02-143005", filepath.Base(dir))

	for _, name := range []string{"metadata.json", "report.json", "contract.txt"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}

	loaded, err := store.LoadReport(dir)
	require.NoError(t, err)
	assert.Equal(t, report.ID, loaded.ID)
	assert.Equal(t, report.OverallScore, loaded.OverallScore)
	assert.Equal(t, report.DetectedFrameworks, loaded.DetectedFrameworks)
	require.Len(t, loaded.Issues, 1)
	assert.Equal(t, "Data Retention", loaded.Issues[0].Requirement)

	meta, err := store.LoadMetadata(dir)
	require.NoError(t, err)
	assert.Equal(t, "report-1", meta.ID)
	assert.Equal(t, "Acme Corp", meta.Client)
	assert.Equal(t, "contract.txt", meta.Source)
	assert.Equal(t, 72, meta.OverallScore)
	assert.Equal(t, models.RiskMedium, meta.RiskLevel)
	assert.Equal(t, 1, meta.IssueCount)

	text, err := os.ReadFile(filepath.Join(dir, "contract.txt"))
	require.NoError(t, err)
	assert.Equal(t, "contract body", string(text))
}

func TestFindLatestAnalysis(t *testing.T) {
	store := NewStorageWithLogger(t.TempDir(), logger.NewMockLogger())

	older := sampleReport("older", time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
	newer := sampleReport("newer", time.Date(2026, 4, 22, 16, 45, 30, 0, time.UTC))

	_, err := store.SaveAnalysis("acme", "a.txt", "a", older)
	require.NoError(t, err)
	newerDir, err := store.SaveAnalysis("acme", "b.txt", "b", newer)
	require.NoError(t, err)

	latest, err := store.FindLatestAnalysis()
	require.NoError(t, err)
	assert.Equal(t, newerDir, latest)
}

func TestFindLatestAnalysisEmpty(t *testing.T) {
	store := NewStorageWithLogger(t.TempDir(), logger.NewMockLogger())

	_, err := store.FindLatestAnalysis()
	assert.Error(t, err)
}

func TestListAnalyses(t *testing.T) {
	store := NewStorageWithLogger(t.TempDir(), logger.NewMockLogger())

	for i, id := range []string{"first", "second", "third"} {
		report := sampleReport(id, time.Date(2026, 2, 1+i, 12, 0, 0, 0, time.UTC))
		_, err := store.SaveAnalysis("client", "c.txt", "text", report)
		require.NoError(t, err)
	}

	metas, err := store.ListAnalyses()
	require.NoError(t, err)
	require.Len(t, metas, 3)

	// Newest first.
	assert.Equal(t, "third", metas[0].ID)
	assert.Equal(t, "second", metas[1].ID)
	assert.Equal(t, "first", metas[2].ID)
}

func TestListAnalysesMissingDir(t *testing.T) {
	store := NewStorageWithLogger(filepath.Join(t.TempDir(), "never-created"), logger.NewMockLogger())

	metas, err := store.ListAnalyses()
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestListAnalysesSkipsCorruptEntries(t *testing.T) {
	baseDir := t.TempDir()
	log := logger.NewMockLogger()
	store := NewStorageWithLogger(baseDir, log)

	report := sampleReport("good", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	_, err := store.SaveAnalysis("client", "c.txt", "text", report)
	require.NoError(t, err)

	// A directory without metadata.json is skipped with a warning.
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "analyses", "broken-dir"), 0o750))

	metas, err := store.ListAnalyses()
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "good", metas[0].ID)
	assert.True(t, log.HasMessage("WARN", "Skipping unreadable analysis"))
}

func TestSanitizeClient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Acme Corp", want: "acme-corp"},
		{in: "  spaced  ", want: "spaced"},
		{in: "a/b\\c", want: "a-b-c"},
		{in: "..", want: "-"},
		{in: "", want: "default"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeClient(tt.in), "input %q", tt.in)
	}
}
