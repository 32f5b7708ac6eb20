// Package storage handles persistence of analysis results on disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/pkg/logger"
	"github.com/clauseguard/clauseguard/pkg/pathutil"
)

// Metadata describes one stored analysis.
type Metadata struct {
	ID           string           `json:"id"`
	Client       string           `json:"client"`
	Source       string           `json:"source"`
	CreatedAt    time.Time        `json:"created_at"`
	OverallScore int              `json:"overall_score"`
	RiskLevel    models.RiskLevel `json:"risk_level"`
	IssueCount   int              `json:"issue_count"`
}

// Storage handles saving and loading analysis results.
type Storage struct {
	logger  logger.Logger
	baseDir string
}

// NewStorage creates a new storage instance.
func NewStorage(baseDir string) *Storage {
	return NewStorageWithLogger(baseDir, logger.GetGlobalLogger())
}

// NewStorageWithLogger creates a new storage instance with a custom logger.
func NewStorageWithLogger(baseDir string, log logger.Logger) *Storage {
	return &Storage{
		baseDir: baseDir,
		logger:  log,
	}
}

// analysesDir is the directory under baseDir holding analysis output dirs.
func (s *Storage) analysesDir() string {
	return filepath.Join(s.baseDir, "analyses")
}

// SaveAnalysis writes a report, its metadata, and the analyzed contract
// text to a timestamped directory. Returns the directory path.
func (s *Storage) SaveAnalysis(client, source, contractText string, report *models.ComplianceReport) (string, error) {
	dirName := fmt.Sprintf("%s-%s", sanitizeClient(client), report.GeneratedAt.Format("2006-01-02-150405"))
	outputDir, err := pathutil.JoinAndValidate(s.analysesDir(), dirName)
	if err != nil {
		return "", fmt.Errorf("invalid analysis directory: %w", err)
	}

	if mkErr := os.MkdirAll(outputDir, 0750); mkErr != nil {
		return "", fmt.Errorf("creating analysis directory: %w", mkErr)
	}

	meta := Metadata{
		ID:           report.ID,
		Client:       client,
		Source:       source,
		CreatedAt:    report.GeneratedAt,
		OverallScore: report.OverallScore,
		RiskLevel:    report.RiskLevel,
		IssueCount:   len(report.Issues),
	}

	if err := s.saveJSON(filepath.Join(outputDir, "metadata.json"), meta); err != nil {
		return "", fmt.Errorf("saving metadata: %w", err)
	}
	if err := s.saveJSON(filepath.Join(outputDir, "report.json"), report); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "contract.txt"), []byte(contractText), 0600); err != nil {
		return "", fmt.Errorf("saving contract text: %w", err)
	}

	s.logger.Debug("Saved analysis", "dir", outputDir, "score", report.OverallScore)
	return outputDir, nil
}

// LoadReport reads a stored compliance report from an analysis directory.
func (s *Storage) LoadReport(analysisDir string) (*models.ComplianceReport, error) {
	validDir, err := pathutil.ValidateDataPath(analysisDir, "")
	if err != nil {
		return nil, fmt.Errorf("invalid analysis directory: %w", err)
	}

	var report models.ComplianceReport
	if err := s.loadJSON(filepath.Join(validDir, "report.json"), &report); err != nil {
		return nil, fmt.Errorf("loading report: %w", err)
	}
	return &report, nil
}

// LoadMetadata reads a stored analysis' metadata.
func (s *Storage) LoadMetadata(analysisDir string) (*Metadata, error) {
	var meta Metadata
	if err := s.loadJSON(filepath.Join(analysisDir, "metadata.json"), &meta); err != nil {
		return nil, fmt.Errorf("loading metadata: %w", err)
	}
	return &meta, nil
}

// FindLatestAnalysis returns the most recent analysis directory.
func (s *Storage) FindLatestAnalysis() (string, error) {
	entries, err := os.ReadDir(s.analysesDir())
	if err != nil {
		return "", fmt.Errorf("reading analyses directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf("no analyses found in %s", s.analysesDir())
	}

	// Directory names end with a sortable timestamp.
	sort.Strings(dirs)
	return filepath.Join(s.analysesDir(), dirs[len(dirs)-1]), nil
}

// ListAnalyses returns metadata for all stored analyses, newest first.
func (s *Storage) ListAnalyses() ([]*Metadata, error) {
	entries, err := os.ReadDir(s.analysesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading analyses directory: %w", err)
	}

	var metas []*Metadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(filepath.Join(s.analysesDir(), entry.Name()))
		if err != nil {
			s.logger.Warn("Skipping unreadable analysis", "dir", entry.Name(), "error", err)
			continue
		}
		metas = append(metas, meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

func (s *Storage) saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (s *Storage) loadJSON(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from validated analysis dirs
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// sanitizeClient makes a client name safe for use in a directory name.
func sanitizeClient(client string) string {
	client = strings.ToLower(strings.TrimSpace(client))
	if client == "" {
		return "default"
	}
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", "..", "-")
	return replacer.Replace(client)
}
