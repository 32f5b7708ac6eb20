package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/pkg/pathutil"
)

// Manifest is the YAML remediation manifest handed to legal/engineering
// teams executing the plan.
type Manifest struct {
	GeneratedAt     time.Time                  `yaml:"generated_at"`
	ManifestVersion string                     `yaml:"manifest_version"`
	ReportID        string                     `yaml:"report_id"`
	Client          string                     `yaml:"client"`
	OverallScore    int                        `yaml:"overall_score"`
	RiskLevel       models.RiskLevel           `yaml:"risk_level"`
	Phases          []models.RemediationPhase  `yaml:"phases"`
	Effort          models.EffortEstimate      `yaml:"effort"`
	Exposure        map[string]models.Exposure `yaml:"exposure,omitempty"`
}

// manifestVersion identifies the manifest schema.
const manifestVersion = "1.0"

// generateRemediation writes the YAML remediation manifest.
func (g *Generator) generateRemediation(outputPath string) error {
	validPath, err := pathutil.ValidateOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	manifest := Manifest{
		GeneratedAt:     time.Now(),
		ManifestVersion: manifestVersion,
		ReportID:        g.report.ID,
		Client:          g.meta.Client,
		OverallScore:    g.report.OverallScore,
		RiskLevel:       g.report.RiskLevel,
		Phases:          g.report.Phases,
		Effort:          g.report.Effort,
		Exposure:        g.report.Exposure,
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(validPath, data, 0600); err != nil {
		return fmt.Errorf("writing remediation manifest: %w", err)
	}

	g.logger.Info("Generated remediation manifest", "path", validPath, "phases", len(manifest.Phases))
	return nil
}
