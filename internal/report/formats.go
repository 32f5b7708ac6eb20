// Package report renders stored compliance reports into their export
// formats: HTML, JSON, and the YAML remediation manifest.
package report

import (
	"fmt"
	"strings"

	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/internal/storage"
	"github.com/clauseguard/clauseguard/pkg/logger"
)

// Supported export formats.
const (
	FormatHTML        = "html"
	FormatJSON        = "json"
	FormatRemediation = "remediation"
)

// ValidFormats returns the supported format names.
func ValidFormats() []string {
	return []string{FormatHTML, FormatJSON, FormatRemediation}
}

// Generator routes a report to the requested export formats.
type Generator struct {
	logger logger.Logger
	report *models.ComplianceReport
	meta   *storage.Metadata
}

// NewGenerator creates a format-routing generator for one stored report.
func NewGenerator(report *models.ComplianceReport, meta *storage.Metadata, log logger.Logger) *Generator {
	return &Generator{
		logger: log,
		report: report,
		meta:   meta,
	}
}

// Generate writes the report in the given format to outputPath.
func (g *Generator) Generate(format, outputPath string) error {
	switch strings.ToLower(format) {
	case FormatHTML:
		return g.generateHTML(outputPath)
	case FormatJSON:
		return g.generateJSON(outputPath)
	case FormatRemediation:
		return g.generateRemediation(outputPath)
	default:
		return fmt.Errorf("unknown report format %q, supported: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// DefaultFilename returns the conventional output filename for a format.
func DefaultFilename(format string) string {
	switch strings.ToLower(format) {
	case FormatHTML:
		return "compliance-report.html"
	case FormatJSON:
		return "compliance-report.json"
	case FormatRemediation:
		return "remediation-manifest.yaml"
	default:
		return "compliance-report." + format
	}
}
