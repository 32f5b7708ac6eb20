package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/internal/storage"
	"github.com/clauseguard/clauseguard/pkg/pathutil"
)

//go:embed templates/*
var templateFS embed.FS

// htmlData is the template context for the HTML report.
type htmlData struct {
	Meta           *storage.Metadata
	Report         *models.ComplianceReport
	Frameworks     []*models.FrameworkResult
	SeverityCounts map[models.Severity]int
}

// generateHTML renders the report with the embedded template.
func (g *Generator) generateHTML(outputPath string) error {
	validPath, err := pathutil.ValidateOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	titleCaser := cases.Title(language.English)
	tmpl, err := template.New("report.html.tmpl").Funcs(template.FuncMap{
		"title": titleCaser.String,
		"severityClass": func(s models.Severity) string {
			return "severity-" + string(s)
		},
		"bandClass": func(b models.StatusBand) string {
			return "band-" + string(b)
		},
	}).ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	// Sort framework results by id for stable rendering.
	frameworks := make([]*models.FrameworkResult, 0, len(g.report.Frameworks))
	for _, fr := range g.report.Frameworks {
		frameworks = append(frameworks, fr)
	}
	sort.Slice(frameworks, func(i, j int) bool {
		return frameworks[i].FrameworkID < frameworks[j].FrameworkID
	})

	f, err := os.Create(validPath) //nolint:gosec // Path is validated above
	if err != nil {
		return fmt.Errorf("creating HTML report: %w", err)
	}
	defer func() { _ = f.Close() }()

	data := htmlData{
		Meta:           g.meta,
		Report:         g.report,
		Frameworks:     frameworks,
		SeverityCounts: g.report.CountBySeverity(),
	}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}

	g.logger.Info("Generated HTML report", "path", validPath)
	return nil
}
