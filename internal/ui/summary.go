// Package ui renders compliance reports in the terminal: a styled summary
// and an interactive issue browser.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clauseguard/clauseguard/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStyle = lipgloss.NewStyle().Bold(true)

	severityStyles = map[models.Severity]lipgloss.Style{
		models.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		models.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		models.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		models.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	bandColors = map[models.StatusBand]lipgloss.Color{
		models.BandExcellent: lipgloss.Color("40"),
		models.BandGood:      lipgloss.Color("76"),
		models.BandAttention: lipgloss.Color("220"),
		models.BandCritical:  lipgloss.Color("208"),
		models.BandFailed:    lipgloss.Color("196"),
	}
)

// RenderSummary formats a compliance report for terminal output.
func RenderSummary(report *models.ComplianceReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contract Compliance Report"))
	b.WriteString("\n\n")

	scoreColor := bandColors[report.OverallStatus]
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		labelStyle.Render("Score:"),
		scoreStyle.Foreground(scoreColor).Render(fmt.Sprintf("%d/100 (%s)", report.OverallScore, report.OverallStatus)),
		labelStyle.Render("Risk:"),
		string(report.RiskLevel),
		labelStyle.Render("Issues:"),
		fmt.Sprintf("%d", len(report.Issues)),
	))

	b.WriteString("\n" + labelStyle.Render("Frameworks") + "\n")
	ids := make([]string, 0, len(report.Frameworks))
	for id := range report.Frameworks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fr := report.Frameworks[id]
		color := bandColors[fr.Status]
		b.WriteString(fmt.Sprintf("  %-10s %s  %d compliant / %d partial / %d missing\n",
			id,
			scoreStyle.Foreground(color).Render(fmt.Sprintf("%3d (%s)", fr.Score, fr.Status)),
			fr.Compliant, fr.Partial, fr.Missing,
		))
	}

	if counts := report.CountBySeverity(); len(counts) > 0 {
		b.WriteString("\n" + labelStyle.Render("Issues by severity") + "\n  ")
		parts := make([]string, 0, 4)
		for _, sev := range models.ValidSeverities() {
			if n := counts[sev]; n > 0 {
				parts = append(parts, severityStyles[sev].Render(fmt.Sprintf("%d %s", n, sev)))
			}
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}

	if len(report.Phases) > 0 {
		b.WriteString("\n" + labelStyle.Render("Remediation plan") + "\n")
		for _, phase := range report.Phases {
			b.WriteString(fmt.Sprintf("  %s: %d items\n", phase.Label, len(phase.Items)))
		}
		b.WriteString(fmt.Sprintf("\n%s %d hours, %d total cost at %d/hr, %s, %s\n",
			labelStyle.Render("Effort:"),
			report.Effort.TotalHours,
			report.Effort.TotalCost,
			report.Effort.HourlyRate,
			report.Effort.Timeline,
			report.Effort.Staffing,
		))
	}

	if len(report.Exposure) > 0 {
		b.WriteString("\n" + labelStyle.Render("Regulatory exposure") + "\n")
		expIDs := make([]string, 0, len(report.Exposure))
		for id := range report.Exposure {
			expIDs = append(expIDs, id)
		}
		sort.Strings(expIDs)
		for _, id := range expIDs {
			exp := report.Exposure[id]
			b.WriteString(fmt.Sprintf("  %-10s %s (%s likelihood)\n", id, exp.MaxFine, exp.Likelihood))
		}
	}

	return b.String()
}
