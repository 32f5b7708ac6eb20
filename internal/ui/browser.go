package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clauseguard/clauseguard/internal/models"
)

// IssueBrowser is an interactive terminal browser over a report's issues.
type IssueBrowser struct {
	issues     []models.Issue
	cursor     int
	width      int
	height     int
	showDetail bool
}

// NewIssueBrowser creates a browser over the report's issue list.
func NewIssueBrowser(report *models.ComplianceReport) *IssueBrowser {
	return &IssueBrowser{issues: report.Issues}
}

// Run starts the interactive browser and blocks until the user quits.
func (b *IssueBrowser) Run() error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (b *IssueBrowser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *IssueBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if b.showDetail {
				b.showDetail = false
				return b, nil
			}
			return b, tea.Quit
		case "j", "down":
			if b.cursor < len(b.issues)-1 {
				b.cursor++
			}
		case "k", "up":
			if b.cursor > 0 {
				b.cursor--
			}
		case "g":
			b.cursor = 0
		case "G":
			if len(b.issues) > 0 {
				b.cursor = len(b.issues) - 1
			}
		case "enter":
			if len(b.issues) > 0 {
				b.showDetail = !b.showDetail
			}
		}
	}
	return b, nil
}

// View implements tea.Model.
func (b *IssueBrowser) View() string {
	if len(b.issues) == 0 {
		return titleStyle.Render("Compliance Issues") + "\n\nNo issues found.\n\nPress q to quit.\n"
	}

	if b.showDetail {
		return b.detailView()
	}
	return b.listView()
}

func (b *IssueBrowser) listView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Compliance Issues (%d)", len(b.issues))))
	sb.WriteString("\n\n")

	visible := b.visibleRows()
	start, end := viewportBounds(b.cursor, len(b.issues), visible)
	for i := start; i < end; i++ {
		issue := b.issues[i]
		line := fmt.Sprintf("%-9s %-9s %s",
			issue.Severity,
			issue.FrameworkID,
			issue.Requirement,
		)
		if i == b.cursor {
			sb.WriteString(lipgloss.NewStyle().Reverse(true).Render("> " + line))
		} else {
			sb.WriteString("  " + severityStyles[issue.Severity].Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + labelStyle.Render("j/k move · enter details · q quit") + "\n")
	return sb.String()
}

func (b *IssueBrowser) detailView() string {
	issue := b.issues[b.cursor]

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(issue.Requirement) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Framework:"), issue.FrameworkID))
	sb.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Severity:"), severityStyles[issue.Severity].Render(string(issue.Severity))))
	sb.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render("Status:"), string(issue.Status)))
	sb.WriteString(labelStyle.Render("Description") + "\n" + issue.Description + "\n\n")
	sb.WriteString(labelStyle.Render("Impact") + "\n" + issue.Impact + "\n\n")
	sb.WriteString(labelStyle.Render("Remediation") + "\n" + issue.Remediation + "\n\n")
	sb.WriteString(labelStyle.Render("enter/esc back · q quit") + "\n")
	return sb.String()
}

// visibleRows returns how many issue rows fit in the current viewport.
func (b *IssueBrowser) visibleRows() int {
	// Header and footer consume 5 lines.
	rows := b.height - 5
	if rows < 1 {
		return 10
	}
	return rows
}

// viewportBounds keeps the cursor within the visible window.
func viewportBounds(cursor, total, visible int) (start, end int) {
	if total <= visible {
		return 0, total
	}
	start = cursor - visible/2
	if start < 0 {
		start = 0
	}
	end = start + visible
	if end > total {
		end = total
		start = end - visible
	}
	return start, end
}
