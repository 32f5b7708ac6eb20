// Package list implements the list command showing stored analyses.
package list

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/clauseguard/clauseguard/internal/config"
	"github.com/clauseguard/clauseguard/internal/database"
	"github.com/clauseguard/clauseguard/internal/models"
)

// Options represents list command options.
type Options struct {
	ConfigFile string
	Client     string
	Limit      int
	ReportID   string
	Severity   string
}

// Run executes the list command.
func Run(args []string) error {
	opts := &Options{}

	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.StringVar(&opts.ConfigFile, "config", "", "Path to YAML config file")
	fs.StringVar(&opts.Client, "client", "", "Filter by client name")
	fs.IntVar(&opts.Limit, "limit", 20, "Maximum analyses to show")
	fs.StringVar(&opts.ReportID, "report", "", "Show a stored analysis and its issues by report id")
	fs.StringVar(&opts.Severity, "severity", "", "With -report, only show issues of this severity")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: clauseguard list [options]

List stored compliance analyses, newest first, or show one analysis
in detail with -report.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.LoadConfig(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	db, err := database.New(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if opts.ReportID != "" {
		return showReport(context.Background(), os.Stdout, db, opts.ReportID, opts.Severity)
	}

	analyses, err := db.ListAnalyses(context.Background(), opts.Client, opts.Limit)
	if err != nil {
		return fmt.Errorf("listing analyses: %w", err)
	}

	return printAnalyses(os.Stdout, analyses)
}

func printAnalyses(out io.Writer, analyses []*database.Analysis) error {
	if len(analyses) == 0 {
		fmt.Fprintln(out, "No analyses found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCLIENT\tSCORE\tSTATUS\tRISK\tISSUES\tFRAMEWORKS")
	for _, a := range analyses {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\t%s\n",
			a.CreatedAt.Format("2006-01-02 15:04"),
			a.Client,
			a.OverallScore,
			a.OverallStatus,
			a.RiskLevel,
			a.IssueCount,
			strings.Join(a.DetectedFrameworks, ","),
		)
	}
	return w.Flush()
}

// showReport prints one stored analysis and its issues, most severe first.
func showReport(ctx context.Context, out io.Writer, db *database.DB, reportID, severity string) error {
	filter := database.IssueFilter{Severity: models.Severity(severity)}
	if severity != "" && !models.IsValidSeverity(filter.Severity) {
		return fmt.Errorf("unknown severity %q", severity)
	}

	analysis, err := db.GetAnalysisByReportID(ctx, reportID)
	if err != nil {
		return fmt.Errorf("looking up analysis: %w", err)
	}

	fmt.Fprintf(out, "Report %s\n", analysis.ReportID)
	fmt.Fprintf(out, "Client: %s\n", analysis.Client)
	fmt.Fprintf(out, "Date: %s\n", analysis.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(out, "Score: %d/100 (%s)\n", analysis.OverallScore, analysis.OverallStatus)
	fmt.Fprintf(out, "Risk: %s\n", analysis.RiskLevel)
	fmt.Fprintf(out, "Frameworks: %s\n", strings.Join(analysis.DetectedFrameworks, ","))

	issues, err := db.GetIssues(ctx, analysis.ID, filter)
	if err != nil {
		return fmt.Errorf("loading issues: %w", err)
	}

	if len(issues) == 0 {
		fmt.Fprintln(out, "\nNo stored issues.")
		return nil
	}

	fmt.Fprintf(out, "\nIssues (%d):\n", len(issues))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEVERITY\tFRAMEWORK\tREQUIREMENT\tSTATUS")
	for _, issue := range issues {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			issue.Severity,
			issue.FrameworkID,
			issue.Requirement,
			issue.Status,
		)
	}
	return w.Flush()
}
