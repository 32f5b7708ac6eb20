// Package report implements the report command for exporting stored
// compliance analyses.
package report

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clauseguard/clauseguard/internal/config"
	"github.com/clauseguard/clauseguard/internal/report"
	"github.com/clauseguard/clauseguard/internal/storage"
	"github.com/clauseguard/clauseguard/pkg/logger"
)

// Options represents report command options.
type Options struct {
	AnalysisPath string
	OutputDir    string
	ConfigFile   string
	Formats      []string
}

// Run executes the report command.
func Run(args []string) error {
	opts := &Options{}

	fs := flag.NewFlagSet("report", flag.ExitOnError)
	fs.StringVar(&opts.AnalysisPath, "analysis", "latest", "Analysis directory (or 'latest')")
	fs.StringVar(&opts.OutputDir, "output", ".", "Output directory for report files")
	fs.StringVar(&opts.ConfigFile, "config", "", "Path to YAML config file")

	var formatFlag string
	fs.StringVar(&formatFlag, "format", report.FormatHTML, "Report format(s): html,json,remediation")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: clauseguard report [options]

Generate report files from a stored analysis.

Options:`)
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr, `
Examples:
  clauseguard report --analysis latest
  clauseguard report --analysis data/analyses/acme-2026-08-01-120000 --format html,remediation`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts.Formats = strings.Split(formatFlag, ",")
	for i, f := range opts.Formats {
		opts.Formats[i] = strings.TrimSpace(f)
	}

	log := logger.GetGlobalLogger()

	cfg := config.DefaultConfig()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.LoadConfig(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	store := storage.NewStorageWithLogger(cfg.Storage.BaseDir, log)

	analysisDir := opts.AnalysisPath
	if analysisDir == "latest" {
		latest, err := store.FindLatestAnalysis()
		if err != nil {
			return fmt.Errorf("finding latest analysis: %w", err)
		}
		analysisDir = latest
	}

	complianceReport, err := store.LoadReport(analysisDir)
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}
	meta, err := store.LoadMetadata(analysisDir)
	if err != nil {
		return fmt.Errorf("loading metadata: %w", err)
	}

	gen := report.NewGenerator(complianceReport, meta, log)
	for _, format := range opts.Formats {
		outputPath := filepath.Join(opts.OutputDir, report.DefaultFilename(format))
		if err := gen.Generate(format, outputPath); err != nil {
			return fmt.Errorf("generating %s report: %w", format, err)
		}
	}

	return nil
}
