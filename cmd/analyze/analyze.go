// Package analyze implements the analyze command: it ingests contract
// text, runs the compliance pipeline, persists the result, and prints a
// summary.
package analyze

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/clauseguard/clauseguard/internal/analyzer"
	"github.com/clauseguard/clauseguard/internal/catalog"
	"github.com/clauseguard/clauseguard/internal/config"
	"github.com/clauseguard/clauseguard/internal/database"
	"github.com/clauseguard/clauseguard/internal/ingest"
	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/internal/storage"
	"github.com/clauseguard/clauseguard/internal/ui"
	"github.com/clauseguard/clauseguard/pkg/logger"
)

// Options represents analyze command options.
type Options struct {
	ConfigFile  string
	Contract    string
	Client      string
	Frameworks  string
	S3Region    string
	Interactive bool
	NoSave      bool
}

// Run executes the analyze command.
func Run(args []string) error {
	opts := &Options{}

	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	fs.StringVar(&opts.ConfigFile, "config", "", "Path to YAML config file")
	fs.StringVar(&opts.Contract, "contract", "", "Contract source: file path, s3://bucket/key, or '-' for stdin")
	fs.StringVar(&opts.Client, "client", "", "Client name (overrides config)")
	fs.StringVar(&opts.Frameworks, "frameworks", "", "Comma-separated framework ids to analyze instead of detection")
	fs.StringVar(&opts.S3Region, "s3-region", "", "AWS region for s3:// sources")
	fs.BoolVar(&opts.Interactive, "interactive", false, "Browse issues interactively after analysis")
	fs.BoolVar(&opts.NoSave, "no-save", false, "Skip persisting the analysis")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: clauseguard analyze [options]

Analyze contract text for regulatory compliance.

Options:`)
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr, `
Examples:
  clauseguard analyze --contract msa.txt
  clauseguard analyze --contract s3://contracts/acme/msa.txt --client acme
  cat msa.txt | clauseguard analyze --contract - --frameworks gdpr,hipaa`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.Contract == "" {
		return fmt.Errorf("--contract flag is required")
	}

	log := logger.GetGlobalLogger()
	ctx := context.Background()

	cfg := config.DefaultConfig()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.LoadConfig(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if opts.Client != "" {
		cfg.Client.Name = opts.Client
	}
	if opts.S3Region == "" && cfg.S3 != nil {
		opts.S3Region = cfg.S3.Region
	}

	reader := ingest.NewReader(log, ingest.WithRegion(opts.S3Region))
	text, err := reader.Read(ctx, opts.Contract)
	if err != nil {
		return fmt.Errorf("reading contract: %w", err)
	}

	registry := catalog.Default()
	eng := analyzer.New(registry,
		analyzer.WithLogger(log),
		analyzer.WithHourlyRate(cfg.HourlyRate),
	)

	selected := splitFrameworks(opts.Frameworks)
	if len(selected) == 0 {
		selected = cfg.DefaultFrameworks
	}

	report, err := runAnalysis(ctx, eng, text, selected)
	if err != nil {
		return err
	}

	if !opts.NoSave {
		store := storage.NewStorageWithLogger(cfg.Storage.BaseDir, log)
		dir, err := store.SaveAnalysis(cfg.Client.Name, opts.Contract, text, report)
		if err != nil {
			return fmt.Errorf("saving analysis: %w", err)
		}
		log.Info("Analysis saved", "dir", dir)

		db, err := database.New(cfg.Storage.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer func() { _ = db.Close() }()

		if _, err := db.SaveReport(ctx, cfg.Client.Name, opts.Contract, report); err != nil {
			return fmt.Errorf("recording analysis: %w", err)
		}
	}

	fmt.Print(ui.RenderSummary(report)) //nolint:forbidigo

	if opts.Interactive {
		return ui.NewIssueBrowser(report).Run()
	}
	return nil
}

// runAnalysis runs detection-based or preselected analysis.
func runAnalysis(ctx context.Context, eng *analyzer.Analyzer, text string, frameworkIDs []string) (*models.ComplianceReport, error) {
	if len(frameworkIDs) == 0 {
		return eng.Analyze(ctx, text)
	}
	return eng.AnalyzeWithFrameworks(ctx, text, frameworkIDs)
}

// splitFrameworks parses the comma-separated --frameworks value.
func splitFrameworks(frameworks string) []string {
	var ids []string
	for _, id := range strings.Split(frameworks, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
