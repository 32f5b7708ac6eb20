// Package main is the entry point for the Clauseguard CLI. Clauseguard
// scores contract text against regulatory frameworks and produces
// compliance reports, remediation plans, effort estimates, and exposure
// projections.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/clauseguard/clauseguard/cmd/analyze"
	"github.com/clauseguard/clauseguard/cmd/frameworks"
	"github.com/clauseguard/clauseguard/cmd/list"
	"github.com/clauseguard/clauseguard/cmd/report"
	"github.com/clauseguard/clauseguard/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var (
		debug       bool
		logFormat   string
		showVersion bool
	)

	globalFlags := flag.NewFlagSet("clauseguard", flag.ExitOnError)
	globalFlags.BoolVar(&debug, "debug", false, "Enable debug logging")
	globalFlags.StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
	globalFlags.BoolVar(&showVersion, "version", false, "Show version information")

	if err := globalFlags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if showVersion {
		fmt.Printf("clauseguard version %s (built %s)\n", version, buildTime) //nolint:forbidigo
		os.Exit(0)
	}

	logger.SetupLogger(debug, logFormat)

	args := globalFlags.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "analyze":
		if err := analyze.Run(commandArgs); err != nil {
			logger.Error("analysis failed", "error", err)
			os.Exit(1)
		}
	case "report":
		if err := report.Run(commandArgs); err != nil {
			logger.Error("report generation failed", "error", err)
			os.Exit(1)
		}
	case "list":
		if err := list.Run(commandArgs); err != nil {
			logger.Error("list failed", "error", err)
			os.Exit(1)
		}
	case "frameworks":
		if err := frameworks.Run(commandArgs); err != nil {
			logger.Error("frameworks listing failed", "error", err)
			os.Exit(1)
		}
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	//nolint:forbidigo
	fmt.Println(`Clauseguard Contract Compliance Analyzer

Usage:
  clauseguard [global flags] <command> [command flags]

Commands:
  analyze      Analyze contract text for regulatory compliance
  report       Generate report files from a stored analysis
  list         List stored analyses
  frameworks   List the regulatory framework catalog
  help         Show this help message

Global Flags:
  --debug         Enable debug logging
  --log-format    Log format (text or json) (default: text)
  --version       Show version information

Examples:
  clauseguard analyze --contract msa.txt --client acme
  clauseguard report --analysis latest --format html,remediation
  clauseguard list --client acme --limit 10
  clauseguard frameworks --requirements

Use "clauseguard <command> --help" for more information about a command.`)
}
