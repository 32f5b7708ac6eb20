// Package analyzer implements the contract compliance scoring pipeline:
// framework detection, per-requirement evaluation, framework scoring, issue
// generation, and report aggregation. The pipeline is a pure function of
// the contract text and the immutable catalog; independent invocations are
// safe to run in parallel.
package analyzer

import (
	"context"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/clauseguard/clauseguard/internal/catalog"
	"github.com/clauseguard/clauseguard/internal/exposure"
	"github.com/clauseguard/clauseguard/internal/models"
	"github.com/clauseguard/clauseguard/internal/recommend"
	"github.com/clauseguard/clauseguard/internal/remediation"
	"github.com/clauseguard/clauseguard/pkg/logger"
)

// Analyzer runs the compliance pipeline against the framework catalog.
type Analyzer struct {
	registry   *catalog.Registry
	actions    *catalog.ActionCatalog
	schedules  map[string]*catalog.FineSchedule
	logger     logger.Logger
	hourlyRate int
	now        func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithHourlyRate overrides the cost-projection hourly rate.
func WithHourlyRate(rate int) Option {
	return func(a *Analyzer) {
		a.hourlyRate = rate
	}
}

// WithLogger sets the analyzer logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Analyzer) {
		a.logger = log
	}
}

// WithClock overrides the report timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New creates an Analyzer over the given registry.
func New(registry *catalog.Registry, opts ...Option) *Analyzer {
	a := &Analyzer{
		registry:   registry,
		actions:    catalog.DefaultActions(),
		schedules:  catalog.FineSchedules(),
		logger:     logger.GetGlobalLogger(),
		hourlyRate: remediation.DefaultHourlyRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full pipeline on contract text. Empty text is valid and
// yields the degenerate all-missing report for the default framework set;
// invalid UTF-8 violates the input contract and returns an input error.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*models.ComplianceReport, error) {
	return a.analyze(ctx, text, nil)
}

// AnalyzeWithFrameworks runs the pipeline against an explicit framework
// preselection instead of trigger detection. Every id must exist in the
// registry. Duplicate ids collapse to one; the preselection is a set.
func (a *Analyzer) AnalyzeWithFrameworks(ctx context.Context, text string, frameworkIDs []string) (*models.ComplianceReport, error) {
	if len(frameworkIDs) == 0 {
		return nil, NewConfigError("framework preselection is empty")
	}
	seen := make(map[string]bool, len(frameworkIDs))
	ids := make([]string, 0, len(frameworkIDs))
	for _, id := range frameworkIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return a.analyze(ctx, text, ids)
}

func (a *Analyzer) analyze(ctx context.Context, text string, preselected []string) (*models.ComplianceReport, error) {
	if !utf8.ValidString(text) {
		return nil, NewInputError("contract text is not valid UTF-8")
	}

	folded := foldText(text)

	detected := preselected
	if detected == nil {
		detected = detectFrameworks(folded, a.registry)
	}
	a.logger.Debug("Detected frameworks", "frameworks", detected, "preselected", preselected != nil)

	results := make(map[string]*models.FrameworkResult, len(detected))
	var issues []models.Issue
	for _, id := range detected {
		// The keyword scan dominates cost on large contracts; honor
		// cancellation between frameworks.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fw, ok := a.registry.Lookup(id)
		if !ok {
			return nil, NewConfigError("framework %q not found in registry", id)
		}

		result := scoreFramework(fw, folded)
		results[id] = result
		issues = append(issues, generateIssues(fw, result, a.actions)...)
	}

	report := &models.ComplianceReport{
		ID:                 uuid.NewString(),
		GeneratedAt:        a.now(),
		OverallScore:       overallScore(results, detected),
		DetectedFrameworks: detected,
		Frameworks:         results,
		Issues:             issues,
	}
	report.OverallStatus = models.BandForScore(report.OverallScore)
	report.RiskLevel = models.RiskFor(report.OverallScore, report.CriticalCount())
	report.Phases = remediation.PlanPhases(issues)
	report.Effort = remediation.EstimateEffort(issues, a.hourlyRate)
	report.Exposure = exposure.Project(results, a.schedules)
	report.Recommendations = recommend.Generate(issues)

	a.logger.Info("Analysis complete",
		"score", report.OverallScore,
		"status", report.OverallStatus,
		"risk", report.RiskLevel,
		"issues", len(report.Issues),
	)

	return report, nil
}
