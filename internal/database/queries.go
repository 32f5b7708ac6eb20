package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/clauseguard/clauseguard/internal/models"
)

// SaveReport records a compliance report and its issues in one transaction.
// Returns the analysis row id.
func (db *DB) SaveReport(ctx context.Context, client, source string, report *models.ComplianceReport) (int64, error) {
	frameworksJSON, err := json.Marshal(report.DetectedFrameworks)
	if err != nil {
		return 0, fmt.Errorf("marshaling frameworks: %w", err)
	}

	var analysisID int64
	err = db.InTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO analyses (report_id, client, source, overall_score, overall_status, risk_level, detected_frameworks, issue_count, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			report.ID,
			client,
			source,
			report.OverallScore,
			report.OverallStatus,
			report.RiskLevel,
			string(frameworksJSON),
			len(report.Issues),
			report.GeneratedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting analysis: %w", err)
		}

		analysisID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}

		for _, issue := range report.Issues {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO issues (analysis_id, issue_id, framework_id, requirement, status, severity, description, remediation)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`,
				analysisID,
				issue.ID,
				issue.FrameworkID,
				issue.Requirement,
				issue.Status,
				issue.Severity,
				issue.Description,
				issue.Remediation,
			); err != nil {
				return fmt.Errorf("inserting issue %s: %w", issue.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return analysisID, nil
}

// ListAnalyses returns stored analyses, newest first. An empty client
// matches all clients. Limit <= 0 means no limit.
func (db *DB) ListAnalyses(ctx context.Context, client string, limit int) ([]*Analysis, error) {
	query := `
		SELECT id, report_id, client, source, overall_score, overall_status, risk_level, detected_frameworks, issue_count, created_at
		FROM analyses
	`
	var args []any
	if client != "" {
		query += ` WHERE client = ?`
		args = append(args, client)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var analyses []*Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}

	return analyses, nil
}

// GetAnalysisByReportID looks up a stored analysis by its report UUID.
func (db *DB) GetAnalysisByReportID(ctx context.Context, reportID string) (*Analysis, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, report_id, client, source, overall_score, overall_status, risk_level, detected_frameworks, issue_count, created_at
		FROM analyses WHERE report_id = ?
	`, reportID)

	analysis, err := scanAnalysis(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("analysis %s not found", reportID)
		}
		return nil, err
	}
	return analysis, nil
}

// GetIssues returns stored issues for an analysis, most severe first.
func (db *DB) GetIssues(ctx context.Context, analysisID int64, filter IssueFilter) ([]*IssueRow, error) {
	query := `
		SELECT id, analysis_id, issue_id, framework_id, requirement, status, severity, description, remediation
		FROM issues WHERE analysis_id = ?
	`
	args := []any{analysisID}

	if filter.Severity != "" {
		query += ` AND severity = ?`
		args = append(args, filter.Severity)
	}

	query += `
		ORDER BY CASE severity
			WHEN 'critical' THEN 0
			WHEN 'high' THEN 1
			WHEN 'medium' THEN 2
			ELSE 3
		END, framework_id, requirement
	`

	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying issues: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var issues []*IssueRow
	for rows.Next() {
		var issue IssueRow
		if err := rows.Scan(
			&issue.ID,
			&issue.AnalysisID,
			&issue.IssueID,
			&issue.FrameworkID,
			&issue.Requirement,
			&issue.Status,
			&issue.Severity,
			&issue.Description,
			&issue.Remediation,
		); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		issues = append(issues, &issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}

	return issues, nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scanner) (*Analysis, error) {
	var analysis Analysis
	var frameworksJSON string

	if err := s.Scan(
		&analysis.ID,
		&analysis.ReportID,
		&analysis.Client,
		&analysis.Source,
		&analysis.OverallScore,
		&analysis.OverallStatus,
		&analysis.RiskLevel,
		&frameworksJSON,
		&analysis.IssueCount,
		&analysis.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(frameworksJSON), &analysis.DetectedFrameworks); err != nil {
		return nil, fmt.Errorf("parsing detected frameworks: %w", err)
	}

	return &analysis, nil
}
