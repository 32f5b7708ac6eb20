package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clauseguard/clauseguard/pkg/pathutil"
)

// generateJSON writes the full report as indented JSON.
func (g *Generator) generateJSON(outputPath string) error {
	validPath, err := pathutil.ValidateOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	data, err := json.MarshalIndent(g.report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if err := os.WriteFile(validPath, data, 0600); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}

	g.logger.Info("Generated JSON report", "path", validPath)
	return nil
}
