package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/analyzer"
	"github.com/clauseguard/clauseguard/internal/catalog"
)

func TestSplitFrameworks(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "gdpr", want: []string{"gdpr"}},
		{in: "gdpr,hipaa", want: []string{"gdpr", "hipaa"}},
		{in: " gdpr , hipaa ", want: []string{"gdpr", "hipaa"}},
		{in: "gdpr,,hipaa,", want: []string{"gdpr", "hipaa"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitFrameworks(tt.in), "input %q", tt.in)
	}
}

func TestRunAnalysis(t *testing.T) {
	eng := analyzer.New(catalog.Default())
	ctx := context.Background()

	t.Run("detection without preselection", func(t *testing.T) {
		report, err := runAnalysis(ctx, eng, "HIPAA covered entity terms", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{catalog.FrameworkHIPAA}, report.DetectedFrameworks)
	})

	t.Run("preselection overrides detection", func(t *testing.T) {
		report, err := runAnalysis(ctx, eng, "HIPAA covered entity terms", []string{catalog.FrameworkPCI})
		require.NoError(t, err)
		assert.Equal(t, []string{catalog.FrameworkPCI}, report.DetectedFrameworks)
	})

	t.Run("unknown framework id", func(t *testing.T) {
		_, err := runAnalysis(ctx, eng, "text", []string{"nope"})
		require.Error(t, err)
		assert.True(t, analyzer.IsConfigError(err))
	})
}
