package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"

	"github.com/stretchr/testify/assert"
)

func writeOverrideFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report_content.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func withContentFile(t *testing.T, path string) {
	t.Helper()
	previous := AppConfig.Report.ContentFile
	AppConfig.Report.ContentFile = path
	t.Cleanup(func() { AppConfig.Report.ContentFile = previous })
}

func TestLoadReportContent(t *testing.T) {
	t.Run("No override configured returns the built-in content", func(t *testing.T) {
		withContentFile(t, "")
		table := LoadReportContent()
		assert.Len(t, table, 5)
		assert.NotEmpty(t, table[scoring.CategoryFoundationalStructure][scoring.BucketHealthy].Message)
	})

	t.Run("Override keys keep their exact case through loading", func(t *testing.T) {
		path := writeOverrideFile(t, `
foundationalStructure:
  healthy:
    message: custom healthy guidance
    resources:
      - title: Custom Resource
        description: Override material.
        type: article
  needsTweaking:
    message: custom tweaking guidance
    resources: []
`)
		withContentFile(t, path)

		table := LoadReportContent()
		assert.Contains(t, table, scoring.CategoryFoundationalStructure)
		assert.Contains(t, table[scoring.CategoryFoundationalStructure], scoring.BucketHealthy)
		assert.Contains(t, table[scoring.CategoryFoundationalStructure], scoring.BucketNeedsTweaking)

		// The selector must serve the override, not the unknown-category stub.
		selector := scoring.NewReportSelector(table)
		report := selector.GetCategoryReport(scoring.CategoryFoundationalStructure, scoring.HealthLevelHigh)
		assert.Equal(t, "custom healthy guidance", report.Message)
		assert.Equal(t, "Healthy", report.Label)
		assert.Equal(t, "Custom Resource", report.Resources[0].Title)
	})

	t.Run("Unreadable override falls back to the built-in content", func(t *testing.T) {
		withContentFile(t, filepath.Join(t.TempDir(), "does_not_exist.yaml"))
		table := LoadReportContent()
		assert.Len(t, table, 5)
	})

	t.Run("Malformed override falls back to the built-in content", func(t *testing.T) {
		withContentFile(t, writeOverrideFile(t, "foundationalStructure: [not, a, bucket, map]"))
		table := LoadReportContent()
		assert.Len(t, table, 5)
		assert.NotEmpty(t, table[scoring.CategoryGeneral][scoring.BucketUnhealthy].Message)
	})

	t.Run("Empty override falls back to the built-in content", func(t *testing.T) {
		withContentFile(t, writeOverrideFile(t, ""))
		table := LoadReportContent()
		assert.Len(t, table, 5)
	})
}
