package services

import (
	"errors"
	"testing"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReport(t *testing.T) {
	t.Run("Builds a full report from stored results", func(t *testing.T) {
		mockRepo := new(MockSectionResultRepository)
		service := NewReportService(mockRepo, nil)

		mockRepo.On("GetResultsByUserID", "user-1").Return([]models.SectionResult{
			{UserID: "user-1", SectionNumber: 1, SectionScore: 35},
			{UserID: "user-1", SectionNumber: 2, SectionScore: 40},
			{UserID: "user-1", SectionNumber: 4, SectionScore: 10},
		}, nil)

		report, err := service.GenerateReport("user-1")
		assert.NoError(t, err)
		assert.NotNil(t, report)
		assert.Equal(t, "user-1", report.UserID)
		assert.Equal(t, 3, report.SectionsCompleted)
		assert.Len(t, report.Categories, 5)

		// Categories come back in the registry's fixed order.
		assert.Equal(t, scoring.CategoryFoundationalStructure, report.Categories[0].Category)
		assert.Equal(t, scoring.CategoryGeneral, report.Categories[4].Category)

		fs := report.Categories[0]
		assert.Equal(t, "Foundational Structure", fs.CategoryLabel)
		assert.Equal(t, float64(75), fs.RawScore)
		assert.Equal(t, float64(135), fs.MaxPossible)
		assert.Equal(t, scoring.HealthLevelMedium, fs.HealthLevel)
		assert.Equal(t, "Needs Tweaking", fs.Report.Label)

		fp := report.Categories[1]
		assert.Equal(t, scoring.HealthLevelLow, fp.HealthLevel)
		assert.Equal(t, "Unhealthy", fp.Report.Label)

		assert.NotNil(t, report.Scores)
		assert.Equal(t, 5, report.Scores.Overall.CategoryCount)
		assert.False(t, report.GeneratedAt.IsZero())
	})

	t.Run("Low categories surface as action items", func(t *testing.T) {
		mockRepo := new(MockSectionResultRepository)
		service := NewReportService(mockRepo, nil)

		// Only section 1 submitted: every category except foundational
		// structure sits at zero, and even that one is in the low band.
		mockRepo.On("GetResultsByUserID", "user-2").Return([]models.SectionResult{
			{UserID: "user-2", SectionNumber: 1, SectionScore: 5},
		}, nil)

		report, err := service.GenerateReport("user-2")
		assert.NoError(t, err)
		assert.Len(t, report.ActionItems, 5)
		for _, item := range report.ActionItems {
			assert.LessOrEqual(t, len(item.Resources), 2)
			assert.NotEmpty(t, item.Message)
		}
		assert.NotEmpty(t, report.RecommendedResources)

		// De-duplicated by title.
		seen := make(map[string]bool)
		for _, resource := range report.RecommendedResources {
			assert.False(t, seen[resource.Title], "duplicate resource title %q", resource.Title)
			seen[resource.Title] = true
		}
	})

	t.Run("No stored results yields nil report and nil error", func(t *testing.T) {
		mockRepo := new(MockSectionResultRepository)
		service := NewReportService(mockRepo, nil)

		mockRepo.On("GetResultsByUserID", "user-3").Return([]models.SectionResult{}, nil)

		report, err := service.GenerateReport("user-3")
		assert.NoError(t, err)
		assert.Nil(t, report)
	})

	t.Run("Empty userID is rejected", func(t *testing.T) {
		service := NewReportService(new(MockSectionResultRepository), nil)
		report, err := service.GenerateReport("")
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Repository errors are wrapped and returned", func(t *testing.T) {
		mockRepo := new(MockSectionResultRepository)
		service := NewReportService(mockRepo, nil)

		dbErr := errors.New("connection lost")
		mockRepo.On("GetResultsByUserID", "user-4").Return(nil, dbErr)

		report, err := service.GenerateReport("user-4")
		assert.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, report)
	})

	t.Run("Injected content table drives the narrative", func(t *testing.T) {
		mockRepo := new(MockSectionResultRepository)
		table := scoring.ReportContentTable{
			scoring.CategoryFoundationalStructure: {
				scoring.BucketUnhealthy: {Message: "custom guidance", Resources: []scoring.Resource{{Title: "Custom Resource", Type: "article"}}},
			},
		}
		service := NewReportService(mockRepo, scoring.NewReportSelector(table))

		mockRepo.On("GetResultsByUserID", "user-5").Return([]models.SectionResult{
			{UserID: "user-5", SectionNumber: 1, SectionScore: 5},
		}, nil)

		report, err := service.GenerateReport("user-5")
		assert.NoError(t, err)
		assert.Equal(t, "custom guidance", report.Categories[0].Report.Message)
		// Categories missing from the override table get the stub entry.
		assert.Equal(t, "Unknown", report.Categories[1].Report.Label)
	})
}
