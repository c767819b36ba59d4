package services

import (
	"errors"
	"testing"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDashboard(t *testing.T) {
	t.Run("Aggregates participation and health across users", func(t *testing.T) {
		mockResultRepo := new(MockSectionResultRepository)
		mockUserRepo := new(MockUserRepository)
		service := NewAnalyticsService(mockResultRepo, mockUserRepo)

		mockResultRepo.On("GetAllResults").Return([]models.SectionResult{
			{UserID: "user-1", SectionNumber: 1, SectionScore: 35},
			{UserID: "user-1", SectionNumber: 2, SectionScore: 40},
			{UserID: "user-2", SectionNumber: 1, SectionScore: 5},
		}, nil)
		mockUserRepo.On("CountUsers", true).Return(int64(4), nil)

		dashboard, err := service.GenerateDashboard()
		assert.NoError(t, err)
		assert.NotNil(t, dashboard)
		assert.Equal(t, int64(4), dashboard.TotalUsers)
		assert.Equal(t, 2, dashboard.AssessedUsers)
		assert.Equal(t, 3, dashboard.TotalSectionResults)
		assert.Equal(t, 2, dashboard.SubmissionsBySection[1])
		assert.Equal(t, 1, dashboard.SubmissionsBySection[2])

		// Both users sit at overall low: each has at most one category with
		// any score, and even that score averages out below the 40 cutoff.
		assert.Equal(t, 2, dashboard.OverallLevelCounts[string(scoring.HealthLevelLow)])
		assert.Equal(t, 0, dashboard.OverallLevelCounts[string(scoring.HealthLevelHigh)])

		assert.Len(t, dashboard.CategoryDistributions, 5)
		fs := dashboard.CategoryDistributions[0]
		assert.Equal(t, scoring.CategoryFoundationalStructure, fs.Category)
		assert.Equal(t, "Foundational Structure", fs.CategoryLabel)
		// user-1 is at 75 (medium), user-2 at 5 (low).
		assert.Equal(t, 1, fs.Medium)
		assert.Equal(t, 1, fs.Low)
		assert.Equal(t, 0, fs.High)
		assert.False(t, dashboard.GeneratedAt.IsZero())
	})

	t.Run("Empty system yields an all-zero dashboard", func(t *testing.T) {
		mockResultRepo := new(MockSectionResultRepository)
		mockUserRepo := new(MockUserRepository)
		service := NewAnalyticsService(mockResultRepo, mockUserRepo)

		mockResultRepo.On("GetAllResults").Return([]models.SectionResult{}, nil)
		mockUserRepo.On("CountUsers", true).Return(int64(0), nil)

		dashboard, err := service.GenerateDashboard()
		assert.NoError(t, err)
		assert.Equal(t, 0, dashboard.AssessedUsers)
		assert.Equal(t, float64(0), dashboard.AverageOverallHealth)
		assert.Len(t, dashboard.CategoryDistributions, 5)
	})

	t.Run("Result store errors abort the dashboard", func(t *testing.T) {
		mockResultRepo := new(MockSectionResultRepository)
		mockUserRepo := new(MockUserRepository)
		service := NewAnalyticsService(mockResultRepo, mockUserRepo)

		dbErr := errors.New("table locked")
		mockResultRepo.On("GetAllResults").Return(nil, dbErr)

		dashboard, err := service.GenerateDashboard()
		assert.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, dashboard)
	})

	t.Run("User count errors abort the dashboard", func(t *testing.T) {
		mockResultRepo := new(MockSectionResultRepository)
		mockUserRepo := new(MockUserRepository)
		service := NewAnalyticsService(mockResultRepo, mockUserRepo)

		mockResultRepo.On("GetAllResults").Return([]models.SectionResult{}, nil)
		mockUserRepo.On("CountUsers", true).Return(int64(0), errors.New("count failed"))

		dashboard, err := service.GenerateDashboard()
		assert.Error(t, err)
		assert.Nil(t, dashboard)
	})
}
