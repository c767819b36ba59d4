package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/repository"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"
)

// CategoryDistribution counts how many assessed users fall into each health
// level for one category.
type CategoryDistribution struct {
	Category      scoring.CategoryKey `json:"category"`
	CategoryLabel string              `json:"categoryLabel"`
	Low           int                 `json:"low"`
	Medium        int                 `json:"medium"`
	High          int                 `json:"high"`
}

// DashboardResponse is the admin analytics dashboard payload: participation
// counts and the health picture across every assessed user.
type DashboardResponse struct {
	TotalUsers            int64                  `json:"total_users"`
	AssessedUsers         int                    `json:"assessed_users"`
	TotalSectionResults   int                    `json:"total_section_results"`
	SubmissionsBySection  map[int]int            `json:"submissions_by_section"`
	AverageOverallHealth  float64                `json:"average_overall_health"`
	OverallLevelCounts    map[string]int         `json:"overall_level_counts"`
	CategoryDistributions []CategoryDistribution `json:"category_distributions"`
	GeneratedAt           time.Time              `json:"generated_at"`
}

// AnalyticsService defines the interface for the admin analytics dashboard.
type AnalyticsService interface {
	GenerateDashboard() (*DashboardResponse, error)
}

type analyticsService struct {
	resultRepo repository.SectionResultRepository
	userRepo   repository.UserRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(resultRepo repository.SectionResultRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{
		resultRepo: resultRepo,
		userRepo:   userRepo,
	}
}

// GenerateDashboard aggregates every stored section result into the admin
// view: per-section participation, per-category health distributions across
// users, and the average overall health. Each user's scores run through the
// same scoring pipeline the individual report uses.
func (s *analyticsService) GenerateDashboard() (*DashboardResponse, error) {
	allResults, err := s.resultRepo.GetAllResults()
	if err != nil {
		log.Printf("ERROR: [AnalyticsService] Failed to load section results: %v", err)
		return nil, fmt.Errorf("failed to load section results: %w", err)
	}

	totalUsers, err := s.userRepo.CountUsers(true)
	if err != nil {
		log.Printf("ERROR: [AnalyticsService] Failed to count users: %v", err)
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	resultsByUser := make(map[string][]models.SectionResult)
	submissionsBySection := make(map[int]int)
	for _, result := range allResults {
		resultsByUser[result.UserID] = append(resultsByUser[result.UserID], result)
		submissionsBySection[result.SectionNumber]++
	}

	distributions := make(map[scoring.CategoryKey]*CategoryDistribution, 5)
	for _, key := range scoring.CategoryKeys() {
		label := string(key)
		if cfg := scoring.GetCategoryRange(key); cfg != nil {
			label = cfg.Label
		}
		distributions[key] = &CategoryDistribution{Category: key, CategoryLabel: label}
	}

	overallLevelCounts := map[string]int{
		string(scoring.HealthLevelLow):    0,
		string(scoring.HealthLevelMedium): 0,
		string(scoring.HealthLevelHigh):   0,
	}

	var overallSum float64
	var assessedUsers int
	for userID, results := range resultsByUser {
		enhanced := scoring.ProcessComputedScores(scoring.Aggregate(results))
		if enhanced == nil {
			log.Printf("WARN: [AnalyticsService] UserID '%s' has results but no computable scores; skipping.", userID)
			continue
		}
		assessedUsers++
		overallSum += enhanced.Overall.Percentage
		overallLevelCounts[string(enhanced.Overall.HealthLevel)]++

		for key, score := range enhanced.Categories {
			dist, exists := distributions[key]
			if !exists || score == nil {
				continue
			}
			switch score.HealthLevel {
			case scoring.HealthLevelHigh:
				dist.High++
			case scoring.HealthLevelMedium:
				dist.Medium++
			default:
				dist.Low++
			}
		}
	}

	averageOverall := 0.0
	if assessedUsers > 0 {
		averageOverall = overallSum / float64(assessedUsers)
	}

	orderedDistributions := make([]CategoryDistribution, 0, len(distributions))
	for _, key := range scoring.CategoryKeys() {
		orderedDistributions = append(orderedDistributions, *distributions[key])
	}

	response := &DashboardResponse{
		TotalUsers:            totalUsers,
		AssessedUsers:         assessedUsers,
		TotalSectionResults:   len(allResults),
		SubmissionsBySection:  submissionsBySection,
		AverageOverallHealth:  averageOverall,
		OverallLevelCounts:    overallLevelCounts,
		CategoryDistributions: orderedDistributions,
		GeneratedAt:           time.Now().UTC(),
	}

	log.Printf("INFO: [AnalyticsService] Dashboard generated: %d users, %d assessed, %d results, avg overall %.1f%%.",
		totalUsers, assessedUsers, len(allResults), averageOverall)
	return response, nil
}
