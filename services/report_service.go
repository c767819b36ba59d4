package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/repository"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"
)

// CategoryReport is one category's slice of the rendered report: its scores,
// classification, and the selected narrative content.
type CategoryReport struct {
	Category      scoring.CategoryKey   `json:"category"`
	CategoryLabel string                `json:"categoryLabel"`
	RawScore      float64               `json:"rawScore"`
	MaxPossible   float64               `json:"maxPossible"`
	Percentage    float64               `json:"percentage"`
	HealthLevel   scoring.HealthLevel   `json:"healthLevel"`
	Health        scoring.HealthLabel   `json:"health"`
	Report        scoring.ReportEntry   `json:"report"`
	Sections      map[int]float64       `json:"sections"`
}

// ReportResponse is the full business-health report for one user, consumed
// by the interactive report view and the PDF exporter alike.
type ReportResponse struct {
	UserID               string                  `json:"user_id"`
	GeneratedAt          time.Time               `json:"generated_at"`
	SectionsCompleted    int                     `json:"sections_completed"`
	Scores               *scoring.EnhancedScores `json:"scores"`
	Categories           []CategoryReport        `json:"categories"`
	ActionItems          []scoring.ActionItem    `json:"action_items"`
	RecommendedResources []scoring.Resource      `json:"recommended_resources"`
}

// ReportService defines the interface for generating business-health
// reports.
type ReportService interface {
	GenerateReport(userID string) (*ReportResponse, error)
}

type reportService struct {
	resultRepo repository.SectionResultRepository
	selector   *scoring.ReportSelector
}

// NewReportService creates a new instance of ReportService. The content
// table (default or admin override) is resolved by the caller before
// construction; the service never reloads it.
func NewReportService(resultRepo repository.SectionResultRepository, selector *scoring.ReportSelector) ReportService {
	if selector == nil {
		selector = scoring.NewReportSelector(nil)
	}
	return &reportService{
		resultRepo: resultRepo,
		selector:   selector,
	}
}

// GenerateReport builds the full report for a user from their stored section
// results. Returns (nil, nil) when the user has no scoreable results yet;
// callers must check for the nil report.
func (s *reportService) GenerateReport(userID string) (*ReportResponse, error) {
	if userID == "" {
		log.Println("WARN: [ReportService] GenerateReport called with empty userID.")
		return nil, errors.New("userID cannot be empty")
	}

	results, err := s.resultRepo.GetResultsByUserID(userID)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get section results for userID %s", userID)
		log.Printf("ERROR: [ReportService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	if len(results) == 0 {
		log.Printf("INFO: [ReportService] No section results for userID '%s'; nothing to report.", userID)
		return nil, nil
	}

	enhanced := scoring.ProcessComputedScores(scoring.Aggregate(results))
	if enhanced == nil {
		log.Printf("INFO: [ReportService] No scoreable results for userID '%s'; nothing to report.", userID)
		return nil, nil
	}

	categories := make([]CategoryReport, 0, len(enhanced.Categories))
	for _, key := range scoring.CategoryKeys() {
		score, exists := enhanced.Categories[key]
		if !exists || score == nil {
			continue
		}
		cfg := scoring.GetCategoryRange(key)
		categoryLabel := string(key)
		if cfg != nil {
			categoryLabel = cfg.Label
		}
		categories = append(categories, CategoryReport{
			Category:      key,
			CategoryLabel: categoryLabel,
			RawScore:      score.RawScore,
			MaxPossible:   score.MaxPossible,
			Percentage:    score.Percentage,
			HealthLevel:   score.HealthLevel,
			Health:        score.Health,
			Report:        s.selector.GetCategoryReport(key, score.HealthLevel),
			Sections:      score.Sections,
		})
	}

	response := &ReportResponse{
		UserID:               userID,
		GeneratedAt:          time.Now().UTC(),
		SectionsCompleted:    len(results),
		Scores:               enhanced,
		Categories:           categories,
		ActionItems:          s.selector.GenerateActionItems(enhanced),
		RecommendedResources: s.selector.GetRecommendedResources(enhanced),
	}

	log.Printf("INFO: [ReportService] Generated report for userID '%s': %d sections, overall %.1f%% (%s), %d action items.",
		userID, response.SectionsCompleted, enhanced.Overall.Percentage, enhanced.Overall.HealthLevel, len(response.ActionItems))
	return response, nil
}
