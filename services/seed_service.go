package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/repository"

	"github.com/google/uuid"
)

// SeedService defines the interface for generating randomized demo data.
type SeedService interface {
	SeedRandomUsers(count int) (int, error)
}

type seedService struct {
	userRepo          repository.UserRepository
	assessmentService AssessmentService
	rng               *rand.Rand
}

// NewSeedService creates a new instance of SeedService. Pass a seeded rng
// for reproducible data in tests; nil uses an unseeded default source.
func NewSeedService(userRepo repository.UserRepository, assessmentService AssessmentService, rng *rand.Rand) SeedService {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &seedService{
		userRepo:          userRepo,
		assessmentService: assessmentService,
		rng:               rng,
	}
}

var seedTextAnswers = []string{
	"Cash flow in the slow season.",
	"Finding time to work on the business instead of in it.",
	"Hiring the right people.",
	"Keeping up with larger competitors.",
	"Nothing major right now.",
}

// SeedRandomUsers creates count synthetic users and submits a randomized
// answer for every question of every section on their behalf. Submissions go
// through AssessmentService.SubmitSection, so the generated scores come from
// the same answer-weight resolution as real submissions; the seeder never
// computes a weight itself.
func (s *seedService) SeedRandomUsers(count int) (int, error) {
	if count <= 0 {
		return 0, errors.New("seed count must be positive")
	}

	sections := s.assessmentService.GetSections()
	if len(sections) == 0 {
		return 0, errors.New("no assessment sections are configured")
	}

	created := 0
	for i := 0; i < count; i++ {
		userID := uuid.NewString()
		user := &models.User{
			ID:           userID,
			Email:        fmt.Sprintf("demo-%s@example.com", userID[:8]),
			Name:         fmt.Sprintf("Demo User %d", i+1),
			BusinessName: fmt.Sprintf("Demo Business %d", i+1),
			Role:         models.RoleUser,
			IsSeeded:     true,
		}
		if _, err := s.userRepo.CreateUser(user); err != nil {
			log.Printf("ERROR: [SeedService] Failed to create seeded user %s: %v", userID, err)
			return created, fmt.Errorf("failed to create seeded user: %w", err)
		}

		for _, section := range sections {
			selections := s.randomSelections(section)
			if _, err := s.assessmentService.SubmitSection(userID, section.Number, selections); err != nil {
				log.Printf("ERROR: [SeedService] Failed to submit section %d for seeded user %s: %v", section.Number, userID, err)
				return created, fmt.Errorf("failed to submit seeded section %d: %w", section.Number, err)
			}
		}
		created++
	}

	log.Printf("INFO: [SeedService] Seeded %d users across %d sections each.", created, len(sections))
	return created, nil
}

// randomSelections picks an answer for every question in a section.
func (s *seedService) randomSelections(section models.AssessmentSection) map[string][]string {
	selections := make(map[string][]string, len(section.Questions))
	for _, question := range section.Questions {
		switch question.Type {
		case models.QuestionTypeMultipleChoice:
			if len(question.Options) == 0 {
				continue
			}
			choice := question.Options[s.rng.Intn(len(question.Options))]
			selections[question.ID] = []string{choice.Label}
		case models.QuestionTypeMultipleSelect:
			var picked []string
			for _, opt := range question.Options {
				if s.rng.Intn(2) == 1 {
					picked = append(picked, opt.Label)
				}
			}
			if len(picked) == 0 && len(question.Options) > 0 {
				picked = []string{question.Options[0].Label}
			}
			selections[question.ID] = picked
		default:
			selections[question.ID] = []string{seedTextAnswers[s.rng.Intn(len(seedTextAnswers))]}
		}
	}
	return selections
}
