package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/repository"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/scoring"
)

// AssessmentService defines the interface for assessment-related operations.
type AssessmentService interface {
	GetSections() []models.AssessmentSection
	GetSection(sectionNumber int) *models.AssessmentSection
	SubmitSection(userID string, sectionNumber int, selections map[string][]string) (*models.SectionResult, error)
	GetResultsForUser(userID string) ([]models.SectionResult, error)
}

// assessmentService implements the AssessmentService interface.
type assessmentService struct {
	repo             repository.SectionResultRepository
	sections         []models.AssessmentSection
	sectionsByNumber map[int]*models.AssessmentSection
}

// NewAssessmentService creates a new instance of AssessmentService.
func NewAssessmentService(repo repository.SectionResultRepository) AssessmentService {
	definedSections := getDefaultSections()

	sectionsMap := make(map[int]*models.AssessmentSection, len(definedSections))
	for i := range definedSections {
		sectionsMap[definedSections[i].Number] = &definedSections[i]
	}

	return &assessmentService{
		repo:             repo,
		sections:         definedSections,
		sectionsByNumber: sectionsMap,
	}
}

// GetSections returns all section definitions in presentation order.
func (s *assessmentService) GetSections() []models.AssessmentSection {
	return s.sections
}

// GetSection returns one section definition, or nil for an unknown number.
func (s *assessmentService) GetSection(sectionNumber int) *models.AssessmentSection {
	return s.sectionsByNumber[sectionNumber]
}

// SubmitSection resolves a user's selections for one section into weighted
// answer records and stores them with the derived section score. First
// submission and edit are the same operation: the stored result is replaced
// whole, never patched. All weight resolution goes through
// scoring.ResolveSection, the same path the seeder uses.
func (s *assessmentService) SubmitSection(userID string, sectionNumber int, selections map[string][]string) (*models.SectionResult, error) {
	if userID == "" {
		log.Println("WARN: [AssessmentService] SubmitSection called with empty userID.")
		return nil, errors.New("userID cannot be empty")
	}

	section, exists := s.sectionsByNumber[sectionNumber]
	if !exists {
		log.Printf("WARN: [AssessmentService] UserID '%s' submitted answers for unknown section %d.", userID, sectionNumber)
		return nil, fmt.Errorf("unknown assessment section %d", sectionNumber)
	}

	answers, score := scoring.ResolveSection(section.Questions, selections)
	if len(answers) == 0 {
		log.Printf("INFO: [AssessmentService] UserID '%s' submitted section %d with no recognizable answers.", userID, sectionNumber)
		return nil, errors.New("no answers were provided for this section")
	}

	result := &models.SectionResult{
		UserID:        userID,
		SectionNumber: section.Number,
		SectionName:   section.Name,
		Answers:       answers,
		SectionScore:  score,
	}

	stored, err := s.repo.UpsertSectionResult(result)
	if err != nil {
		errMsg := fmt.Sprintf("failed to save section %d for userID %s", sectionNumber, userID)
		log.Printf("ERROR: [AssessmentService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	log.Printf("INFO: [AssessmentService] UserID '%s' saved section %d ('%s') with score %.1f over %d answered questions.",
		userID, stored.SectionNumber, stored.SectionName, stored.SectionScore, len(stored.Answers))
	return stored, nil
}

// GetResultsForUser retrieves all of a user's stored section results.
func (s *assessmentService) GetResultsForUser(userID string) ([]models.SectionResult, error) {
	if userID == "" {
		log.Println("WARN: [AssessmentService] GetResultsForUser called with empty userID.")
		return nil, errors.New("userID cannot be empty")
	}
	results, err := s.repo.GetResultsByUserID(userID)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get section results for userID %s", userID)
		log.Printf("ERROR: [AssessmentService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return results, nil
}

// getDefaultSections defines the 13-section business-health questionnaire.
// The per-section maximum scores line up with the category maxima in the
// scoring range registry (sections 1+2+3+8 = 135 for foundational structure,
// and so on); change one side only with the other in hand.
func getDefaultSections() []models.AssessmentSection {
	yesNo := func(yesWeight float64) []models.Option {
		return []models.Option{
			{Label: "Yes", Weight: yesWeight},
			{Label: "No", Weight: 0},
		}
	}

	return []models.AssessmentSection{
		{
			Number: 1, Name: "Business Identity & Purpose",
			Questions: []models.Question{
				{ID: "q1a", Text: "Do you have a written mission statement that your team could recite?", Type: models.QuestionTypeMultipleChoice, Options: yesNo(10)},
				{ID: "q1b", Text: "How clearly can you describe what makes your business different from competitors?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Very clearly, in one sentence", Weight: 10},
					{Label: "Somewhat, it takes some explaining", Weight: 5},
					{Label: "Not clearly at all", Weight: 0},
				}},
				{ID: "q1c", Text: "Which of the following do you have in writing? (select all that apply)", Type: models.QuestionTypeMultipleSelect, Options: []models.Option{
					{Label: "Vision statement", Weight: 5},
					{Label: "Core values", Weight: 5},
					{Label: "Brand guidelines", Weight: 5},
				}},
			},
		},
		{
			Number: 2, Name: "Legal & Ownership Structure",
			Questions: []models.Question{
				{ID: "q2a", Text: "Is your business registered as a formal legal entity (LLC, corporation, etc.)?", Type: models.QuestionTypeMultipleChoice, Options: yesNo(10)},
				{ID: "q2b", Text: "How well does your current entity type fit where the business is today?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Reviewed with a professional in the last year", Weight: 15},
					{Label: "It fit when we set it up; not revisited since", Weight: 8},
					{Label: "We picked it without advice", Weight: 3},
					{Label: "Not sure what entity type we have", Weight: 0},
				}},
				{ID: "q2c", Text: "Are ownership stakes and decision rights documented and signed by all owners?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, in a current operating/shareholder agreement", Weight: 15},
					{Label: "Partially, some of it is informal", Weight: 7},
					{Label: "No, nothing is in writing", Weight: 0},
					{Label: "Sole owner, not applicable", Weight: 12},
				}},
			},
		},
		{
			Number: 3, Name: "Team & Governance",
			Questions: []models.Question{
				{ID: "q3a", Text: "Does every critical business function have a clearly accountable owner?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, documented and current", Weight: 10},
					{Label: "Mostly, with some gray areas", Weight: 5},
					{Label: "No, things get picked up ad hoc", Weight: 0},
				}},
				{ID: "q3b", Text: "How would the business run if you were unreachable for two weeks?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Normally, the team covers everything", Weight: 10},
					{Label: "Core work continues, decisions stall", Weight: 5},
					{Label: "It would effectively pause", Weight: 0},
				}},
				{ID: "q3c", Text: "Which of these do you use? (select all that apply)", Type: models.QuestionTypeMultipleSelect, Options: []models.Option{
					{Label: "Regular leadership meetings with an agenda", Weight: 4},
					{Label: "Written job descriptions", Weight: 3},
					{Label: "An outside advisor or advisory board", Weight: 3},
				}},
			},
		},
		{
			Number: 4, Name: "Revenue & Profitability",
			Questions: []models.Question{
				{ID: "q4a", Text: "How has revenue trended over the last twelve months?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Growing steadily", Weight: 15},
					{Label: "Flat", Weight: 8},
					{Label: "Declining", Weight: 2},
					{Label: "Too new or too variable to say", Weight: 4},
				}},
				{ID: "q4b", Text: "Do you know your gross margin on each major product or service?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, tracked and reviewed regularly", Weight: 13},
					{Label: "Roughly, from occasional checks", Weight: 6},
					{Label: "No", Weight: 0},
				}},
				{ID: "q4c", Text: "How concentrated is your revenue?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "No customer is more than 20% of revenue", Weight: 10},
					{Label: "One customer is 20-50% of revenue", Weight: 5},
					{Label: "One customer is over half of revenue", Weight: 0},
				}},
			},
		},
		{
			Number: 5, Name: "Financial Controls & Reporting",
			Questions: []models.Question{
				{ID: "q5a", Text: "How current are your books?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Closed monthly within two weeks", Weight: 15},
					{Label: "Updated quarterly", Weight: 8},
					{Label: "Caught up at tax time", Weight: 2},
					{Label: "Not maintained", Weight: 0},
				}},
				{ID: "q5b", Text: "Do you maintain a cash flow forecast?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, reviewed at least monthly", Weight: 10},
					{Label: "Yes, but rarely updated", Weight: 4},
					{Label: "No", Weight: 0},
				}},
				{ID: "q5c", Text: "Which of these controls are in place? (select all that apply)", Type: models.QuestionTypeMultipleSelect, Options: []models.Option{
					{Label: "Separate business bank account", Weight: 4},
					{Label: "Documented approval process for spending", Weight: 3},
					{Label: "A budget compared against actuals", Weight: 3},
				}},
				{ID: "q5d", Text: "What is your biggest financial worry right now?", Type: models.QuestionTypeText},
			},
		},
		{
			Number: 6, Name: "Marketing Strategy",
			Questions: []models.Question{
				{ID: "q6a", Text: "Can you describe your ideal customer specifically enough that a stranger could spot one?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, we have a written profile", Weight: 10},
					{Label: "Roughly, it lives in my head", Weight: 5},
					{Label: "We sell to whoever shows up", Weight: 0},
				}},
				{ID: "q6b", Text: "Which marketing activities do you run consistently? (select all that apply)", Type: models.QuestionTypeMultipleSelect, Options: []models.Option{
					{Label: "Content or social media on a schedule", Weight: 5},
					{Label: "Email list with regular sends", Weight: 5},
					{Label: "Paid advertising with tracked results", Weight: 5},
					{Label: "Referral or partnership program", Weight: 5},
				}},
			},
		},
		{
			Number: 7, Name: "Sales Process",
			Questions: []models.Question{
				{ID: "q7a", Text: "Do you have a defined, repeatable sales process?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, documented stages we follow every time", Weight: 10},
					{Label: "An informal routine", Weight: 5},
					{Label: "Every sale is improvised", Weight: 0},
				}},
				{ID: "q7b", Text: "Do you track your pipeline and conversion rates?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, in a CRM or tracker reviewed weekly", Weight: 10},
					{Label: "Loosely, in notes or memory", Weight: 4},
					{Label: "No", Weight: 0},
				}},
				{ID: "q7c", Text: "How do you follow up with leads that don't buy right away?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Scheduled follow-up sequence", Weight: 8},
					{Label: "Occasional manual follow-up", Weight: 4},
					{Label: "We don't follow up", Weight: 0},
				}},
			},
		},
		{
			Number: 8, Name: "Brand & Market Position",
			Questions: []models.Question{
				{ID: "q8a", Text: "How consistent is your brand across your website, materials, and customer touchpoints?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Fully consistent, by design", Weight: 10},
					{Label: "Mostly consistent", Weight: 6},
					{Label: "Inconsistent or outdated", Weight: 0},
				}},
				{ID: "q8b", Text: "Do you know why your last ten customers chose you over alternatives?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, we ask and record it", Weight: 10},
					{Label: "I have a good guess", Weight: 5},
					{Label: "No idea", Weight: 0},
				}},
				{ID: "q8c", Text: "Which of these brand assets do you actively maintain? (select all that apply)", Type: models.QuestionTypeMultipleSelect, Options: []models.Option{
					{Label: "A website updated in the last six months", Weight: 4},
					{Label: "Claimed and monitored review profiles", Weight: 3},
					{Label: "Customer testimonials or case studies", Weight: 3},
				}},
			},
		},
		{
			Number: 9, Name: "Product & Service Quality",
			Questions: []models.Question{
				{ID: "q9a", Text: "How consistent is the quality of what you deliver?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Consistent, backed by checklists or QA", Weight: 12},
					{Label: "Usually fine, depends on who does the work", Weight: 6},
					{Label: "Noticeably variable", Weight: 0},
				}},
				{ID: "q9b", Text: "When something goes wrong with a delivery, what happens?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "We fix it, then fix the process behind it", Weight: 10},
					{Label: "We fix it and move on", Weight: 5},
					{Label: "Problems often go unaddressed", Weight: 0},
				}},
			},
		},
		{
			Number: 10, Name: "Customer Feedback & Retention",
			Questions: []models.Question{
				{ID: "q10a", Text: "How do you collect customer feedback?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Systematically, after every engagement", Weight: 10},
					{Label: "Occasionally, when we remember", Weight: 5},
					{Label: "Only when customers complain", Weight: 0},
				}},
				{ID: "q10b", Text: "Do you know what share of your business comes from repeat customers?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, we track it", Weight: 7},
					{Label: "Roughly", Weight: 3},
					{Label: "No", Weight: 0},
				}},
			},
		},
		{
			Number: 11, Name: "Operations & Process",
			Questions: []models.Question{
				{ID: "q11a", Text: "Are your core processes documented well enough for someone new to follow?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, and we keep them current", Weight: 10},
					{Label: "Some are written down", Weight: 5},
					{Label: "Everything is tribal knowledge", Weight: 0},
				}},
				{ID: "q11b", Text: "How often do deadlines or deliverables slip because of internal disorganization?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Rarely", Weight: 10},
					{Label: "Sometimes", Weight: 5},
					{Label: "Constantly", Weight: 0},
				}},
				{ID: "q11c", Text: "Do you use any systems (software or otherwise) to manage recurring work?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, the team works from shared systems", Weight: 10},
					{Label: "Partially, mixed with email and memory", Weight: 5},
					{Label: "No", Weight: 0},
				}},
			},
		},
		{
			Number: 12, Name: "Pricing & Value Delivery",
			Questions: []models.Question{
				{ID: "q12a", Text: "How did you arrive at your current prices?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "From cost, margin, and market analysis, revisited yearly", Weight: 15},
					{Label: "Matched competitors", Weight: 7},
					{Label: "Guessed and never revisited", Weight: 2},
				}},
				{ID: "q12b", Text: "When did you last raise prices?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Within the last two years, deliberately", Weight: 10},
					{Label: "More than two years ago", Weight: 4},
					{Label: "Never", Weight: 0},
				}},
			},
		},
		{
			Number: 13, Name: "Vision & Strategic Planning",
			Questions: []models.Question{
				{ID: "q13a", Text: "Do you have a written plan for the next 12 months?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, with goals we review on a schedule", Weight: 16},
					{Label: "Yes, but we rarely look at it", Weight: 8},
					{Label: "It exists only in my head", Weight: 4},
					{Label: "No plan", Weight: 0},
				}},
				{ID: "q13b", Text: "Do you know what the business needs to look like in three years for you to call it a success?", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
					{Label: "Yes, specifically", Weight: 10},
					{Label: "Vaguely", Weight: 5},
					{Label: "I haven't thought that far ahead", Weight: 0},
				}},
				{ID: "q13c", Text: "What is the single biggest obstacle between you and that three-year picture?", Type: models.QuestionTypeText},
			},
		},
	}
}
