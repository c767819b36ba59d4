package scoring

import (
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
)

// ResolveAnswer turns the values a user selected for one question into
// frozen answer records carrying the weight of each matched option.
//
// This is the single weight-resolution path for the whole system: the
// submission flow, the edit flow and the demo-data seeder all call it, so
// the three can never disagree on how a raw answer becomes a score.
//
// Behavior by question type:
//   - multipleChoice: one record for the first selected value; the weight is
//     taken from the option whose label matches, or 0 when nothing matches.
//   - multipleSelect: one record per selected value, in selection order; an
//     unmatched value contributes 0 but keeps its slot in the output.
//   - text/other: one record with the raw text and weight 0.
//
// A question with no selected values resolves to no records. Unmatched
// labels never abort resolution; scoring degrades to zero instead of
// failing the rest of the section.
func ResolveAnswer(question models.Question, selected []string) []models.Answer {
	if len(selected) == 0 {
		return nil
	}

	switch question.Type {
	case models.QuestionTypeMultipleSelect:
		answers := make([]models.Answer, 0, len(selected))
		for _, value := range selected {
			answers = append(answers, models.Answer{
				Answer: value,
				Weight: optionWeight(question.Options, value),
			})
		}
		return answers
	case models.QuestionTypeMultipleChoice:
		value := selected[0]
		return []models.Answer{{
			Answer: value,
			Weight: optionWeight(question.Options, value),
		}}
	default:
		// text/other answers are stored verbatim and never weighted.
		return []models.Answer{{
			Answer: selected[0],
			Weight: 0,
		}}
	}
}

// optionWeight returns the weight of the first option whose label matches
// value, or 0 when no option matches. Duplicate labels resolve to the first
// occurrence.
func optionWeight(options []models.Option, value string) float64 {
	for _, opt := range options {
		if opt.Label == value {
			return opt.Weight
		}
	}
	return 0
}

// AnswerSetScore sums every weight across all answers in a set. This is the
// derived section score that gets cached on the stored SectionResult.
func AnswerSetScore(answers models.AnswerSet) float64 {
	var total float64
	for _, records := range answers {
		for _, record := range records {
			total += record.Weight
		}
	}
	return total
}

// ResolveSection resolves a full set of selections against a section's
// question definitions, returning the answer set and its score together.
// Selections for unknown question IDs are ignored; questions the user did
// not answer are simply absent from the result.
func ResolveSection(questions []models.Question, selections map[string][]string) (models.AnswerSet, float64) {
	answers := make(models.AnswerSet)
	for _, question := range questions {
		selected, ok := selections[question.ID]
		if !ok {
			continue
		}
		resolved := ResolveAnswer(question, selected)
		if len(resolved) == 0 {
			continue
		}
		answers[question.ID] = resolved
	}
	return answers, AnswerSetScore(answers)
}
