package scoring

import (
	"testing"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveAnswer(t *testing.T) {
	multipleChoice := models.Question{
		ID:   "q2a",
		Text: "Is your business registered as a formal legal entity?",
		Type: models.QuestionTypeMultipleChoice,
		Options: []models.Option{
			{Label: "Yes", Weight: 10},
			{Label: "No", Weight: 0},
		},
	}
	multipleSelect := models.Question{
		ID:   "qms",
		Type: models.QuestionTypeMultipleSelect,
		Options: []models.Option{
			{Label: "A", Weight: 5},
			{Label: "B", Weight: 3},
			{Label: "C", Weight: 0},
		},
	}

	t.Run("Multiple choice resolves the matched option's weight", func(t *testing.T) {
		resolved := ResolveAnswer(multipleChoice, []string{"Yes"})
		assert.Len(t, resolved, 1)
		assert.Equal(t, "Yes", resolved[0].Answer)
		assert.Equal(t, float64(10), resolved[0].Weight)
	})

	t.Run("Unmatched label contributes zero without failing", func(t *testing.T) {
		resolved := ResolveAnswer(multipleChoice, []string{"Maybe"})
		assert.Len(t, resolved, 1)
		assert.Equal(t, "Maybe", resolved[0].Answer)
		assert.Equal(t, float64(0), resolved[0].Weight)
	})

	t.Run("Multiple select preserves selection order and slots", func(t *testing.T) {
		resolved := ResolveAnswer(multipleSelect, []string{"A", "C"})
		assert.Len(t, resolved, 2)
		assert.Equal(t, "A", resolved[0].Answer)
		assert.Equal(t, float64(5), resolved[0].Weight)
		assert.Equal(t, "C", resolved[1].Answer)
		assert.Equal(t, float64(0), resolved[1].Weight)
		assert.Equal(t, float64(5), AnswerSetScore(models.AnswerSet{"qms": resolved}))
	})

	t.Run("Multiple select keeps a zero-weight slot for unmatched values", func(t *testing.T) {
		resolved := ResolveAnswer(multipleSelect, []string{"A", "Z", "B"})
		assert.Len(t, resolved, 3)
		assert.Equal(t, float64(0), resolved[1].Weight)
		assert.Equal(t, float64(8), AnswerSetScore(models.AnswerSet{"qms": resolved}))
	})

	t.Run("Duplicate labels resolve to the first occurrence", func(t *testing.T) {
		dup := models.Question{
			ID:   "qdup",
			Type: models.QuestionTypeMultipleChoice,
			Options: []models.Option{
				{Label: "Same", Weight: 7},
				{Label: "Same", Weight: 2},
			},
		}
		resolved := ResolveAnswer(dup, []string{"Same"})
		assert.Equal(t, float64(7), resolved[0].Weight)
	})

	t.Run("Text answers keep the raw value with zero weight", func(t *testing.T) {
		text := models.Question{ID: "qt", Type: models.QuestionTypeText}
		resolved := ResolveAnswer(text, []string{"Cash flow in the slow season."})
		assert.Len(t, resolved, 1)
		assert.Equal(t, "Cash flow in the slow season.", resolved[0].Answer)
		assert.Equal(t, float64(0), resolved[0].Weight)
	})

	t.Run("No selection resolves to no records", func(t *testing.T) {
		assert.Empty(t, ResolveAnswer(multipleChoice, nil))
		assert.Empty(t, ResolveAnswer(multipleChoice, []string{}))
	})
}

func TestResolveSection(t *testing.T) {
	questions := []models.Question{
		{ID: "q2a", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
			{Label: "Yes", Weight: 10},
			{Label: "No", Weight: 0},
		}},
		{ID: "q2b", Type: models.QuestionTypeMultipleChoice, Options: []models.Option{
			{Label: "High", Weight: 15},
			{Label: "Low", Weight: 3},
		}},
	}

	t.Run("Section score is the sum of all resolved weights", func(t *testing.T) {
		answers, score := ResolveSection(questions, map[string][]string{
			"q2a": {"Yes"},
			"q2b": {"Low"},
		})
		assert.Len(t, answers, 2)
		assert.Equal(t, float64(13), score)
	})

	t.Run("Unknown question IDs are ignored", func(t *testing.T) {
		answers, score := ResolveSection(questions, map[string][]string{
			"q2a":     {"Yes"},
			"qBogus":  {"Yes"},
			"qBogus2": {"Anything"},
		})
		assert.Len(t, answers, 1)
		assert.Equal(t, float64(10), score)
	})

	t.Run("Unanswered questions are simply absent", func(t *testing.T) {
		answers, score := ResolveSection(questions, map[string][]string{"q2b": {"High"}})
		assert.Len(t, answers, 1)
		_, hasQ2a := answers["q2a"]
		assert.False(t, hasQ2a)
		assert.Equal(t, float64(15), score)
	})
}
