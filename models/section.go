package models

import (
	"time"
)

// QuestionType defines the type of an assessment question.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multipleChoice" // Radio buttons, one answer
	QuestionTypeMultipleSelect QuestionType = "multipleSelect" // Checkboxes, zero or more answers
	QuestionTypeText           QuestionType = "text"           // Free text input, never weighted
	QuestionTypeOther          QuestionType = "other"          // Catch-all, treated like text
)

// Option is one selectable answer for a choice-based question. Weight may be
// zero or negative; the system never validates sign. Labels are not
// guaranteed unique within a question and duplicates must be tolerated.
type Option struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// Question defines a single question in an assessment section.
// Options is empty for text/other questions.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []Option     `json:"options,omitempty"`
}

// AssessmentSection is a named group of questions presented together.
// Section definitions are hardcoded in AssessmentService and are not stored
// in the database; only results are.
type AssessmentSection struct {
	Number    int        `json:"number"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Answer is a frozen snapshot of a selected answer and the weight it carried
// at submission time. Weights are copied from the chosen option, never
// recomputed on read.
type Answer struct {
	Answer string  `json:"answer"`
	Weight float64 `json:"weight"`
}

// AnswerSet maps a question ID to its answer records. Single-answer question
// types store one record; multipleSelect stores one record per selected
// option, in selection order.
type AnswerSet map[string][]Answer

// SectionResult stores one user's answers for one section together with the
// cached section score (the sum of all answer weights). A save always
// replaces the full answer set and the score together; there are no partial
// updates. The unique index makes resubmission an overwrite-in-place.
type SectionResult struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index;uniqueIndex:idx_user_section"`
	SectionNumber int       `json:"section_number" gorm:"uniqueIndex:idx_user_section"`
	SectionName   string    `json:"section_name"`
	Answers       AnswerSet `json:"answers" gorm:"serializer:json"`
	SectionScore  float64   `json:"section_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
