package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines the interface for interacting with user
// feedback entries.
type FeedbackRepository interface {
	CreateFeedback(feedback *models.Feedback) (*models.Feedback, error)
	ListFeedback() ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// CreateFeedback stores a new feedback entry.
func (r *feedbackRepository) CreateFeedback(feedback *models.Feedback) (*models.Feedback, error) {
	if feedback == nil {
		log.Printf("ERROR: [FeedbackRepository] CreateFeedback: feedback cannot be nil")
		return nil, errors.New("feedback cannot be nil")
	}
	if err := r.db.Create(feedback).Error; err != nil {
		log.Printf("ERROR: [FeedbackRepository] Failed to create feedback for userID %s: %v", feedback.UserID, err)
		return nil, fmt.Errorf("failed to create feedback for userID %s: %w", feedback.UserID, err)
	}
	log.Printf("INFO: [FeedbackRepository] Created feedback ID %d for userID %s.", feedback.ID, feedback.UserID)
	return feedback, nil
}

// ListFeedback retrieves all feedback entries, newest first.
func (r *feedbackRepository) ListFeedback() ([]models.Feedback, error) {
	var entries []models.Feedback
	if err := r.db.Order("created_at desc").Find(&entries).Error; err != nil {
		log.Printf("ERROR: [FeedbackRepository] Failed to list feedback: %v", err)
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}
