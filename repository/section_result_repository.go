package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SectionResultRepository defines the interface for interacting with stored
// per-section assessment results.
type SectionResultRepository interface {
	UpsertSectionResult(result *models.SectionResult) (*models.SectionResult, error)
	GetResultByUserAndSection(userID string, sectionNumber int) (*models.SectionResult, error)
	GetResultsByUserID(userID string) ([]models.SectionResult, error)
	GetAllResults() ([]models.SectionResult, error)
	DeleteResultsByUserID(userID string) error
}

type sectionResultRepository struct {
	db *gorm.DB
}

// NewSectionResultRepository creates a new instance of SectionResultRepository.
func NewSectionResultRepository(db *gorm.DB) SectionResultRepository {
	return &sectionResultRepository{db: db}
}

// UpsertSectionResult creates the result for a (user, section) pair or
// replaces it in place. Answers and the cached section score are always
// written together; there is no partial update path. Uses GORM's OnConflict
// (UPSERT) against the unique (user_id, section_number) index.
func (r *sectionResultRepository) UpsertSectionResult(result *models.SectionResult) (*models.SectionResult, error) {
	if result == nil {
		log.Printf("ERROR: [SectionResultRepository] UpsertSectionResult: result cannot be nil")
		return nil, errors.New("result cannot be nil")
	}
	if result.UserID == "" {
		log.Printf("ERROR: [SectionResultRepository] UpsertSectionResult: UserID cannot be empty.")
		return nil, errors.New("user ID cannot be empty")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "section_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"section_name", "answers", "section_score", "updated_at"}),
	}).Create(result).Error
	if err != nil {
		log.Printf("ERROR: [SectionResultRepository] Failed to upsert result for userID %s, section %d: %v", result.UserID, result.SectionNumber, err)
		return nil, fmt.Errorf("failed to upsert section result for userID %s, section %d: %w", result.UserID, result.SectionNumber, err)
	}

	// Re-fetch so the caller sees the stored row (ID and timestamps) whether
	// the upsert inserted or updated.
	var stored models.SectionResult
	if fetchErr := r.db.First(&stored, "user_id = ? AND section_number = ?", result.UserID, result.SectionNumber).Error; fetchErr != nil {
		log.Printf("ERROR: [SectionResultRepository] Failed to fetch result for userID %s, section %d after upsert: %v", result.UserID, result.SectionNumber, fetchErr)
		return nil, fmt.Errorf("failed to fetch section result for userID %s, section %d after upsert: %w", result.UserID, result.SectionNumber, fetchErr)
	}

	log.Printf("INFO: [SectionResultRepository] Upserted result for userID %s, section %d (score %.1f).", stored.UserID, stored.SectionNumber, stored.SectionScore)
	return &stored, nil
}

// GetResultByUserAndSection retrieves one stored result, or (nil, nil) if the
// user has not submitted that section.
func (r *sectionResultRepository) GetResultByUserAndSection(userID string, sectionNumber int) (*models.SectionResult, error) {
	var result models.SectionResult
	err := r.db.First(&result, "user_id = ? AND section_number = ?", userID, sectionNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [SectionResultRepository] No result found for userID %s, section %d.", userID, sectionNumber)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [SectionResultRepository] Failed to retrieve result for userID %s, section %d: %v", userID, sectionNumber, err)
		return nil, fmt.Errorf("failed to retrieve section result for userID %s, section %d: %w", userID, sectionNumber, err)
	}
	return &result, nil
}

// GetResultsByUserID retrieves all of a user's section results in section
// order.
func (r *sectionResultRepository) GetResultsByUserID(userID string) ([]models.SectionResult, error) {
	var results []models.SectionResult
	err := r.db.Where("user_id = ?", userID).Order("section_number asc").Find(&results).Error
	if err != nil {
		log.Printf("ERROR: [SectionResultRepository] Failed to retrieve results for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve section results for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [SectionResultRepository] Retrieved %d results for userID %s.", len(results), userID)
	return results, nil
}

// GetAllResults retrieves every stored section result, for the admin
// analytics dashboard.
func (r *sectionResultRepository) GetAllResults() ([]models.SectionResult, error) {
	var results []models.SectionResult
	err := r.db.Order("user_id asc, section_number asc").Find(&results).Error
	if err != nil {
		log.Printf("ERROR: [SectionResultRepository] Failed to retrieve all results: %v", err)
		return nil, fmt.Errorf("failed to retrieve all section results: %w", err)
	}
	return results, nil
}

// DeleteResultsByUserID permanently removes all of a user's section results.
func (r *sectionResultRepository) DeleteResultsByUserID(userID string) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}
	err := r.db.Where("user_id = ?", userID).Delete(&models.SectionResult{}).Error
	if err != nil {
		log.Printf("ERROR: [SectionResultRepository] Failed to delete results for userID %s: %v", userID, err)
		return fmt.Errorf("failed to delete section results for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [SectionResultRepository] Deleted results for userID %s.", userID)
	return nil
}
