package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"gorm.io/gorm"
)

// BugReportRepository defines the interface for interacting with bug
// reports.
type BugReportRepository interface {
	CreateBugReport(report *models.BugReport) (*models.BugReport, error)
	GetBugReportByID(id uint) (*models.BugReport, error)
	ListBugReports(statusFilter ...models.BugReportStatus) ([]models.BugReport, error)
	UpdateBugReportStatus(id uint, status models.BugReportStatus) (*models.BugReport, error)
}

type bugReportRepository struct {
	db *gorm.DB
}

// NewBugReportRepository creates a new instance of BugReportRepository.
func NewBugReportRepository(db *gorm.DB) BugReportRepository {
	return &bugReportRepository{db: db}
}

// CreateBugReport stores a new bug report, defaulting its status to open.
func (r *bugReportRepository) CreateBugReport(report *models.BugReport) (*models.BugReport, error) {
	if report == nil {
		log.Printf("ERROR: [BugReportRepository] CreateBugReport: report cannot be nil")
		return nil, errors.New("bug report cannot be nil")
	}
	if report.Status == "" {
		report.Status = models.BugStatusOpen
	}
	if err := r.db.Create(report).Error; err != nil {
		log.Printf("ERROR: [BugReportRepository] Failed to create bug report for userID %s: %v", report.UserID, err)
		return nil, fmt.Errorf("failed to create bug report for userID %s: %w", report.UserID, err)
	}
	log.Printf("INFO: [BugReportRepository] Created bug report ID %d for userID %s.", report.ID, report.UserID)
	return report, nil
}

// GetBugReportByID retrieves a bug report by ID, or (nil, nil) if not found.
func (r *bugReportRepository) GetBugReportByID(id uint) (*models.BugReport, error) {
	var report models.BugReport
	err := r.db.First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [BugReportRepository] Bug report %d not found.", id)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [BugReportRepository] Failed to retrieve bug report %d: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve bug report %d: %w", id, err)
	}
	return &report, nil
}

// ListBugReports retrieves bug reports, optionally filtered by status,
// newest first.
func (r *bugReportRepository) ListBugReports(statusFilter ...models.BugReportStatus) ([]models.BugReport, error) {
	var reports []models.BugReport
	query := r.db.Order("created_at desc")
	if len(statusFilter) > 0 && statusFilter[0] != "" {
		query = query.Where("status = ?", statusFilter[0])
	}
	if err := query.Find(&reports).Error; err != nil {
		log.Printf("ERROR: [BugReportRepository] Failed to list bug reports: %v", err)
		return nil, fmt.Errorf("failed to list bug reports: %w", err)
	}
	return reports, nil
}

// UpdateBugReportStatus transitions a bug report to the given status.
func (r *bugReportRepository) UpdateBugReportStatus(id uint, status models.BugReportStatus) (*models.BugReport, error) {
	report, err := r.GetBugReportByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("update failed: bug report %d not found", id)
	}
	report.Status = status
	if err := r.db.Save(report).Error; err != nil {
		log.Printf("ERROR: [BugReportRepository] Failed to update status of bug report %d: %v", id, err)
		return nil, fmt.Errorf("failed to update status of bug report %d: %w", id, err)
	}
	log.Printf("INFO: [BugReportRepository] Bug report %d is now %s.", id, status)
	return report, nil
}
