package api

import (
	"net/http"
	"strconv"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/repository"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/services"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/utils"

	"github.com/gin-gonic/gin"
)

// APIHandler holds all dependencies for API handlers, such as repositories and services.
type APIHandler struct {
	userRepo          repository.UserRepository
	feedbackRepo      repository.FeedbackRepository
	bugReportRepo     repository.BugReportRepository
	assessmentService services.AssessmentService
	reportService     services.ReportService
	analyticsService  services.AnalyticsService
	seedService       services.SeedService
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	userRepo repository.UserRepository,
	feedbackRepo repository.FeedbackRepository,
	bugReportRepo repository.BugReportRepository,
	assessmentService services.AssessmentService,
	reportService services.ReportService,
	analyticsService services.AnalyticsService,
	seedService services.SeedService,
) *APIHandler {
	return &APIHandler{
		userRepo:          userRepo,
		feedbackRepo:      feedbackRepo,
		bugReportRepo:     bugReportRepo,
		assessmentService: assessmentService,
		reportService:     reportService,
		analyticsService:  analyticsService,
		seedService:       seedService,
	}
}

// RegisterUserRequest is the payload for creating a new user.
type RegisterUserRequest struct {
	Email        string `json:"email" binding:"required"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
}

// RegisterUserHandler creates a new user with a server-assigned ID.
func (h *APIHandler) RegisterUserHandler(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	user := &models.User{
		ID:           utils.GenerateID(),
		Email:        req.Email,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Role:         models.RoleUser,
	}
	created, err := h.userRepo.CreateUser(user)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not create user.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// GetSectionsHandler returns all assessment section definitions.
func (h *APIHandler) GetSectionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.assessmentService.GetSections()})
}

// GetSectionHandler returns one section definition by number.
func (h *APIHandler) GetSectionHandler(c *gin.Context) {
	sectionNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Section number must be an integer.", err)
		return
	}
	section := h.assessmentService.GetSection(sectionNumber)
	if section == nil {
		utils.SendJSONError(c, http.StatusNotFound, "Section not found.", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": section})
}

// SubmitSectionRequest is the payload for submitting (or resubmitting) a
// section's answers. Answers maps question IDs to the selected value(s);
// single-answer questions send a one-element list.
type SubmitSectionRequest struct {
	UserID  string              `json:"user_id" binding:"required"`
	Answers map[string][]string `json:"answers" binding:"required"`
}

// SubmitSectionHandler saves a user's answers for one section. Resubmitting
// replaces the previous result for that section.
func (h *APIHandler) SubmitSectionHandler(c *gin.Context) {
	sectionNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Section number must be an integer.", err)
		return
	}

	var req SubmitSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	result, err := h.assessmentService.SubmitSection(req.UserID, sectionNumber, req.Answers)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}

// GetResultsHandler returns all of a user's stored section results.
func (h *APIHandler) GetResultsHandler(c *gin.Context) {
	userID := c.Param("userID")
	results, err := h.assessmentService.GetResultsForUser(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not retrieve results.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": results})
}

// GetReportHandler returns the full business-health report for a user, or
// 404 when the user has no scoreable results yet.
func (h *APIHandler) GetReportHandler(c *gin.Context) {
	userID := c.Param("userID")
	report, err := h.reportService.GenerateReport(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not generate report.", err)
		return
	}
	if report == nil {
		utils.SendJSONError(c, http.StatusNotFound, "No assessment results to report on yet.", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// SubmitFeedbackRequest is the payload for leaving product feedback.
type SubmitFeedbackRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// SubmitFeedbackHandler stores a feedback entry.
func (h *APIHandler) SubmitFeedbackHandler(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		utils.SendJSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5, or 0 when skipped.", nil)
		return
	}

	feedback := &models.Feedback{
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	created, err := h.feedbackRepo.CreateFeedback(feedback)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not save feedback.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// SubmitBugReportRequest is the payload for filing a bug report.
type SubmitBugReportRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PageURL     string `json:"page_url"`
}

// SubmitBugReportHandler stores a new bug report in the open state.
func (h *APIHandler) SubmitBugReportHandler(c *gin.Context) {
	var req SubmitBugReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	report := &models.BugReport{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		PageURL:     req.PageURL,
		Status:      models.BugStatusOpen,
	}
	created, err := h.bugReportRepo.CreateBugReport(report)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not save bug report.", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}
