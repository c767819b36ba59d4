package api

import (
	"net/http"
	"strconv"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/config"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler returns the admin analytics dashboard.
func (h *APIHandler) DashboardHandler(c *gin.Context) {
	dashboard, err := h.analyticsService.GenerateDashboard()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not generate dashboard.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}

// ListUsersHandler returns all users. Seeded demo users are included only
// when ?include_seeded=true.
func (h *APIHandler) ListUsersHandler(c *gin.Context) {
	includeSeeded := c.Query("include_seeded") == "true"
	users, err := h.userRepo.ListUsers(includeSeeded)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not list users.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// ListFeedbackHandler returns all feedback entries, newest first.
func (h *APIHandler) ListFeedbackHandler(c *gin.Context) {
	entries, err := h.feedbackRepo.ListFeedback()
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not list feedback.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// ListBugReportsHandler returns bug reports, optionally filtered with
// ?status=open or ?status=resolved.
func (h *APIHandler) ListBugReportsHandler(c *gin.Context) {
	status := models.BugReportStatus(c.Query("status"))
	reports, err := h.bugReportRepo.ListBugReports(status)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not list bug reports.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}

// ResolveBugReportHandler marks a bug report resolved.
func (h *APIHandler) ResolveBugReportHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Bug report ID must be an integer.", err)
		return
	}
	report, err := h.bugReportRepo.UpdateBugReportStatus(uint(id), models.BugStatusResolved)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Could not update bug report.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// SeedRequest is the payload for generating demo data. A zero count uses
// the configured default.
type SeedRequest struct {
	Count int `json:"count"`
}

// SeedHandler generates randomized demo users and assessment results.
func (h *APIHandler) SeedHandler(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	count := req.Count
	if count <= 0 {
		count = config.AppConfig.Seed.DefaultUserCount
	}

	created, err := h.seedService.SeedRandomUsers(count)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Seeding failed.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"users_created": created}})
}
