package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackRepository is a mock implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) CreateFeedback(feedback *models.Feedback) (*models.Feedback, error) {
	args := m.Called(feedback)
	var created *models.Feedback
	if args.Get(0) != nil {
		created = args.Get(0).(*models.Feedback)
	}
	return created, args.Error(1)
}

func (m *MockFeedbackRepository) ListFeedback() ([]models.Feedback, error) {
	args := m.Called()
	var entries []models.Feedback
	if args.Get(0) != nil {
		entries = args.Get(0).([]models.Feedback)
	}
	return entries, args.Error(1)
}

func feedbackRouter(repo *MockFeedbackRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAPIHandler(nil, repo, nil, nil, nil, nil, nil)
	router := gin.New()
	router.POST("/api/feedback", handler.SubmitFeedbackHandler)
	return router
}

func TestSubmitFeedbackHandler(t *testing.T) {
	t.Run("Rated feedback is stored", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepository)
		mockRepo.On("CreateFeedback", mock.MatchedBy(func(f *models.Feedback) bool {
			return f.UserID == "user-1" && f.Rating == 4
		})).Return(&models.Feedback{ID: 1, UserID: "user-1", Rating: 4}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/feedback",
			strings.NewReader(`{"user_id":"user-1","rating":4,"comment":"Great tool."}`))
		feedbackRouter(mockRepo).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Zero rating means skipped and is accepted", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepository)
		mockRepo.On("CreateFeedback", mock.MatchedBy(func(f *models.Feedback) bool {
			return f.Rating == 0
		})).Return(&models.Feedback{ID: 2, UserID: "user-1"}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/feedback",
			strings.NewReader(`{"user_id":"user-1","comment":"No rating from me."}`))
		feedbackRouter(mockRepo).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Out-of-range rating is rejected with the accepted range", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepository)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/feedback",
			strings.NewReader(`{"user_id":"user-1","rating":6}`))
		feedbackRouter(mockRepo).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "between 1 and 5, or 0 when skipped")
		mockRepo.AssertNotCalled(t, "CreateFeedback", mock.Anything)
	})
}
