package services

import (
	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"github.com/stretchr/testify/mock"
)

// MockSectionResultRepository is a mock implementation of SectionResultRepository.
type MockSectionResultRepository struct {
	mock.Mock
}

func (m *MockSectionResultRepository) UpsertSectionResult(result *models.SectionResult) (*models.SectionResult, error) {
	args := m.Called(result)
	var stored *models.SectionResult
	if args.Get(0) != nil {
		stored = args.Get(0).(*models.SectionResult)
	}
	return stored, args.Error(1)
}

func (m *MockSectionResultRepository) GetResultByUserAndSection(userID string, sectionNumber int) (*models.SectionResult, error) {
	args := m.Called(userID, sectionNumber)
	var result *models.SectionResult
	if args.Get(0) != nil {
		result = args.Get(0).(*models.SectionResult)
	}
	return result, args.Error(1)
}

func (m *MockSectionResultRepository) GetResultsByUserID(userID string) ([]models.SectionResult, error) {
	args := m.Called(userID)
	var results []models.SectionResult
	if args.Get(0) != nil {
		results = args.Get(0).([]models.SectionResult)
	}
	return results, args.Error(1)
}

func (m *MockSectionResultRepository) GetAllResults() ([]models.SectionResult, error) {
	args := m.Called()
	var results []models.SectionResult
	if args.Get(0) != nil {
		results = args.Get(0).([]models.SectionResult)
	}
	return results, args.Error(1)
}

func (m *MockSectionResultRepository) DeleteResultsByUserID(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	var created *models.User
	if args.Get(0) != nil {
		created = args.Get(0).(*models.User)
	}
	return created, args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(includeSeeded bool) ([]models.User, error) {
	args := m.Called(includeSeeded)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(includeSeeded bool) (int64, error) {
	args := m.Called(includeSeeded)
	return args.Get(0).(int64), args.Error(1)
}
