package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/Akr1040317/MarketAtomyTailkit-sub000/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers(includeSeeded bool) ([]models.User, error)
	CountUsers(includeSeeded bool) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser creates a new user record.
func (r *userRepository) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		log.Printf("ERROR: [UserRepository] CreateUser: user cannot be nil")
		return nil, errors.New("user cannot be nil")
	}
	if user.ID == "" {
		log.Printf("ERROR: [UserRepository] CreateUser: user ID cannot be empty")
		return nil, errors.New("user ID cannot be empty")
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if err := r.db.Create(user).Error; err != nil {
		log.Printf("ERROR: [UserRepository] Failed to create user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}
	log.Printf("INFO: [UserRepository] Created user %s (role %s).", user.ID, user.Role)
	return user, nil
}

// GetUserByID retrieves a user by ID, or (nil, nil) if not found.
func (r *userRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("INFO: [UserRepository] User %s not found.", id)
			return nil, nil // Not found
		}
		log.Printf("ERROR: [UserRepository] Failed to retrieve user %s: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve user %s: %w", id, err)
	}
	return &user, nil
}

// ListUsers retrieves all users, optionally including seeded demo users.
func (r *userRepository) ListUsers(includeSeeded bool) ([]models.User, error) {
	var users []models.User
	query := r.db.Order("created_at asc")
	if !includeSeeded {
		query = query.Where("is_seeded = ?", false)
	}
	if err := query.Find(&users).Error; err != nil {
		log.Printf("ERROR: [UserRepository] Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CountUsers counts users, optionally including seeded demo users.
func (r *userRepository) CountUsers(includeSeeded bool) (int64, error) {
	var count int64
	query := r.db.Model(&models.User{})
	if !includeSeeded {
		query = query.Where("is_seeded = ?", false)
	}
	if err := query.Count(&count).Error; err != nil {
		log.Printf("ERROR: [UserRepository] Failed to count users: %v", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
