package models

import "time"

// UserRole distinguishes regular assessment takers from dashboard admins.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is an assessment taker. IDs are UUID strings assigned by the server
// (or by the seeder for synthetic users).
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"index"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Role         UserRole  `json:"role"`
	IsSeeded     bool      `json:"is_seeded"` // True for synthetic users created by the seeder
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
