package models

import "time"

// UserRole enumerates staff account roles.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleDoctor     UserRole = "doctor"
	RoleSecretary  UserRole = "secretary"
)

// User defines a staff account. Accounts exist so appointments and
// documents can record who created them; login and session handling
// live outside this service.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"size:20;not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
