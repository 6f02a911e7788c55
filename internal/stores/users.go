package stores

import (
	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"
	"clinic-server/internal/utils"

	"gorm.io/gorm"
)

// UserStore owns staff accounts. Only creation is exposed; sessions
// and login are out of scope for this service.
type UserStore struct {
	*gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// Create registers a staff account with a bcrypt-hashed password. A
// duplicate email is a UniquenessViolation.
func (s *UserStore) Create(email, password, firstName, lastName string, role models.UserRole) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, apperrors.FromDB("user", err)
	}
	return &user, nil
}
