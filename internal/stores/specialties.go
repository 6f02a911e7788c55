package stores

import (
	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"gorm.io/gorm"
)

// SpecialtyStore owns the medical specialty catalog.
type SpecialtyStore struct {
	*gorm.DB
}

func NewSpecialtyStore(db *gorm.DB) *SpecialtyStore {
	return &SpecialtyStore{DB: db}
}

// Create adds a specialty. Names are unique.
func (s *SpecialtyStore) Create(name string, description *string) (*models.Specialty, error) {
	specialty := models.Specialty{
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if err := s.DB.Create(&specialty).Error; err != nil {
		return nil, apperrors.FromDB("specialty", err)
	}
	return &specialty, nil
}

// ListActive returns the active entries of the catalog.
func (s *SpecialtyStore) ListActive() ([]models.Specialty, error) {
	var specialties []models.Specialty
	if err := s.Where("is_active = ?", true).Find(&specialties).Error; err != nil {
		return nil, apperrors.FromDB("specialty", err)
	}
	return specialties, nil
}
