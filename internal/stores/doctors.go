package stores

import (
	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DoctorStore owns the doctor registry.
type DoctorStore struct {
	*gorm.DB
}

func NewDoctorStore(db *gorm.DB) *DoctorStore {
	return &DoctorStore{DB: db}
}

// Create registers a doctor. The user and specialty references are
// database-enforced; a duplicate license number is a
// UniquenessViolation.
func (s *DoctorStore) Create(d *models.Doctor) error {
	if err := s.Omit(clause.Associations).Create(d).Error; err != nil {
		return apperrors.FromDB("doctor", err)
	}
	return nil
}

// Get returns one doctor by id.
func (s *DoctorStore) Get(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := s.First(&doctor, id).Error; err != nil {
		return nil, apperrors.FromDB("doctor", err)
	}
	return &doctor, nil
}

// ListAvailable returns doctors currently accepting appointments,
// joined against their account and specialty so orphaned rows never
// appear.
func (s *DoctorStore) ListAvailable() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.Model(&models.Doctor{}).
		Joins("JOIN users ON users.id = doctors.user_id").
		Joins("JOIN specialties ON specialties.id = doctors.specialty_id").
		Where("doctors.is_available = ?", true).
		Find(&doctors).Error
	if err != nil {
		return nil, apperrors.FromDB("doctor", err)
	}
	return doctors, nil
}
