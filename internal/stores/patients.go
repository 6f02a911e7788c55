package stores

import (
	"time"

	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"gorm.io/gorm"
)

// PatientStore owns patient demographic records.
type PatientStore struct {
	*gorm.DB
}

func NewPatientStore(db *gorm.DB) *PatientStore {
	return &PatientStore{DB: db}
}

// Create inserts a new patient record.
func (s *PatientStore) Create(p *models.Patient) error {
	if err := s.DB.Create(p).Error; err != nil {
		return apperrors.FromDB("patient", err)
	}
	return nil
}

// Get returns one patient by id.
func (s *PatientStore) Get(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.First(&patient, id).Error; err != nil {
		return nil, apperrors.FromDB("patient", err)
	}
	return &patient, nil
}

// List returns all patients.
func (s *PatientStore) List() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.Find(&patients).Error; err != nil {
		return nil, apperrors.FromDB("patient", err)
	}
	return patients, nil
}

// PatientPatch is a partial update. Required demographic fields can
// only be replaced, never cleared; the nullable contact and history
// fields follow the three-way absent/null/value contract.
type PatientPatch struct {
	FirstName             *string
	LastName              *string
	DateOfBirth           *models.Date
	Gender                *models.Gender
	Phone                 models.OptString
	Email                 models.OptString
	Address               models.OptString
	EmergencyContactName  models.OptString
	EmergencyContactPhone models.OptString
	MedicalHistory        models.OptString
	Allergies             models.OptString
	CurrentMedications    models.OptString
	InsuranceInfo         models.OptString
}

// Update applies the patch to an existing patient.
func (s *PatientStore) Update(id uint, patch PatientPatch) (*models.Patient, error) {
	var patient models.Patient
	if err := s.First(&patient, id).Error; err != nil {
		return nil, apperrors.FromDB("patient", err)
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		updates["date_of_birth"] = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		updates["gender"] = *patch.Gender
	}
	applyOptString(updates, "phone", patch.Phone)
	applyOptString(updates, "email", patch.Email)
	applyOptString(updates, "address", patch.Address)
	applyOptString(updates, "emergency_contact_name", patch.EmergencyContactName)
	applyOptString(updates, "emergency_contact_phone", patch.EmergencyContactPhone)
	applyOptString(updates, "medical_history", patch.MedicalHistory)
	applyOptString(updates, "allergies", patch.Allergies)
	applyOptString(updates, "current_medications", patch.CurrentMedications)
	applyOptString(updates, "insurance_info", patch.InsuranceInfo)

	if err := s.Model(&models.Patient{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.FromDB("patient", err)
	}
	if err := s.First(&patient, id).Error; err != nil {
		return nil, apperrors.FromDB("patient", err)
	}
	return &patient, nil
}

// Search finds patients whose name, phone or email contains the term,
// case-insensitively, capped at limit rows.
func (s *PatientStore) Search(term string, limit int) ([]models.Patient, error) {
	pattern := "%" + term + "%"
	var patients []models.Patient
	err := s.Where(
		"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(phone) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
		pattern, pattern, pattern, pattern,
	).Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, apperrors.FromDB("patient", err)
	}
	return patients, nil
}
