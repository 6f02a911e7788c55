package stores

import (
	"errors"
	"time"

	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConsultationStore owns the one-to-one encounter record attached to
// an appointment.
type ConsultationStore struct {
	*gorm.DB
}

func NewConsultationStore(db *gorm.DB) *ConsultationStore {
	return &ConsultationStore{DB: db}
}

// NewConsultation carries the fields for creating an encounter record.
// Every clinical field may be nil.
type NewConsultation struct {
	AppointmentID  uint
	ChiefComplaint *string
	Symptoms       *string
	Diagnosis      *string
	TreatmentPlan  *string
	Prescription   *string
	FollowUpNotes  *string
	FollowUpDate   *models.Date
}

// Create inserts the consultation. Unlike appointment creation there
// is no existence pre-check on the appointment: a dangling reference
// surfaces as a ForeignKeyViolation straight from storage, and a
// second consultation for the same appointment as a
// UniquenessViolation. The appointment's status is deliberately not
// inspected here.
func (s *ConsultationStore) Create(in NewConsultation) (*models.Consultation, error) {
	cons := models.Consultation{
		AppointmentID:  in.AppointmentID,
		ChiefComplaint: in.ChiefComplaint,
		Symptoms:       in.Symptoms,
		Diagnosis:      in.Diagnosis,
		TreatmentPlan:  in.TreatmentPlan,
		Prescription:   in.Prescription,
		FollowUpNotes:  in.FollowUpNotes,
		FollowUpDate:   in.FollowUpDate,
	}
	if err := s.Omit(clause.Associations).Create(&cons).Error; err != nil {
		return nil, apperrors.FromDB("consultation", err)
	}
	return &cons, nil
}

// ByAppointment returns the consultation for an appointment, or
// (nil, nil) when none exists yet. Absence is a normal state while the
// appointment is pending, not a failure.
func (s *ConsultationStore) ByAppointment(appointmentID uint) (*models.Consultation, error) {
	var cons models.Consultation
	err := s.Where("appointment_id = ?", appointmentID).First(&cons).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromDB("consultation", err)
	}
	return &cons, nil
}

// ConsultationPatch is a partial update. Every field is three-way:
// absent leaves the stored value alone, explicit null clears it, a
// value replaces it.
type ConsultationPatch struct {
	ChiefComplaint models.OptString
	Symptoms       models.OptString
	Diagnosis      models.OptString
	TreatmentPlan  models.OptString
	Prescription   models.OptString
	FollowUpNotes  models.OptString
	FollowUpDate   models.OptDate
}

// Update applies the patch and refreshes updated_at whether or not any
// clinical field changed.
func (s *ConsultationStore) Update(id uint, patch ConsultationPatch) (*models.Consultation, error) {
	var cons models.Consultation
	if err := s.First(&cons, id).Error; err != nil {
		return nil, apperrors.FromDB("consultation", err)
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	applyOptString(updates, "chief_complaint", patch.ChiefComplaint)
	applyOptString(updates, "symptoms", patch.Symptoms)
	applyOptString(updates, "diagnosis", patch.Diagnosis)
	applyOptString(updates, "treatment_plan", patch.TreatmentPlan)
	applyOptString(updates, "prescription", patch.Prescription)
	applyOptString(updates, "follow_up_notes", patch.FollowUpNotes)
	if patch.FollowUpDate.Present {
		if patch.FollowUpDate.Value == nil {
			updates["follow_up_date"] = nil
		} else {
			updates["follow_up_date"] = *patch.FollowUpDate.Value
		}
	}

	if err := s.Model(&models.Consultation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.FromDB("consultation", err)
	}
	if err := s.First(&cons, id).Error; err != nil {
		return nil, apperrors.FromDB("consultation", err)
	}
	return &cons, nil
}
