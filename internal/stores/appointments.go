package stores

import (
	"time"

	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppointmentStore owns the appointment lifecycle: creation, status
// transitions and date-range retrieval.
type AppointmentStore struct {
	*gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{DB: db}
}

// NewAppointment carries the fields needed to book an appointment.
type NewAppointment struct {
	PatientID       uint
	DoctorID        uint
	AppointmentDate time.Time
	DurationMinutes int
	Reason          *string
	CreatedBy       uint
}

// Create books an appointment with status "scheduled" and no notes.
// Patient and doctor existence is checked up front so the caller gets a
// NotFound naming the missing entity instead of a bare constraint
// error. The pre-check and the insert are not one transaction; if the
// referenced row vanishes in between, the database foreign key is the
// safety net and the violation is mapped back to the same NotFound.
func (s *AppointmentStore) Create(in NewAppointment) (*models.Appointment, error) {
	var patient models.Patient
	if err := s.First(&patient, in.PatientID).Error; err != nil {
		return nil, apperrors.FromDB("patient", err)
	}
	var doctor models.Doctor
	if err := s.First(&doctor, in.DoctorID).Error; err != nil {
		return nil, apperrors.FromDB("doctor", err)
	}

	appt := models.Appointment{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate,
		DurationMinutes: in.DurationMinutes,
		Status:          models.StatusScheduled,
		Reason:          in.Reason,
		CreatedBy:       in.CreatedBy,
	}
	if err := s.Omit(clause.Associations).Create(&appt).Error; err != nil {
		return nil, apperrors.FromDB("appointment", err)
	}
	return &appt, nil
}

// Get returns one appointment by id.
func (s *AppointmentStore) Get(id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.First(&appt, id).Error; err != nil {
		return nil, apperrors.FromDB("appointment", err)
	}
	return &appt, nil
}

// SetStatus overwrites the appointment status and refreshes
// updated_at. Any member of the status enum is accepted; transition
// legality is a calling convention, not enforced here. The notes
// parameter is three-way: absent leaves notes untouched, explicit null
// clears them, a string replaces them.
func (s *AppointmentStore) SetStatus(id uint, status models.AppointmentStatus, notes models.OptString) (*models.Appointment, error) {
	var appt models.Appointment
	if err := s.First(&appt, id).Error; err != nil {
		return nil, apperrors.FromDB("appointment", err)
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	applyOptString(updates, "notes", notes)

	if err := s.Model(&models.Appointment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.FromDB("appointment", err)
	}
	if err := s.First(&appt, id).Error; err != nil {
		return nil, apperrors.FromDB("appointment", err)
	}
	return &appt, nil
}

// ByDateRange returns appointments with start <= appointment_date <=
// end. Bounds are inclusive instants, not calendar dates: an end bound
// at midnight excludes later times on that day. Results are ordered by
// appointment_date ascending with id as a deterministic tie-break, and
// optionally filtered to one doctor.
func (s *AppointmentStore) ByDateRange(start, end time.Time, doctorID *uint) ([]models.Appointment, error) {
	query := s.Where("appointment_date >= ? AND appointment_date <= ?", start, end)
	if doctorID != nil {
		query = query.Where("doctor_id = ?", *doctorID)
	}

	var appts []models.Appointment
	if err := query.Order("appointment_date ASC, id ASC").Find(&appts).Error; err != nil {
		return nil, apperrors.FromDB("appointment", err)
	}
	return appts, nil
}

// applyOptString writes a three-way optional field into an update map:
// absent fields stay out of the map entirely.
func applyOptString(updates map[string]interface{}, column string, f models.OptString) {
	if !f.Present {
		return
	}
	if f.Value == nil {
		updates[column] = nil
		return
	}
	updates[column] = *f.Value
}
