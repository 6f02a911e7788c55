package models

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether s ends the appointment lifecycle.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Appointment is a scheduled time block between one patient and one
// doctor. AppointmentDate is an absolute instant, unlike the calendar
// dates elsewhere in the model.
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	PatientID       uint              `json:"patient_id" gorm:"not null;index"`
	DoctorID        uint              `json:"doctor_id" gorm:"not null;index"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"not null;index"`
	DurationMinutes int               `json:"duration_minutes" gorm:"not null"`
	Status          AppointmentStatus `json:"status" gorm:"size:20;not null;default:'scheduled';index"`
	Reason          *string           `json:"reason"`
	Notes           *string           `json:"notes"`
	CreatedBy       uint              `json:"created_by" gorm:"not null"`
	CreatedAt       time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Patient Patient `json:"-" gorm:"foreignKey:PatientID"`
	Doctor  Doctor  `json:"-" gorm:"foreignKey:DoctorID"`
	Creator User    `json:"-" gorm:"foreignKey:CreatedBy"`
}
