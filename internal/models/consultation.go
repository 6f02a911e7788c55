package models

import "time"

// Consultation is the clinical narrative captured for an appointment.
// Each appointment has at most one; the unique index on AppointmentID
// enforces that. All clinical fields are nullable and FollowUpDate is a
// calendar date.
type Consultation struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AppointmentID  uint      `json:"appointment_id" gorm:"uniqueIndex;not null"`
	ChiefComplaint *string   `json:"chief_complaint"`
	Symptoms       *string   `json:"symptoms"`
	Diagnosis      *string   `json:"diagnosis"`
	TreatmentPlan  *string   `json:"treatment_plan"`
	Prescription   *string   `json:"prescription"`
	FollowUpNotes  *string   `json:"follow_up_notes"`
	FollowUpDate   *Date     `json:"follow_up_date"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Appointment Appointment `json:"-" gorm:"foreignKey:AppointmentID"`
}
