package models

import "time"

// Gender enumerates patient gender values.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient defines the structure for patient records. DateOfBirth is a
// calendar date; it carries no time of day.
type Patient struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	FirstName             string    `json:"first_name" gorm:"not null;index"`
	LastName              string    `json:"last_name" gorm:"not null;index"`
	DateOfBirth           Date      `json:"date_of_birth" gorm:"not null"`
	Gender                Gender    `json:"gender" gorm:"size:10;not null"`
	Phone                 *string   `json:"phone"`
	Email                 *string   `json:"email"`
	Address               *string   `json:"address"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
	MedicalHistory        *string   `json:"medical_history"`
	Allergies             *string   `json:"allergies"`
	CurrentMedications    *string   `json:"current_medications"`
	InsuranceInfo         *string   `json:"insurance_info"`
	CreatedAt             time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
