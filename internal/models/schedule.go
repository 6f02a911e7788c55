package models

import "time"

// DoctorSchedule is a recurring weekly availability window. DayOfWeek
// runs 0 (Sunday) through 6 (Saturday). Times are clock strings
// normalized to HH:MM:SS on insert. Overlapping windows on the same day
// are allowed.
type DoctorSchedule struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DoctorID    uint      `json:"doctor_id" gorm:"not null;index"`
	DayOfWeek   int       `json:"day_of_week" gorm:"not null"`
	StartTime   string    `json:"start_time" gorm:"size:8;not null"`
	EndTime     string    `json:"end_time" gorm:"size:8;not null"`
	IsAvailable bool      `json:"is_available" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relations
	Doctor Doctor `json:"-" gorm:"foreignKey:DoctorID"`
}
