package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor defines the structure for doctor records. The consultation fee
// is a fixed-precision decimal, never a binary float.
type Doctor struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	SpecialtyID     uint            `json:"specialty_id" gorm:"not null;index"`
	LicenseNumber   string          `json:"license_number" gorm:"uniqueIndex;not null"`
	Phone           *string         `json:"phone"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" gorm:"type:numeric(10,2);not null"`
	Bio             *string         `json:"bio"`
	IsAvailable     bool            `json:"is_available" gorm:"not null;default:true"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`

	// Relations
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Specialty Specialty `json:"-" gorm:"foreignKey:SpecialtyID"`
}
