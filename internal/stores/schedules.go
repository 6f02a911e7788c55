package stores

import (
	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"
	"clinic-server/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleStore owns the recurring weekly availability windows
// declared for doctors.
type ScheduleStore struct {
	*gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{DB: db}
}

// Add declares an availability window. Times arrive as HH:MM and are
// stored normalized to HH:MM:SS; the window must not be empty or
// inverted. New slots default to available. The doctor reference is
// enforced by the database, so a missing doctor comes back as a
// ForeignKeyViolation. Overlap with existing slots on the same day is
// not checked.
func (s *ScheduleStore) Add(doctorID uint, dayOfWeek int, startTime, endTime string) (*models.DoctorSchedule, error) {
	start, err := utils.NormalizeClockTime(startTime)
	if err != nil {
		return nil, apperrors.Validation("start_time must match HH:MM", err)
	}
	end, err := utils.NormalizeClockTime(endTime)
	if err != nil {
		return nil, apperrors.Validation("end_time must match HH:MM", err)
	}
	// Normalized HH:MM:SS strings compare correctly as text.
	if start >= end {
		return nil, apperrors.Validation("start_time must be before end_time", nil)
	}

	slot := models.DoctorSchedule{
		DoctorID:    doctorID,
		DayOfWeek:   dayOfWeek,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
	if err := s.Omit(clause.Associations).Create(&slot).Error; err != nil {
		return nil, apperrors.FromDB("doctor schedule", err)
	}
	return &slot, nil
}

// List returns every slot for the doctor ordered by day of week, then
// by start time within the day.
func (s *ScheduleStore) List(doctorID uint) ([]models.DoctorSchedule, error) {
	var slots []models.DoctorSchedule
	err := s.Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, apperrors.FromDB("doctor schedule", err)
	}
	return slots, nil
}
