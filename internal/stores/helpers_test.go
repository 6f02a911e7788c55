package stores

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"clinic-server/internal/database"
	"clinic-server/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seedCounter atomic.Uint64

// setupTestDB opens a fresh in-memory sqlite database with foreign
// keys enforced and the full schema migrated. A single connection
// keeps the in-memory database alive for the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))
	return db
}

func nextSeed() uint64 {
	return seedCounter.Add(1)
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	n := nextSeed()
	user := models.User{
		Email:        fmt.Sprintf("staff%d@clinic.test", n),
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		FirstName:    "Staff",
		LastName:     fmt.Sprintf("Member%d", n),
		Role:         models.RoleSecretary,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedSpecialty(t *testing.T, db *gorm.DB) models.Specialty {
	t.Helper()
	specialty := models.Specialty{
		Name:     fmt.Sprintf("Specialty %d", nextSeed()),
		IsActive: true,
	}
	require.NoError(t, db.Create(&specialty).Error)
	return specialty
}

func seedDoctor(t *testing.T, db *gorm.DB) models.Doctor {
	t.Helper()
	user := seedUser(t, db)
	specialty := seedSpecialty(t, db)
	doctor := models.Doctor{
		UserID:          user.ID,
		SpecialtyID:     specialty.ID,
		LicenseNumber:   fmt.Sprintf("LIC-%d", nextSeed()),
		ConsultationFee: decimal.NewFromInt(150),
		IsAvailable:     true,
	}
	require.NoError(t, db.Create(&doctor).Error)
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB) models.Patient {
	t.Helper()
	patient := models.Patient{
		FirstName:   "Jane",
		LastName:    fmt.Sprintf("Doe%d", nextSeed()),
		DateOfBirth: models.NewDate(1990, time.March, 14),
		Gender:      models.GenderFemale,
	}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func seedAppointment(t *testing.T, db *gorm.DB) models.Appointment {
	t.Helper()
	patient := seedPatient(t, db)
	doctor := seedDoctor(t, db)
	creator := seedUser(t, db)
	appt, err := NewAppointmentStore(db).Create(NewAppointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		CreatedBy:       creator.ID,
	})
	require.NoError(t, err)
	return *appt
}

func strPtr(s string) *string {
	return &s
}
