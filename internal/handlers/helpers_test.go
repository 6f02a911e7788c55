package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"clinic-server/internal/database"
	"clinic-server/internal/models"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seedCounter atomic.Uint64

// setupRouter points the package-global database handle at a fresh
// in-memory sqlite database and returns an engine with all routes
// registered. Handlers read database.DB directly, so these tests do
// not run in parallel.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	database.DB = db

	router := gin.New()
	RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func nextSeed() uint64 {
	return seedCounter.Add(1)
}

func seedUser(t *testing.T) models.User {
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
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedDoctor(t *testing.T) models.Doctor {
	t.Helper()
	user := seedUser(t)
	specialty := models.Specialty{
		Name:     fmt.Sprintf("Specialty %d", nextSeed()),
		IsActive: true,
	}
	require.NoError(t, database.DB.Create(&specialty).Error)
	doctor := models.Doctor{
		UserID:          user.ID,
		SpecialtyID:     specialty.ID,
		LicenseNumber:   fmt.Sprintf("LIC-%d", nextSeed()),
		ConsultationFee: decimal.NewFromInt(150),
		IsAvailable:     true,
	}
	require.NoError(t, database.DB.Create(&doctor).Error)
	return doctor
}

func seedPatient(t *testing.T) models.Patient {
	t.Helper()
	patient := models.Patient{
		FirstName:   "Jane",
		LastName:    fmt.Sprintf("Doe%d", nextSeed()),
		DateOfBirth: models.NewDate(1990, time.March, 14),
		Gender:      models.GenderFemale,
	}
	require.NoError(t, database.DB.Create(&patient).Error)
	return patient
}

func seedAppointment(t *testing.T) models.Appointment {
	t.Helper()
	patient := seedPatient(t)
	doctor := seedDoctor(t)
	creator := seedUser(t)
	appt, err := stores.NewAppointmentStore(database.DB).Create(stores.NewAppointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		CreatedBy:       creator.ID,
	})
	require.NoError(t, err)
	return *appt
}
