package database

import (
	"clinic-server/internal/config"
	"clinic-server/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection.
var DB *gorm.DB

// InitDB initializes the database connection. TranslateError is on so
// constraint violations surface as gorm sentinel errors instead of
// driver-specific ones.
func InitDB(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}
	return Migrate(DB)
}

// Migrate creates or updates the schema. Order matters: referenced
// tables first so the foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Specialty{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Consultation{},
		&models.Document{},
		&models.DoctorSchedule{},
	)
}
