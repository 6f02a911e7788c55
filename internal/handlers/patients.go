package handlers

import (
	"net/http"
	"strconv"

	"clinic-server/internal/database"
	"clinic-server/internal/models"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
)

type CreatePatientRequest struct {
	FirstName             string        `json:"first_name" binding:"required"`
	LastName              string        `json:"last_name" binding:"required"`
	DateOfBirth           models.Date   `json:"date_of_birth" binding:"required"`
	Gender                models.Gender `json:"gender" binding:"required,oneof=male female other"`
	Phone                 *string       `json:"phone"`
	Email                 *string       `json:"email" binding:"omitempty,email"`
	Address               *string       `json:"address"`
	EmergencyContactName  *string       `json:"emergency_contact_name"`
	EmergencyContactPhone *string       `json:"emergency_contact_phone"`
	MedicalHistory        *string       `json:"medical_history"`
	Allergies             *string       `json:"allergies"`
	CurrentMedications    *string       `json:"current_medications"`
	InsuranceInfo         *string       `json:"insurance_info"`
}

type UpdatePatientRequest struct {
	FirstName             *string          `json:"first_name" binding:"omitempty,min=1"`
	LastName              *string          `json:"last_name" binding:"omitempty,min=1"`
	DateOfBirth           *models.Date     `json:"date_of_birth"`
	Gender                *models.Gender   `json:"gender" binding:"omitempty,oneof=male female other"`
	Phone                 models.OptString `json:"phone"`
	Email                 models.OptString `json:"email"`
	Address               models.OptString `json:"address"`
	EmergencyContactName  models.OptString `json:"emergency_contact_name"`
	EmergencyContactPhone models.OptString `json:"emergency_contact_phone"`
	MedicalHistory        models.OptString `json:"medical_history"`
	Allergies             models.OptString `json:"allergies"`
	CurrentMedications    models.OptString `json:"current_medications"`
	InsuranceInfo         models.OptString `json:"insurance_info"`
}

// CreatePatient registers a new patient.
func CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient := models.Patient{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalHistory:        req.MedicalHistory,
		Allergies:             req.Allergies,
		CurrentMedications:    req.CurrentMedications,
		InsuranceInfo:         req.InsuranceInfo,
	}
	if err := stores.NewPatientStore(database.DB).Create(&patient); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetPatients lists all patients.
func GetPatients(c *gin.Context) {
	patients, err := stores.NewPatientStore(database.DB).List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatientByID returns a single patient.
func GetPatientByID(c *gin.Context) {
	id, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	patient, err := stores.NewPatientStore(database.DB).Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatient applies a partial update to a patient record.
func UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}
	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := stores.NewPatientStore(database.DB).Update(id, stores.PatientPatch{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DateOfBirth:           req.DateOfBirth,
		Gender:                req.Gender,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalHistory:        req.MedicalHistory,
		Allergies:             req.Allergies,
		CurrentMedications:    req.CurrentMedications,
		InsuranceInfo:         req.InsuranceInfo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// SearchPatients finds patients by name, phone or email fragment.
func SearchPatients(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	patients, err := stores.NewPatientStore(database.DB).Search(term, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
