package handlers

import (
	"net/http"

	"clinic-server/internal/database"
	"clinic-server/internal/models"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
)

type CreateConsultationRequest struct {
	AppointmentID  uint         `json:"appointment_id" binding:"required"`
	ChiefComplaint *string      `json:"chief_complaint"`
	Symptoms       *string      `json:"symptoms"`
	Diagnosis      *string      `json:"diagnosis"`
	TreatmentPlan  *string      `json:"treatment_plan"`
	Prescription   *string      `json:"prescription"`
	FollowUpNotes  *string      `json:"follow_up_notes"`
	FollowUpDate   *models.Date `json:"follow_up_date"`
}

type UpdateConsultationRequest struct {
	ChiefComplaint models.OptString `json:"chief_complaint"`
	Symptoms       models.OptString `json:"symptoms"`
	Diagnosis      models.OptString `json:"diagnosis"`
	TreatmentPlan  models.OptString `json:"treatment_plan"`
	Prescription   models.OptString `json:"prescription"`
	FollowUpNotes  models.OptString `json:"follow_up_notes"`
	FollowUpDate   models.OptDate   `json:"follow_up_date"`
}

// CreateConsultation opens the encounter record for an appointment.
func CreateConsultation(c *gin.Context) {
	var req CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cons, err := stores.NewConsultationStore(database.DB).Create(stores.NewConsultation{
		AppointmentID:  req.AppointmentID,
		ChiefComplaint: req.ChiefComplaint,
		Symptoms:       req.Symptoms,
		Diagnosis:      req.Diagnosis,
		TreatmentPlan:  req.TreatmentPlan,
		Prescription:   req.Prescription,
		FollowUpNotes:  req.FollowUpNotes,
		FollowUpDate:   req.FollowUpDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cons)
}

// GetConsultationByAppointment returns the consultation for an
// appointment, or a null body when none exists yet. Absence is not an
// error.
func GetConsultationByAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}

	cons, err := stores.NewConsultationStore(database.DB).ByAppointment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cons)
}

// UpdateConsultation applies a partial update. Each field key is
// three-way: absent means untouched, null clears, a value replaces.
func UpdateConsultation(c *gin.Context) {
	id, ok := parseIDParam(c, "consultation_id")
	if !ok {
		return
	}
	var req UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cons, err := stores.NewConsultationStore(database.DB).Update(id, stores.ConsultationPatch{
		ChiefComplaint: req.ChiefComplaint,
		Symptoms:       req.Symptoms,
		Diagnosis:      req.Diagnosis,
		TreatmentPlan:  req.TreatmentPlan,
		Prescription:   req.Prescription,
		FollowUpNotes:  req.FollowUpNotes,
		FollowUpDate:   req.FollowUpDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cons)
}
