package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Healthcheck reports liveness.
func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// RegisterRoutes wires every endpoint onto the engine.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/healthcheck", Healthcheck)

	api := r.Group("/api")
	{
		api.POST("/users", CreateUser)

		api.POST("/specialties", CreateSpecialty)
		api.GET("/specialties", GetSpecialties)

		api.POST("/doctors", CreateDoctor)
		api.GET("/doctors", GetDoctors)
		api.GET("/doctors/:doctor_id/schedule", GetDoctorSchedule)
		api.POST("/schedules", CreateDoctorSchedule)

		api.POST("/patients", CreatePatient)
		api.GET("/patients", GetPatients)
		api.GET("/patients/search", SearchPatients)
		api.GET("/patients/:patient_id", GetPatientByID)
		api.PATCH("/patients/:patient_id", UpdatePatient)
		api.GET("/patients/:patient_id/documents", GetPatientDocuments)

		api.POST("/appointments", CreateAppointment)
		api.GET("/appointments", GetAppointmentsByDateRange)
		api.PATCH("/appointments/:appointment_id/status", UpdateAppointmentStatus)
		api.GET("/appointments/:appointment_id/consultation", GetConsultationByAppointment)

		api.POST("/consultations", CreateConsultation)
		api.PATCH("/consultations/:consultation_id", UpdateConsultation)

		api.POST("/documents", CreateDocument)
	}
}
