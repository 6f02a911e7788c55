package handlers

import (
	"net/http"
	"strconv"
	"time"

	"clinic-server/internal/database"
	"clinic-server/internal/models"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
)

type CreateAppointmentRequest struct {
	PatientID       uint      `json:"patient_id" binding:"required"`
	DoctorID        uint      `json:"doctor_id" binding:"required"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	Reason          *string   `json:"reason"`
	CreatedBy       uint      `json:"created_by" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled confirmed in_progress completed cancelled no_show"`
	Notes  models.OptString         `json:"notes"`
}

// CreateAppointment books a new appointment in the "scheduled" state.
func CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := stores.NewAppointmentStore(database.DB).Create(stores.NewAppointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointmentStatus moves an appointment to the requested status.
// Notes in the body are three-way: omitted keeps them, null clears
// them, a string replaces them.
func UpdateAppointmentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "appointment_id")
	if !ok {
		return
	}
	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := stores.NewAppointmentStore(database.DB).SetStatus(id, req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// GetAppointmentsByDateRange lists appointments whose instant falls
// inside [start_date, end_date], optionally for one doctor.
func GetAppointmentsByDateRange(c *gin.Context) {
	start, ok := parseInstantQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseInstantQuery(c, "end_date")
	if !ok {
		return
	}

	var doctorID *uint
	if raw := c.Query("doctor_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor_id"})
			return
		}
		id := uint(parsed)
		doctorID = &id
	}

	appts, err := stores.NewAppointmentStore(database.DB).ByDateRange(start, end, doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// parseInstantQuery reads a required query parameter as an absolute
// instant. RFC3339 is the wire format; a bare YYYY-MM-DD is taken as
// midnight UTC, which for end_date excludes later times on that day
// unless the caller widens the range.
func parseInstantQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		return t, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
	return time.Time{}, false
}
