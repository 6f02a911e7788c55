package handlers

import (
	"net/http"

	"clinic-server/internal/database"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
)

type CreateScheduleRequest struct {
	DoctorID  uint   `json:"doctor_id" binding:"required"`
	DayOfWeek *int   `json:"day_of_week" binding:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required,clocktime"`
	EndTime   string `json:"end_time" binding:"required,clocktime"`
}

// CreateDoctorSchedule declares a weekly availability window for a
// doctor. day_of_week is 0 (Sunday) through 6 (Saturday).
func CreateDoctorSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := stores.NewScheduleStore(database.DB).Add(req.DoctorID, *req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// GetDoctorSchedule lists a doctor's availability windows ordered by
// day of week, then start time.
func GetDoctorSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "doctor_id")
	if !ok {
		return
	}

	slots, err := stores.NewScheduleStore(database.DB).List(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
