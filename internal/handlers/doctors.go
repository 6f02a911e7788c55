package handlers

import (
	"net/http"

	"clinic-server/internal/database"
	"clinic-server/internal/models"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateDoctorRequest struct {
	UserID          uint            `json:"user_id" binding:"required"`
	SpecialtyID     uint            `json:"specialty_id" binding:"required"`
	LicenseNumber   string          `json:"license_number" binding:"required"`
	Phone           *string         `json:"phone"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Bio             *string         `json:"bio"`
}

// CreateDoctor registers a doctor against an existing user account and
// specialty.
func CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.ConsultationFee.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consultation_fee must be positive"})
		return
	}

	doctor := models.Doctor{
		UserID:          req.UserID,
		SpecialtyID:     req.SpecialtyID,
		LicenseNumber:   req.LicenseNumber,
		Phone:           req.Phone,
		ConsultationFee: req.ConsultationFee,
		Bio:             req.Bio,
		IsAvailable:     true,
	}
	if err := stores.NewDoctorStore(database.DB).Create(&doctor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

// GetDoctors lists the doctors currently accepting appointments.
func GetDoctors(c *gin.Context) {
	doctors, err := stores.NewDoctorStore(database.DB).ListAvailable()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}
