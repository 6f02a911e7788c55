package handlers

import (
	"net/http"

	"clinic-server/internal/database"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
)

type CreateSpecialtyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CreateSpecialty adds an entry to the specialty catalog.
func CreateSpecialty(c *gin.Context) {
	var req CreateSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specialty, err := stores.NewSpecialtyStore(database.DB).Create(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, specialty)
}

// GetSpecialties lists the active specialty catalog.
func GetSpecialties(c *gin.Context) {
	specialties, err := stores.NewSpecialtyStore(database.DB).ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, specialties)
}
