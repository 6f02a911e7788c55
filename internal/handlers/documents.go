package handlers

import (
	"net/http"

	"clinic-server/internal/database"
	"clinic-server/internal/models"
	"clinic-server/internal/stores"

	"github.com/gin-gonic/gin"
)

type CreateDocumentRequest struct {
	PatientID      uint                `json:"patient_id" binding:"required"`
	DoctorID       *uint               `json:"doctor_id"`
	ConsultationID *uint               `json:"consultation_id"`
	Type           models.DocumentType `json:"type" binding:"required,oneof=lab_result prescription medical_report imaging referral other"`
	Title          string              `json:"title" binding:"required"`
	Description    *string             `json:"description"`
	FilePath       string              `json:"file_path" binding:"required"`
	FileSize       int64               `json:"file_size" binding:"required,gt=0"`
	MimeType       string              `json:"mime_type" binding:"required"`
	UploadedBy     uint                `json:"uploaded_by" binding:"required"`
}

// CreateDocument registers document metadata. The file bytes live
// elsewhere; this service only keeps the catalog entry.
func CreateDocument(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := stores.NewDocumentStore(database.DB).Register(stores.NewDocument{
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		ConsultationID: req.ConsultationID,
		Type:           req.Type,
		Title:          req.Title,
		Description:    req.Description,
		FilePath:       req.FilePath,
		FileSize:       req.FileSize,
		MimeType:       req.MimeType,
		UploadedBy:     req.UploadedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetPatientDocuments lists every document registered for a patient.
func GetPatientDocuments(c *gin.Context) {
	id, ok := parseIDParam(c, "patient_id")
	if !ok {
		return
	}

	docs, err := stores.NewDocumentStore(database.DB).ByPatient(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
