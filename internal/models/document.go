package models

import "time"

// DocumentType is the closed set of document categories.
type DocumentType string

const (
	DocLabResult     DocumentType = "lab_result"
	DocPrescription  DocumentType = "prescription"
	DocMedicalReport DocumentType = "medical_report"
	DocImaging       DocumentType = "imaging"
	DocReferral      DocumentType = "referral"
	DocOther         DocumentType = "other"
)

// Document is a metadata record for a file attached to a patient's
// care. Only the metadata lives here; the bytes are stored elsewhere.
// The doctor and consultation links are optional provenance.
type Document struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	PatientID      uint         `json:"patient_id" gorm:"not null;index"`
	DoctorID       *uint        `json:"doctor_id" gorm:"index"`
	ConsultationID *uint        `json:"consultation_id" gorm:"index"`
	Type           DocumentType `json:"type" gorm:"size:20;not null"`
	Title          string       `json:"title" gorm:"not null"`
	Description    *string      `json:"description"`
	FilePath       string       `json:"file_path" gorm:"not null"`
	FileSize       int64        `json:"file_size" gorm:"not null"`
	MimeType       string       `json:"mime_type" gorm:"not null"`
	UploadedBy     uint         `json:"uploaded_by" gorm:"not null"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`

	// Relations
	Patient      Patient       `json:"-" gorm:"foreignKey:PatientID"`
	Doctor       *Doctor       `json:"-" gorm:"foreignKey:DoctorID"`
	Consultation *Consultation `json:"-" gorm:"foreignKey:ConsultationID"`
	Uploader     User          `json:"-" gorm:"foreignKey:UploadedBy"`
}
