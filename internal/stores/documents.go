package stores

import (
	"clinic-server/internal/apperrors"
	"clinic-server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentStore is the metadata catalog for files tied to a patient's
// care. Records are immutable once registered.
type DocumentStore struct {
	*gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{DB: db}
}

// NewDocument carries the metadata for registering a document. The
// doctor and consultation references are optional provenance.
type NewDocument struct {
	PatientID      uint
	DoctorID       *uint
	ConsultationID *uint
	Type           models.DocumentType
	Title          string
	Description    *string
	FilePath       string
	FileSize       int64
	MimeType       string
	UploadedBy     uint
}

// Register inserts the metadata record. References are not pre-checked
// here; any missing patient, doctor, consultation or uploader surfaces
// as a ForeignKeyViolation from storage.
func (s *DocumentStore) Register(in NewDocument) (*models.Document, error) {
	doc := models.Document{
		PatientID:      in.PatientID,
		DoctorID:       in.DoctorID,
		ConsultationID: in.ConsultationID,
		Type:           in.Type,
		Title:          in.Title,
		Description:    in.Description,
		FilePath:       in.FilePath,
		FileSize:       in.FileSize,
		MimeType:       in.MimeType,
		UploadedBy:     in.UploadedBy,
	}
	if err := s.Omit(clause.Associations).Create(&doc).Error; err != nil {
		return nil, apperrors.FromDB("document", err)
	}
	return &doc, nil
}

// ByPatient returns every document for the patient. No ordering is
// part of the contract; callers needing chronology must sort.
func (s *DocumentStore) ByPatient(patientID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := s.Where("patient_id = ?", patientID).Find(&docs).Error; err != nil {
		return nil, apperrors.FromDB("document", err)
	}
	return docs, nil
}
