package entity

import (
	"time"

	"github.com/google/uuid"

	"studydeck/constants"
)

// Document represents an ingested PDF for data transfer between layers.
type Document struct {
	ID               uuid.UUID           `json:"id"`
	SubjectID        uuid.UUID           `json:"subject_id"`
	Filename         string              `json:"filename"`
	Title            string              `json:"title"`
	FilePath         string              `json:"file_path"`
	Status           constants.DocStatus `json:"status"`
	ExtractedText    string              `json:"extracted_text,omitempty"`
	LowQualityText   bool                `json:"low_quality_text"`
	ExtractionMethod *string             `json:"extraction_method,omitempty"`
	PageCount        *int                `json:"page_count,omitempty"`
	ExtractedPages   *int                `json:"extracted_pages,omitempty"`
	Author           *string             `json:"author,omitempty"`
	Creator          *string             `json:"creator,omitempty"`
	Producer         *string             `json:"producer,omitempty"`
	ErrorMessage     *string             `json:"error_message,omitempty"`
	UploadedAt       time.Time           `json:"uploaded_at"`
	ProcessedAt      *time.Time          `json:"processed_at,omitempty"`
}
