package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// DocumentResponse defines the metadata returned for a stored document.
type DocumentResponse struct {
	DocumentID   string    `json:"documentID"`
	OwnerType    string    `json:"ownerType"`
	OwnerID      string    `json:"ownerID"`
	Name         string    `json:"name"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	DocumentType string    `json:"documentType"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:   d.DocumentID,
		OwnerType:    string(d.OwnerType),
		OwnerID:      d.OwnerID,
		Name:         d.Name,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		DocumentType: d.DocumentType,
		UploadedBy:   d.UploadedBy,
		UploadedAt:   d.UploadedAt,
	}
}

// ToDocumentResponses converts a slice of domain.Document to []DocumentResponse.
func ToDocumentResponses(documents []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(documents))
	for i := range documents {
		responses[i] = ToDocumentResponse(&documents[i])
	}
	return responses
}
