package domain

import "time"

// DocumentOwnerType identifies which aggregate a document belongs to.
type DocumentOwnerType string

const (
	DocumentOwnerPolicy      DocumentOwnerType = "POLICY"
	DocumentOwnerEndorsement DocumentOwnerType = "ENDORSEMENT"
)

// Document types for uploaded / generated files.
const (
	DocTypeEndorsementCertificate = "ENDORSEMENT_CERTIFICATE"
	DocTypeSupporting             = "SUPPORTING"
	DocTypeOther                  = "OTHER"
)

// Document is file metadata; the bytes live in the document store.
type Document struct {
	DocumentID   string            `json:"documentID"`
	OwnerType    DocumentOwnerType `json:"ownerType"`
	OwnerID      string            `json:"ownerID"`
	Name         string            `json:"name"`
	FilePath     string            `json:"filePath"`
	FileType     string            `json:"fileType"`
	FileSize     int64             `json:"fileSize"`
	DocumentType string            `json:"documentType"`
	UploadedBy   string            `json:"uploadedBy"`
	UploadedAt   time.Time         `json:"uploadedAt"`
}
