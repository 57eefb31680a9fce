package services

import (
	"context"
	"io"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// DocumentSvcFacade defines operations for stored documents.
type DocumentSvcFacade interface {
	// GetDocumentByID retrieves document metadata.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocumentsByOwner retrieves the documents attached to an aggregate.
	ListDocumentsByOwner(ctx context.Context, ownerType domain.DocumentOwnerType, ownerID string) ([]domain.Document, error)

	// StoreDocument writes file contents to the document store and persists
	// the metadata row.
	StoreDocument(ctx context.Context, doc domain.Document, contents io.Reader) (*domain.Document, error)

	// OpenDocument opens the stored file for reading.
	OpenDocument(ctx context.Context, documentID string) (*domain.Document, io.ReadCloser, error)

	// DeleteDocument removes the metadata row and the stored file.
	DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error
}
