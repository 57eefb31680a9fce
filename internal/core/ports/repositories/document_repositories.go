package repositories

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// DocumentRepositoryFacade defines operations for document metadata.
// File contents live on disk; rows here only describe them.
type DocumentRepositoryFacade interface {
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocumentsByOwner(ctx context.Context, ownerType domain.DocumentOwnerType, ownerID string) ([]domain.Document, error)
	SaveDocument(ctx context.Context, document domain.Document) error
	DeleteDocument(ctx context.Context, documentID string) error
}
