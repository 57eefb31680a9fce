package services

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
)

// documentServiceImpl implements the DocumentSvcFacade interface. File bytes
// live on disk under baseDir; the repository holds only metadata rows.
type documentServiceImpl struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	baseDir      string
}

// NewDocumentServiceImpl creates a new document service rooted at baseDir
func NewDocumentServiceImpl(documentRepo portsrepo.DocumentRepositoryFacade, baseDir string) portssvc.DocumentSvcFacade {
	return &documentServiceImpl{
		documentRepo: documentRepo,
		baseDir:      baseDir,
	}
}

// Ensure documentServiceImpl implements the DocumentSvcFacade interface
var _ portssvc.DocumentSvcFacade = (*documentServiceImpl)(nil)

func (s *documentServiceImpl) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.documentRepo.FindDocumentByID(ctx, documentID)
}

func (s *documentServiceImpl) ListDocumentsByOwner(ctx context.Context, ownerType domain.DocumentOwnerType, ownerID string) ([]domain.Document, error) {
	return s.documentRepo.ListDocumentsByOwner(ctx, ownerType, ownerID)
}

func (s *documentServiceImpl) StoreDocument(ctx context.Context, doc domain.Document, contents io.Reader) (*domain.Document, error) {
	if doc.DocumentID == "" {
		doc.DocumentID = uuid.NewString()
	}

	dir := filepath.Join(s.baseDir, "uploads", string(doc.OwnerType), doc.OwnerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.LogError(ctx, err, "Failed to create document directory", "dir", dir)
		return nil, err
	}
	path := filepath.Join(dir, doc.DocumentID+filepath.Ext(doc.Name))

	file, err := os.Create(path)
	if err != nil {
		s.LogError(ctx, err, "Failed to create document file", "path", path)
		return nil, err
	}
	size, err := io.Copy(file, contents)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		s.LogError(ctx, err, "Failed to write document file", "path", path)
		return nil, err
	}

	doc.FilePath = path
	doc.FileSize = size
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		os.Remove(path)
		s.LogError(ctx, err, "Failed to save document metadata", "document_id", doc.DocumentID)
		return nil, err
	}

	s.LogInfo(ctx, "Document stored", "document_id", doc.DocumentID, "size", size)
	return &doc, nil
}

func (s *documentServiceImpl) OpenDocument(ctx context.Context, documentID string) (*domain.Document, io.ReadCloser, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(doc.FilePath)
	if err != nil {
		s.LogError(ctx, err, "Failed to open document file", "path", doc.FilePath)
		return nil, nil, err
	}
	return doc, file, nil
}

func (s *documentServiceImpl) DeleteDocument(ctx context.Context, documentID string, requestingUserID string) error {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete document metadata", "document_id", documentID)
		return err
	}
	// The row is gone; a stale file only wastes disk, so log and move on.
	if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
		s.LogWarn(ctx, "Failed to remove document file", "path", doc.FilePath, "error", err.Error())
	}
	s.LogInfo(ctx, "Document deleted", "document_id", documentID, "deleted_by", requestingUserID)
	return nil
}
