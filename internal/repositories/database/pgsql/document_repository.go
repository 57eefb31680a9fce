package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

const documentColumns = `document_id, owner_type, owner_id, name, file_path, file_type, file_size, document_type, uploaded_by, uploaded_at`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.OwnerType,
		m.OwnerID,
		m.Name,
		m.FilePath,
		m.FileType,
		m.FileSize,
		m.DocumentType,
		m.UploadedBy,
		m.UploadedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save document "+document.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	var m models.Document
	err := r.Pool.QueryRow(ctx, query, documentID).Scan(
		&m.DocumentID,
		&m.OwnerType,
		&m.OwnerID,
		&m.Name,
		&m.FilePath,
		&m.FileType,
		&m.FileSize,
		&m.DocumentType,
		&m.UploadedBy,
		&m.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document "+documentID, err)
	}
	document := mapping.ToDomainDocument(m)
	return &document, nil
}

func (r *PgxDocumentRepository) ListDocumentsByOwner(ctx context.Context, ownerType domain.DocumentOwnerType, ownerID string) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY uploaded_at DESC, document_id;
	`
	rows, err := r.Pool.Query(ctx, query, string(ownerType), ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents for "+ownerID, err)
	}
	defer rows.Close()

	documents := []domain.Document{}
	for rows.Next() {
		var m models.Document
		err := rows.Scan(
			&m.DocumentID,
			&m.OwnerType,
			&m.OwnerID,
			&m.Name,
			&m.FilePath,
			&m.FileType,
			&m.FileSize,
			&m.DocumentType,
			&m.UploadedBy,
			&m.UploadedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document row", err)
		}
		documents = append(documents, mapping.ToDomainDocument(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating document rows", err)
	}
	return documents, nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
