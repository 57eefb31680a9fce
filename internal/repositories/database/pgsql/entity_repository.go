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

const entityColumns = `entity_id, company_id, entity_type, ref_id, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.Entity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntityID,
		m.CompanyID,
		m.Type,
		m.RefID,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save entity "+entity.EntityID, err)
	}
	return nil
}

func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_id = $1;`
	return r.scanOne(ctx, query, entityID)
}

func (r *PgxEntityRepository) FindEntityByRef(ctx context.Context, ref domain.EntityRef) (*domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_type = $1 AND ref_id = $2;`
	var m models.Entity
	err := r.Pool.QueryRow(ctx, query, string(ref.Type), ref.RefID).Scan(
		&m.EntityID,
		&m.CompanyID,
		&m.Type,
		&m.RefID,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entity by ref "+ref.RefID, err)
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

func (r *PgxEntityRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Entity, error) {
	var m models.Entity
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.EntityID,
		&m.CompanyID,
		&m.Type,
		&m.RefID,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entity", err)
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

func (r *PgxEntityRepository) FindEntitiesByIDs(ctx context.Context, entityIDs []string) (map[string]domain.Entity, error) {
	if len(entityIDs) == 0 {
		return map[string]domain.Entity{}, nil
	}
	query := `SELECT ` + entityColumns + ` FROM entities WHERE entity_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, entityIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entities by ids", err)
	}
	defer rows.Close()

	entities := make(map[string]domain.Entity, len(entityIDs))
	for rows.Next() {
		var m models.Entity
		err := rows.Scan(
			&m.EntityID,
			&m.CompanyID,
			&m.Type,
			&m.RefID,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entity row", err)
		}
		entities[m.EntityID] = mapping.ToDomainEntity(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entity rows", err)
	}
	return entities, nil
}

func (r *PgxEntityRepository) ListEntitiesByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Entity, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + entityColumns + `
		FROM entities
		WHERE company_id = $1
		ORDER BY created_at DESC, entity_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entities for company "+companyID, err)
	}
	defer rows.Close()

	entities := []domain.Entity{}
	for rows.Next() {
		var m models.Entity
		err := rows.Scan(
			&m.EntityID,
			&m.CompanyID,
			&m.Type,
			&m.RefID,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entity row", err)
		}
		entities = append(entities, mapping.ToDomainEntity(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entity rows", err)
	}
	return entities, nil
}
