package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

const endorsementColumns = `endorsement_id, policy_id, endorsement_number, description, effective_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxEndorsementRepository struct {
	BaseRepository
}

func newPgxEndorsementRepository(pool *pgxpool.Pool) portsrepo.EndorsementRepositoryFacade {
	return &PgxEndorsementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EndorsementRepositoryFacade = (*PgxEndorsementRepository)(nil)

func (r *PgxEndorsementRepository) FindEndorsementByID(ctx context.Context, endorsementID string) (*domain.Endorsement, error) {
	query := `SELECT ` + endorsementColumns + ` FROM endorsements WHERE endorsement_id = $1;`
	var m models.Endorsement
	err := r.Pool.QueryRow(ctx, query, endorsementID).Scan(
		&m.EndorsementID,
		&m.PolicyID,
		&m.EndorsementNumber,
		&m.Description,
		&m.EffectiveDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find endorsement "+endorsementID, err)
	}

	endorsement := mapping.ToDomainEndorsement(m)

	linkQuery := `SELECT entity_id FROM endorsement_entities WHERE endorsement_id = $1 ORDER BY entity_id;`
	rows, err := r.Pool.Query(ctx, linkQuery, endorsementID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entities for endorsement "+endorsementID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityID string
		if err := rows.Scan(&entityID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan endorsement entity row", err)
		}
		endorsement.EntityIDs = append(endorsement.EntityIDs, entityID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating endorsement entity rows", err)
	}
	return &endorsement, nil
}

func (r *PgxEndorsementRepository) ListEndorsementsByPolicy(ctx context.Context, policyID string, limit int, offset int) ([]domain.Endorsement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + endorsementColumns + `
		FROM endorsements
		WHERE policy_id = $1
		ORDER BY created_at DESC, endorsement_number DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, policyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query endorsements for policy "+policyID, err)
	}
	defer rows.Close()

	return scanEndorsements(rows)
}

func (r *PgxEndorsementRepository) ListEndorsementsEffectiveBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.Endorsement, error) {
	query := `
		SELECT ` + endorsementColumns + `
		FROM endorsements
		WHERE effective_date >= $1 AND effective_date <= $2
		ORDER BY effective_date;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query endorsements by effective date", err)
	}
	defer rows.Close()

	return scanEndorsements(rows)
}

// DeleteEndorsement removes the endorsement record together with its entity
// links, detaching any premium breakdowns that reference it. Audit rows keep
// their endorsement_id so the trail stays complete.
func (r *PgxEndorsementRepository) DeleteEndorsement(ctx context.Context, endorsementID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	detach := `UPDATE student_policy_premiums SET endorsement_id = NULL WHERE endorsement_id = $1;`
	if _, err := tx.Exec(ctx, detach, endorsementID); err != nil {
		return apperrors.NewAppError(500, "failed to detach premium records", err)
	}

	unlink := `DELETE FROM endorsement_entities WHERE endorsement_id = $1;`
	if _, err := tx.Exec(ctx, unlink, endorsementID); err != nil {
		return apperrors.NewAppError(500, "failed to delete endorsement entity links", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM endorsements WHERE endorsement_id = $1;`, endorsementID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete endorsement", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Endorsement not found")
	}

	return r.Commit(ctx, tx)
}

func scanEndorsements(rows pgx.Rows) ([]domain.Endorsement, error) {
	endorsements := []domain.Endorsement{}
	for rows.Next() {
		var m models.Endorsement
		err := rows.Scan(
			&m.EndorsementID,
			&m.PolicyID,
			&m.EndorsementNumber,
			&m.Description,
			&m.EffectiveDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan endorsement row", err)
		}
		endorsements = append(endorsements, mapping.ToDomainEndorsement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating endorsement rows", err)
	}
	return endorsements, nil
}
