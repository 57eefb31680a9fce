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

const auditColumns = `audit_id, action, entity_type, entity_id, policy_id, endorsement_id, amount, transaction_type, balance_before, balance_after, metadata, performed_by, created_at`

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) FindAuditEntryByID(ctx context.Context, auditID string) (*domain.AuditEntry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs WHERE audit_id = $1;`
	var m models.AuditLog
	err := r.Pool.QueryRow(ctx, query, auditID).Scan(
		&m.AuditID,
		&m.Action,
		&m.EntityType,
		&m.EntityID,
		&m.PolicyID,
		&m.EndorsementID,
		&m.Amount,
		&m.TransactionType,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.Metadata,
		&m.PerformedBy,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find audit entry "+auditID, err)
	}
	entry := mapping.ToDomainAuditEntry(m)
	return &entry, nil
}

func (r *PgxAuditRepository) ListAuditEntriesByPolicy(ctx context.Context, policyID string, before time.Time, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs
		WHERE policy_id = $1 AND created_at < $2
		ORDER BY created_at DESC, audit_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, policyID, before, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit entries for policy "+policyID, err)
	}
	defer rows.Close()

	return scanAuditEntries(rows)
}

func (r *PgxAuditRepository) ListAuditEntriesByEntity(ctx context.Context, entityID string, before time.Time, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs
		WHERE entity_id = $1 AND created_at < $2
		ORDER BY created_at DESC, audit_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, entityID, before, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit entries for entity "+entityID, err)
	}
	defer rows.Close()

	return scanAuditEntries(rows)
}

func (r *PgxAuditRepository) ListAuditEntriesByEndorsement(ctx context.Context, endorsementID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs
		WHERE endorsement_id = $1
		ORDER BY created_at, audit_id;
	`
	rows, err := r.Pool.Query(ctx, query, endorsementID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit entries for endorsement "+endorsementID, err)
	}
	defer rows.Close()

	return scanAuditEntries(rows)
}

func (r *PgxAuditRepository) ListRecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs
		ORDER BY created_at DESC, audit_id
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent audit entries", err)
	}
	defer rows.Close()

	return scanAuditEntries(rows)
}

func scanAuditEntries(rows pgx.Rows) ([]domain.AuditEntry, error) {
	entries := []domain.AuditEntry{}
	for rows.Next() {
		var m models.AuditLog
		err := rows.Scan(
			&m.AuditID,
			&m.Action,
			&m.EntityType,
			&m.EntityID,
			&m.PolicyID,
			&m.EndorsementID,
			&m.Amount,
			&m.TransactionType,
			&m.BalanceBefore,
			&m.BalanceAfter,
			&m.Metadata,
			&m.PerformedBy,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit row", err)
		}
		entries = append(entries, mapping.ToDomainAuditEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit rows", err)
	}
	return entries, nil
}
