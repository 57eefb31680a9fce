package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

const policyColumns = `policy_id, policy_number, insurance_type, provider, start_date, end_date, sum_insured, premium_amount, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxPolicyRepository struct {
	BaseRepository
}

func newPgxPolicyRepository(pool *pgxpool.Pool) portsrepo.PolicyRepositoryFacade {
	return &PgxPolicyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PolicyRepositoryFacade = (*PgxPolicyRepository)(nil)

func (r *PgxPolicyRepository) SavePolicy(ctx context.Context, policy domain.Policy) error {
	m := mapping.ToModelPolicy(policy)
	query := `
		INSERT INTO policies (` + policyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PolicyID,
		m.PolicyNumber,
		m.InsuranceType,
		m.Provider,
		m.StartDate,
		m.EndDate,
		m.SumInsured,
		m.PremiumAmount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "policy number "+policy.PolicyNumber+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save policy "+policy.PolicyID, err)
	}
	return nil
}

func (r *PgxPolicyRepository) UpdatePolicy(ctx context.Context, policy domain.Policy) error {
	m := mapping.ToModelPolicy(policy)
	query := `
		UPDATE policies
		SET provider = $2,
		    start_date = $3,
		    end_date = $4,
		    premium_amount = $5,
		    status = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE policy_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PolicyID,
		m.Provider,
		m.StartDate,
		m.EndDate,
		m.PremiumAmount,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update policy "+policy.PolicyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPolicyRepository) DeletePolicy(ctx context.Context, policyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM policies WHERE policy_id = $1;`, policyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete policy "+policyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPolicyRepository) FindPolicyByID(ctx context.Context, policyID string) (*domain.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE policy_id = $1;`
	return r.scanOne(ctx, query, policyID)
}

func (r *PgxPolicyRepository) FindPolicyByNumber(ctx context.Context, policyNumber string) (*domain.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE policy_number = $1;`
	return r.scanOne(ctx, query, policyNumber)
}

func (r *PgxPolicyRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Policy, error) {
	var m models.Policy
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.PolicyID,
		&m.PolicyNumber,
		&m.InsuranceType,
		&m.Provider,
		&m.StartDate,
		&m.EndDate,
		&m.SumInsured,
		&m.PremiumAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find policy", err)
	}
	policy := mapping.ToDomainPolicy(m)
	return &policy, nil
}

func (r *PgxPolicyRepository) ListPolicies(ctx context.Context, status *domain.PolicyStatus, limit int, offset int) ([]domain.Policy, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + policyColumns + ` FROM policies`
	args := []any{limit, offset}
	if status != nil {
		query += ` WHERE status = $3`
		args = append(args, string(*status))
	}
	query += ` ORDER BY end_date, policy_number LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query policies", err)
	}
	defer rows.Close()

	return scanPolicies(rows)
}

func (r *PgxPolicyRepository) ListPoliciesExpiringBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM policies
		WHERE status = 'ACTIVE' AND end_date >= $1 AND end_date <= $2
		ORDER BY end_date;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expiring policies", err)
	}
	defer rows.Close()

	return scanPolicies(rows)
}

func (r *PgxPolicyRepository) ListExpiredActivePolicies(ctx context.Context, asOf time.Time) ([]domain.Policy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM policies
		WHERE status = 'ACTIVE' AND end_date < $1
		ORDER BY end_date;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expired policies", err)
	}
	defer rows.Close()

	return scanPolicies(rows)
}

func scanPolicies(rows pgx.Rows) ([]domain.Policy, error) {
	policies := []domain.Policy{}
	for rows.Next() {
		var m models.Policy
		err := rows.Scan(
			&m.PolicyID,
			&m.PolicyNumber,
			&m.InsuranceType,
			&m.Provider,
			&m.StartDate,
			&m.EndDate,
			&m.SumInsured,
			&m.PremiumAmount,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan policy row", err)
		}
		policies = append(policies, mapping.ToDomainPolicy(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating policy rows", err)
	}
	return policies, nil
}
