package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

const premiumColumns = `premium_id, student_id, policy_id, endorsement_id, sum_insured, rate, annual_premium, date_of_joining, date_of_exit, pro_rata_days, pro_rata_premium, gst_rate, gst_amount, final_premium, premium_type, created_at`

type PgxPremiumRepository struct {
	BaseRepository
}

func newPgxPremiumRepository(pool *pgxpool.Pool) portsrepo.PremiumRepositoryFacade {
	return &PgxPremiumRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PremiumRepositoryFacade = (*PgxPremiumRepository)(nil)

func (r *PgxPremiumRepository) ListPremiumsByStudent(ctx context.Context, studentID string) ([]domain.StudentPolicyPremium, error) {
	query := `
		SELECT ` + premiumColumns + `
		FROM student_policy_premiums
		WHERE student_id = $1
		ORDER BY created_at DESC, premium_id;
	`
	rows, err := r.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query premiums for student "+studentID, err)
	}
	defer rows.Close()

	return scanPremiums(rows)
}

func (r *PgxPremiumRepository) ListPremiumsByPolicy(ctx context.Context, policyID string, limit int, offset int) ([]domain.StudentPolicyPremium, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + premiumColumns + `
		FROM student_policy_premiums
		WHERE policy_id = $1
		ORDER BY created_at DESC, premium_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, policyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query premiums for policy "+policyID, err)
	}
	defer rows.Close()

	return scanPremiums(rows)
}

func scanPremiums(rows pgx.Rows) ([]domain.StudentPolicyPremium, error) {
	premiums := []domain.StudentPolicyPremium{}
	for rows.Next() {
		var m models.StudentPolicyPremium
		err := rows.Scan(
			&m.PremiumID,
			&m.StudentID,
			&m.PolicyID,
			&m.EndorsementID,
			&m.SumInsured,
			&m.Rate,
			&m.AnnualPremium,
			&m.DateOfJoining,
			&m.DateOfExit,
			&m.ProRataDays,
			&m.ProRataPremium,
			&m.GSTRate,
			&m.GSTAmount,
			&m.FinalPremium,
			&m.PremiumType,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan premium row", err)
		}
		premiums = append(premiums, mapping.ToDomainStudentPremium(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating premium rows", err)
	}
	return premiums, nil
}
