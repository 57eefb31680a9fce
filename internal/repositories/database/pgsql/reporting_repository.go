package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
)

type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) GetDashboardCounts(ctx context.Context) (*portsrepo.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM policies),
			(SELECT COUNT(*) FROM policies WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM policies WHERE status = 'EXPIRED'),
			(SELECT COALESCE(SUM(sum_insured), 0) FROM policies WHERE status = 'ACTIVE'),
			(SELECT COUNT(DISTINCT entity_id) FROM policy_entities WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM endorsements);
	`
	var counts portsrepo.DashboardCounts
	err := r.Pool.QueryRow(ctx, query).Scan(
		&counts.TotalPolicies,
		&counts.ActivePolicies,
		&counts.ExpiredPolicies,
		&counts.TotalSumInsured,
		&counts.CoveredEntities,
		&counts.TotalEndorsements,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute dashboard counts", err)
	}
	return &counts, nil
}

func (r *ReportingRepository) CountPoliciesExpiringBetween(ctx context.Context, from time.Time, to time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM policies WHERE status = 'ACTIVE' AND end_date >= $1 AND end_date <= $2;`
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count expiring policies", err)
	}
	return count, nil
}
