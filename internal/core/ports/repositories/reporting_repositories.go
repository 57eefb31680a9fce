package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCounts aggregates the headline numbers shown on the dashboard.
type DashboardCounts struct {
	TotalPolicies     int             `json:"totalPolicies"`
	ActivePolicies    int             `json:"activePolicies"`
	ExpiredPolicies   int             `json:"expiredPolicies"`
	TotalSumInsured   decimal.Decimal `json:"totalSumInsured"`
	CoveredEntities   int             `json:"coveredEntities"`
	TotalEndorsements int             `json:"totalEndorsements"`
}

// ReportingRepository defines aggregate read-only queries for dashboards.
type ReportingRepository interface {
	// GetDashboardCounts computes the headline dashboard numbers.
	GetDashboardCounts(ctx context.Context) (*DashboardCounts, error)

	// CountPoliciesExpiringBetween counts ACTIVE policies ending in [from, to].
	CountPoliciesExpiringBetween(ctx context.Context, from time.Time, to time.Time) (int, error)
}
