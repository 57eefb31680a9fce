package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardResponse aggregates the headline numbers for the dashboard view,
// plus the most recent ledger activity.
type DashboardResponse struct {
	TotalPolicies     int                  `json:"totalPolicies"`
	ActivePolicies    int                  `json:"activePolicies"`
	ExpiredPolicies   int                  `json:"expiredPolicies"`
	TotalSumInsured   decimal.Decimal      `json:"totalSumInsured"`
	CoveredEntities   int                  `json:"coveredEntities"`
	TotalEndorsements int                  `json:"totalEndorsements"`
	ExpiringIn30Days  int                  `json:"expiringIn30Days"`
	RecentActivity    []AuditEntryResponse `json:"recentActivity"`
}

// ScanRunResponse reports the outcome of a manually triggered scanner pass.
type ScanRunResponse struct {
	NotificationsCreated int `json:"notificationsCreated"`
}

// CleanupRunResponse reports the outcome of a notification cleanup pass.
type CleanupRunResponse struct {
	ExpiredDeleted int `json:"expiredDeleted"`
	ReadDeleted    int `json:"readDeleted"`
}
