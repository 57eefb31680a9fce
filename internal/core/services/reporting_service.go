package services

import (
	"context"
	"time"

	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
)

const dashboardActivitySize = 10

// reportingServiceImpl implements the ReportingSvcFacade interface
type reportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	auditRepo     portsrepo.AuditReader
}

// NewReportingServiceImpl creates a new reporting service
func NewReportingServiceImpl(reportingRepo portsrepo.ReportingRepository, auditRepo portsrepo.AuditReader) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{reportingRepo: reportingRepo, auditRepo: auditRepo}
}

// Ensure reportingServiceImpl implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	counts, err := s.reportingRepo.GetDashboardCounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard counts")
		return nil, err
	}

	now := time.Now()
	expiring, err := s.reportingRepo.CountPoliciesExpiringBetween(ctx, now, now.AddDate(0, 0, expiryLookaheadDays))
	if err != nil {
		s.LogError(ctx, err, "Failed to count expiring policies")
		return nil, err
	}

	recent, err := s.auditRepo.ListRecentAuditEntries(ctx, dashboardActivitySize)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recent audit activity")
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalPolicies:     counts.TotalPolicies,
		ActivePolicies:    counts.ActivePolicies,
		ExpiredPolicies:   counts.ExpiredPolicies,
		TotalSumInsured:   counts.TotalSumInsured,
		CoveredEntities:   counts.CoveredEntities,
		TotalEndorsements: counts.TotalEndorsements,
		ExpiringIn30Days:  expiring,
		RecentActivity:    dto.ToAuditEntryResponses(recent),
	}, nil
}
