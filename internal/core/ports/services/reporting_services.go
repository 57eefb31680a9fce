package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/dto"
)

// ReportingSvcFacade defines aggregate read-only dashboard queries.
type ReportingSvcFacade interface {
	// GetDashboard computes the headline dashboard numbers.
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
