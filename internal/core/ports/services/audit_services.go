package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// AuditSvcFacade defines read operations over the audit trail.
type AuditSvcFacade interface {
	// GetAuditEntryByID retrieves a single audit entry.
	GetAuditEntryByID(ctx context.Context, auditID string) (*domain.AuditEntry, error)

	// ListPolicyAudit retrieves a cursor-paginated audit history for a policy.
	ListPolicyAudit(ctx context.Context, policyID string, params dto.ListAuditParams) (*dto.ListAuditResponse, error)

	// ListEntityAudit retrieves a cursor-paginated audit history for an entity.
	ListEntityAudit(ctx context.Context, entityID string, params dto.ListAuditParams) (*dto.ListAuditResponse, error)

	// ListEndorsementAudit retrieves the audit rows written under one endorsement.
	ListEndorsementAudit(ctx context.Context, endorsementID string) ([]domain.AuditEntry, error)
}
