package services

import (
	"context"
	"net/http"
	"time"

	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/utils/pagination"
)

const defaultAuditPageSize = 50

// auditServiceImpl implements the AuditSvcFacade interface
type auditServiceImpl struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditServiceImpl creates a new audit service
func NewAuditServiceImpl(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditServiceImpl{auditRepo: auditRepo}
}

// Ensure auditServiceImpl implements the AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditServiceImpl)(nil)

func (s *auditServiceImpl) GetAuditEntryByID(ctx context.Context, auditID string) (*domain.AuditEntry, error) {
	return s.auditRepo.FindAuditEntryByID(ctx, auditID)
}

func (s *auditServiceImpl) ListPolicyAudit(ctx context.Context, policyID string, params dto.ListAuditParams) (*dto.ListAuditResponse, error) {
	return s.listWithCursor(ctx, params, func(ctx context.Context, before time.Time, limit int) ([]domain.AuditEntry, error) {
		return s.auditRepo.ListAuditEntriesByPolicy(ctx, policyID, before, limit)
	})
}

func (s *auditServiceImpl) ListEntityAudit(ctx context.Context, entityID string, params dto.ListAuditParams) (*dto.ListAuditResponse, error) {
	return s.listWithCursor(ctx, params, func(ctx context.Context, before time.Time, limit int) ([]domain.AuditEntry, error) {
		return s.auditRepo.ListAuditEntriesByEntity(ctx, entityID, before, limit)
	})
}

func (s *auditServiceImpl) ListEndorsementAudit(ctx context.Context, endorsementID string) ([]domain.AuditEntry, error) {
	return s.auditRepo.ListAuditEntriesByEndorsement(ctx, endorsementID)
}

// listWithCursor runs one cursor-paginated query. The opaque token encodes
// the creation timestamp of the last row of the previous page; the repository
// returns rows strictly older than it.
func (s *auditServiceImpl) listWithCursor(ctx context.Context, params dto.ListAuditParams, query func(context.Context, time.Time, int) ([]domain.AuditEntry, error)) (*dto.ListAuditResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultAuditPageSize
	}

	before := time.Now()
	if params.NextToken != nil && *params.NextToken != "" {
		decoded, err := pagination.DecodeDateBasedToken(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "invalid pagination token", apperrors.ErrValidation)
		}
		before = decoded
	}

	// Fetch one extra row to know whether another page exists.
	entries, err := query(ctx, before, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit entries")
		return nil, err
	}

	resp := &dto.ListAuditResponse{}
	if len(entries) > limit {
		entries = entries[:limit]
		token := pagination.EncodeDateBasedToken(entries[len(entries)-1].CreatedAt)
		resp.NextToken = &token
	}
	resp.Entries = dto.ToAuditEntryResponses(entries)
	return resp, nil
}
