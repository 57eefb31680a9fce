package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/pdf"
	"github.com/shopspring/decimal"
)

const defaultEndorsementPageSize = 50

// endorsementServiceImpl implements the EndorsementSvcFacade interface
type endorsementServiceImpl struct {
	BaseService
	endorsementRepo portsrepo.EndorsementRepositoryFacade
	policyRepo      portsrepo.PolicyReader
	auditRepo       portsrepo.AuditReader
	documentRepo    portsrepo.DocumentRepositoryFacade
	renderer        *pdf.Renderer
}

// NewEndorsementServiceImpl creates a new endorsement service
func NewEndorsementServiceImpl(
	endorsementRepo portsrepo.EndorsementRepositoryFacade,
	policyRepo portsrepo.PolicyReader,
	auditRepo portsrepo.AuditReader,
	documentRepo portsrepo.DocumentRepositoryFacade,
	renderer *pdf.Renderer,
) portssvc.EndorsementSvcFacade {
	return &endorsementServiceImpl{
		endorsementRepo: endorsementRepo,
		policyRepo:      policyRepo,
		auditRepo:       auditRepo,
		documentRepo:    documentRepo,
		renderer:        renderer,
	}
}

// Ensure endorsementServiceImpl implements the EndorsementSvcFacade interface
var _ portssvc.EndorsementSvcFacade = (*endorsementServiceImpl)(nil)

func (s *endorsementServiceImpl) GetEndorsementByID(ctx context.Context, endorsementID string) (*domain.Endorsement, error) {
	return s.endorsementRepo.FindEndorsementByID(ctx, endorsementID)
}

// DeleteEndorsement removes the endorsement record. The audit rows and the
// balance movements it produced are not reversed; removing a record is a
// housekeeping action, not an undo.
func (s *endorsementServiceImpl) DeleteEndorsement(ctx context.Context, endorsementID string, actingUserID string) error {
	if _, err := s.endorsementRepo.FindEndorsementByID(ctx, endorsementID); err != nil {
		return err
	}

	if err := s.endorsementRepo.DeleteEndorsement(ctx, endorsementID); err != nil {
		s.LogError(ctx, err, "Failed to delete endorsement", "endorsement_id", endorsementID)
		return err
	}

	s.LogInfo(ctx, "Endorsement deleted", "endorsement_id", endorsementID, "deleted_by", actingUserID)
	return nil
}

func (s *endorsementServiceImpl) ListEndorsementsByPolicy(ctx context.Context, policyID string, params dto.ListEndorsementsParams) (*dto.ListEndorsementsResponse, error) {
	if _, err := s.policyRepo.FindPolicyByID(ctx, policyID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultEndorsementPageSize
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	endorsements, err := s.endorsementRepo.ListEndorsementsByPolicy(ctx, policyID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list endorsements", "policy_id", policyID)
		return nil, err
	}

	return &dto.ListEndorsementsResponse{
		Endorsements: dto.ToEndorsementResponses(endorsements),
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// RegenerateCertificate rebuilds the certificate for a past endorsement from
// its audit rows, which carry per-student amounts and the batch balances.
func (s *endorsementServiceImpl) RegenerateCertificate(ctx context.Context, endorsementID string, requestingUserID string) (*domain.Document, error) {
	endorsement, err := s.endorsementRepo.FindEndorsementByID(ctx, endorsementID)
	if err != nil {
		return nil, err
	}
	policy, err := s.policyRepo.FindPolicyByID(ctx, endorsement.PolicyID)
	if err != nil {
		return nil, err
	}

	entries, err := s.auditRepo.ListAuditEntriesByEndorsement(ctx, endorsementID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load audit rows for certificate", "endorsement_id", endorsementID)
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewAppError(http.StatusConflict, "endorsement has no audit trail to rebuild the certificate from", apperrors.ErrConflict)
	}

	action := domain.CoverageAdd
	if entries[0].TransactionType == domain.Credit {
		action = domain.CoverageRemove
	}

	total := decimal.Zero
	items := make([]domain.CoverageSuccess, 0, len(entries))
	for _, entry := range entries {
		item := domain.CoverageSuccess{
			EntityID: entry.EntityID,
			Amount:   entry.Amount,
		}
		if id, ok := entry.Metadata["studentID"].(string); ok {
			item.StudentID = id
		}
		if name, ok := entry.Metadata["studentName"].(string); ok {
			item.StudentName = name
		}
		items = append(items, item)
		total = total.Add(entry.Amount)
	}

	// The certificate shows the balance as it stood after this batch, not the
	// policy's current balance.
	balanceAfter := entries[0].BalanceAfter
	policySnapshot := *policy
	policySnapshot.SumInsured = balanceAfter

	path, size, err := s.renderer.RenderEndorsementCertificate(pdf.CertificateData{
		Policy:       policySnapshot,
		Endorsement:  *endorsement,
		Action:       action,
		Items:        items,
		TotalAmount:  total,
		BalanceAfter: balanceAfter,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to render endorsement certificate", "endorsement_id", endorsementID)
		return nil, err
	}

	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		OwnerType:    domain.DocumentOwnerEndorsement,
		OwnerID:      endorsement.EndorsementID,
		Name:         endorsement.EndorsementNumber + ".pdf",
		FilePath:     path,
		FileType:     "application/pdf",
		FileSize:     size,
		DocumentType: domain.DocTypeEndorsementCertificate,
		UploadedBy:   requestingUserID,
		UploadedAt:   time.Now(),
	}
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to record regenerated certificate", "endorsement_id", endorsementID)
		return nil, err
	}

	s.LogInfo(ctx, "Endorsement certificate regenerated", "endorsement_number", endorsement.EndorsementNumber)
	return &doc, nil
}
