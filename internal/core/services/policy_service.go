package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
)

const defaultPolicyPageSize = 50

// policyServiceImpl implements the PolicySvcFacade interface
type policyServiceImpl struct {
	BaseService
	policyRepo       portsrepo.PolicyRepositoryFacade
	coverageRepo     portsrepo.CoverageReader
	premiumRepo      portsrepo.PremiumReader
	notificationRepo portsrepo.NotificationWriter
	userRepo         portsrepo.UserReader
}

// NewPolicyServiceImpl creates a new policy service
func NewPolicyServiceImpl(policyRepo portsrepo.PolicyRepositoryFacade, coverageRepo portsrepo.CoverageReader, premiumRepo portsrepo.PremiumReader, notificationRepo portsrepo.NotificationWriter, userRepo portsrepo.UserReader) portssvc.PolicySvcFacade {
	return &policyServiceImpl{
		policyRepo:       policyRepo,
		coverageRepo:     coverageRepo,
		premiumRepo:      premiumRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Ensure policyServiceImpl implements the PolicySvcFacade interface
var _ portssvc.PolicySvcFacade = (*policyServiceImpl)(nil)

func (s *policyServiceImpl) CreatePolicy(ctx context.Context, req dto.CreatePolicyRequest, creatorUserID string) (*domain.Policy, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "policy end date must be after start date", apperrors.ErrValidation)
	}
	if req.SumInsured.IsNegative() {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "sum insured cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	policy := domain.Policy{
		PolicyID:      uuid.NewString(),
		PolicyNumber:  req.PolicyNumber,
		InsuranceType: domain.InsuranceType(req.InsuranceType),
		Provider:      req.Provider,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		SumInsured:    req.SumInsured,
		PremiumAmount: req.PremiumAmount,
		Status:        domain.PolicyActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.policyRepo.SavePolicy(ctx, policy); err != nil {
		s.LogError(ctx, err, "Failed to save policy", "policy_number", req.PolicyNumber)
		return nil, err
	}

	s.LogInfo(ctx, "Policy created", "policy_id", policy.PolicyID, "policy_number", policy.PolicyNumber)
	s.notifyPolicyChange(ctx, domain.NotifPolicyCreated, "Policy Created",
		fmt.Sprintf("Policy %s has been created", policy.PolicyNumber), &policy)
	return &policy, nil
}

func (s *policyServiceImpl) GetPolicyByID(ctx context.Context, policyID string) (*domain.Policy, error) {
	return s.policyRepo.FindPolicyByID(ctx, policyID)
}

func (s *policyServiceImpl) ListPolicies(ctx context.Context, params dto.ListPoliciesParams) (*dto.ListPoliciesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPolicyPageSize
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var status *domain.PolicyStatus
	if params.Status != nil {
		st := domain.PolicyStatus(*params.Status)
		status = &st
	}

	policies, err := s.policyRepo.ListPolicies(ctx, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list policies")
		return nil, err
	}

	return &dto.ListPoliciesResponse{
		Policies: dto.ToPolicyResponses(policies),
		Limit:    limit,
		Offset:   offset,
	}, nil
}

func (s *policyServiceImpl) ListPolicyAttachments(ctx context.Context, policyID string, activeOnly bool) ([]domain.CoverageAttachment, error) {
	if _, err := s.policyRepo.FindPolicyByID(ctx, policyID); err != nil {
		return nil, err
	}
	return s.coverageRepo.FindAttachmentsByPolicy(ctx, policyID, activeOnly)
}

func (s *policyServiceImpl) ListPolicyPremiums(ctx context.Context, policyID string, limit int, offset int) ([]domain.StudentPolicyPremium, error) {
	if _, err := s.policyRepo.FindPolicyByID(ctx, policyID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPolicyPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.premiumRepo.ListPremiumsByPolicy(ctx, policyID, limit, offset)
}

func (s *policyServiceImpl) UpdatePolicy(ctx context.Context, policyID string, req dto.UpdatePolicyRequest, requestingUserID string) (*domain.Policy, error) {
	policy, err := s.policyRepo.FindPolicyByID(ctx, policyID)
	if err != nil {
		return nil, err
	}

	if req.Provider != nil {
		policy.Provider = *req.Provider
	}
	if req.StartDate != nil {
		policy.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		policy.EndDate = *req.EndDate
	}
	if req.PremiumAmount != nil {
		policy.PremiumAmount = *req.PremiumAmount
	}
	if req.Status != nil {
		policy.Status = domain.PolicyStatus(*req.Status)
	}
	if !policy.EndDate.After(policy.StartDate) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "policy end date must be after start date", apperrors.ErrValidation)
	}

	policy.LastUpdatedAt = time.Now()
	policy.LastUpdatedBy = requestingUserID

	if err := s.policyRepo.UpdatePolicy(ctx, *policy); err != nil {
		s.LogError(ctx, err, "Failed to update policy", "policy_id", policyID)
		return nil, err
	}

	s.LogInfo(ctx, "Policy updated", "policy_id", policyID)
	s.notifyPolicyChange(ctx, domain.NotifPolicyUpdated, "Policy Updated",
		fmt.Sprintf("Policy %s has been updated", policy.PolicyNumber), policy)
	return policy, nil
}

func (s *policyServiceImpl) DeletePolicy(ctx context.Context, policyID string, requestingUserID string) error {
	policy, err := s.policyRepo.FindPolicyByID(ctx, policyID)
	if err != nil {
		return err
	}

	// A policy with any coverage history cannot be deleted; the attachments,
	// endorsements and audit rows hanging off it must stay reachable.
	attachments, err := s.coverageRepo.FindAttachmentsByPolicy(ctx, policyID, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to check policy attachments before delete", "policy_id", policyID)
		return err
	}
	if len(attachments) > 0 {
		return apperrors.NewAppError(http.StatusConflict, "policy has coverage history and cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.policyRepo.DeletePolicy(ctx, policyID); err != nil {
		s.LogError(ctx, err, "Failed to delete policy", "policy_id", policyID)
		return err
	}

	s.LogInfo(ctx, "Policy deleted", "policy_id", policyID, "deleted_by", requestingUserID)
	s.notifyPolicyChange(ctx, domain.NotifPolicyDeleted, "Policy Deleted",
		fmt.Sprintf("Policy %s has been deleted", policy.PolicyNumber), policy)
	return nil
}

// notifyPolicyChange fans a CRUD notification out to every active user.
// Best effort: a failure is logged, never returned, so the mutation that
// triggered it still succeeds.
func (s *policyServiceImpl) notifyPolicyChange(ctx context.Context, notifType, title, message string, policy *domain.Policy) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users for policy notification", "policy_id", policy.PolicyID)
		return
	}
	if len(users) == 0 {
		return
	}

	now := time.Now()
	expiresAt := now.AddDate(0, 0, 30)
	notifications := make([]domain.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         user.UserID,
			Type:           notifType,
			Title:          title,
			Message:        message,
			Priority:       domain.PriorityLow,
			ReferenceType:  "POLICY",
			ReferenceID:    policy.PolicyID,
			Data:           map[string]any{"policyNumber": policy.PolicyNumber},
			ExpiresAt:      &expiresAt,
			IsActive:       true,
			CreatedAt:      now,
		})
	}
	if err := s.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
		s.LogError(ctx, err, "Failed to save policy notifications", "policy_id", policy.PolicyID)
	}
}
