package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// PolicyReaderSvc defines read operations for policy data
type PolicyReaderSvc interface {
	// GetPolicyByID retrieves a specific policy.
	GetPolicyByID(ctx context.Context, policyID string) (*domain.Policy, error)

	// ListPolicies retrieves a paginated, optionally status-filtered list.
	ListPolicies(ctx context.Context, params dto.ListPoliciesParams) (*dto.ListPoliciesResponse, error)

	// ListPolicyAttachments retrieves coverage attachments for a policy.
	ListPolicyAttachments(ctx context.Context, policyID string, activeOnly bool) ([]domain.CoverageAttachment, error)

	// ListPolicyPremiums retrieves a page of the premium records written
	// against a policy.
	ListPolicyPremiums(ctx context.Context, policyID string, limit int, offset int) ([]domain.StudentPolicyPremium, error)
}

// PolicyWriterSvc defines write operations for policy data
type PolicyWriterSvc interface {
	// CreatePolicy persists a new policy.
	CreatePolicy(ctx context.Context, req dto.CreatePolicyRequest, creatorUserID string) (*domain.Policy, error)

	// UpdatePolicy updates policy details.
	UpdatePolicy(ctx context.Context, policyID string, req dto.UpdatePolicyRequest, requestingUserID string) (*domain.Policy, error)

	// DeletePolicy removes a policy. Fails if the policy has any coverage
	// attachments, active or terminated.
	DeletePolicy(ctx context.Context, policyID string, requestingUserID string) error
}

// PolicySvcFacade combines all policy-related service interfaces
type PolicySvcFacade interface {
	PolicyReaderSvc
	PolicyWriterSvc
}
