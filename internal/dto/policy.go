package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePolicyRequest defines the data needed to create a new policy.
type CreatePolicyRequest struct {
	PolicyNumber  string          `json:"policyNumber" binding:"required"`
	InsuranceType string          `json:"insuranceType" binding:"required,oneof=HEALTH ACCIDENT PROPERTY VEHICLE MARINE"`
	Provider      string          `json:"provider" binding:"required"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
	EndDate       time.Time       `json:"endDate" binding:"required"`
	SumInsured    decimal.Decimal `json:"sumInsured" binding:"required,nonneg_decimal"`
	PremiumAmount decimal.Decimal `json:"premiumAmount"`
}

// UpdatePolicyRequest defines the data allowed for updating a policy.
// Pointers distinguish fields not provided from zero-value updates.
type UpdatePolicyRequest struct {
	Provider      *string          `json:"provider"`
	StartDate     *time.Time       `json:"startDate"`
	EndDate       *time.Time       `json:"endDate"`
	PremiumAmount *decimal.Decimal `json:"premiumAmount"`
	Status        *string          `json:"status" binding:"omitempty,oneof=ACTIVE EXPIRED UNDER_REVIEW CANCELLED"`
}

// PolicyResponse defines the data returned for a policy.
type PolicyResponse struct {
	PolicyID      string          `json:"policyID"`
	PolicyNumber  string          `json:"policyNumber"`
	InsuranceType string          `json:"insuranceType"`
	Provider      string          `json:"provider"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	SumInsured    decimal.Decimal `json:"sumInsured"`
	PremiumAmount decimal.Decimal `json:"premiumAmount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListPoliciesParams holds filters for listing policies.
type ListPoliciesParams struct {
	Status *string `form:"status" binding:"omitempty,oneof=ACTIVE EXPIRED UNDER_REVIEW CANCELLED"`
	Limit  int     `form:"limit"`
	Offset int     `form:"offset"`
}

// ListPoliciesResponse wraps a page of policies.
type ListPoliciesResponse struct {
	Policies []PolicyResponse `json:"policies"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// AttachmentResponse defines the data returned for one coverage attachment.
type AttachmentResponse struct {
	AttachmentID    string     `json:"attachmentID"`
	PolicyID        string     `json:"policyID"`
	EntityID        string     `json:"entityID"`
	EffectiveDate   time.Time  `json:"effectiveDate"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
	Status          string     `json:"status"`
}

// ToPolicyResponse converts a domain.Policy to PolicyResponse DTO.
func ToPolicyResponse(p *domain.Policy) PolicyResponse {
	return PolicyResponse{
		PolicyID:      p.PolicyID,
		PolicyNumber:  p.PolicyNumber,
		InsuranceType: string(p.InsuranceType),
		Provider:      p.Provider,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		SumInsured:    p.SumInsured,
		PremiumAmount: p.PremiumAmount,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToPolicyResponses converts a slice of domain.Policy to []PolicyResponse.
func ToPolicyResponses(policies []domain.Policy) []PolicyResponse {
	responses := make([]PolicyResponse, len(policies))
	for i := range policies {
		responses[i] = ToPolicyResponse(&policies[i])
	}
	return responses
}

// ToAttachmentResponse converts a domain.CoverageAttachment to AttachmentResponse DTO.
func ToAttachmentResponse(a *domain.CoverageAttachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID:    a.AttachmentID,
		PolicyID:        a.PolicyID,
		EntityID:        a.EntityID,
		EffectiveDate:   a.EffectiveDate,
		TerminationDate: a.TerminationDate,
		Status:          string(a.Status),
	}
}

// ToAttachmentResponses converts a slice of domain.CoverageAttachment to []AttachmentResponse.
func ToAttachmentResponses(attachments []domain.CoverageAttachment) []AttachmentResponse {
	responses := make([]AttachmentResponse, len(attachments))
	for i := range attachments {
		responses[i] = ToAttachmentResponse(&attachments[i])
	}
	return responses
}
