package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// EndorsementResponse defines the data returned for an endorsement.
type EndorsementResponse struct {
	EndorsementID     string    `json:"endorsementID"`
	PolicyID          string    `json:"policyID"`
	EndorsementNumber string    `json:"endorsementNumber"`
	Description       string    `json:"description"`
	EffectiveDate     time.Time `json:"effectiveDate"`
	EntityIDs         []string  `json:"entityIDs,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedBy         string    `json:"createdBy"`
}

// ListEndorsementsParams holds paging parameters for listing endorsements.
type ListEndorsementsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ListEndorsementsResponse wraps a page of endorsements.
type ListEndorsementsResponse struct {
	Endorsements []EndorsementResponse `json:"endorsements"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// ToEndorsementResponse converts a domain.Endorsement to EndorsementResponse DTO.
func ToEndorsementResponse(e *domain.Endorsement) EndorsementResponse {
	return EndorsementResponse{
		EndorsementID:     e.EndorsementID,
		PolicyID:          e.PolicyID,
		EndorsementNumber: e.EndorsementNumber,
		Description:       e.Description,
		EffectiveDate:     e.EffectiveDate,
		EntityIDs:         e.EntityIDs,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
}

// ToEndorsementResponses converts a slice of domain.Endorsement to []EndorsementResponse.
func ToEndorsementResponses(endorsements []domain.Endorsement) []EndorsementResponse {
	responses := make([]EndorsementResponse, len(endorsements))
	for i := range endorsements {
		responses[i] = ToEndorsementResponse(&endorsements[i])
	}
	return responses
}
