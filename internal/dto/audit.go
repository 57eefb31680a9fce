package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListAuditParams holds cursor paging parameters for audit history.
type ListAuditParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// AuditEntryResponse defines the data returned for one audit trail row.
type AuditEntryResponse struct {
	AuditID         string          `json:"auditID"`
	Action          string          `json:"action"`
	EntityType      string          `json:"entityType"`
	EntityID        string          `json:"entityID"`
	PolicyID        string          `json:"policyID"`
	EndorsementID   string          `json:"endorsementID,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	BalanceBefore   decimal.Decimal `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	PerformedBy     string          `json:"performedBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListAuditResponse wraps a page of audit entries. NextToken is set when
// more rows remain.
type ListAuditResponse struct {
	Entries   []AuditEntryResponse `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToAuditEntryResponse converts a domain.AuditEntry to AuditEntryResponse DTO.
func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		AuditID:         e.AuditID,
		Action:          e.Action,
		EntityType:      string(e.EntityType),
		EntityID:        e.EntityID,
		PolicyID:        e.PolicyID,
		EndorsementID:   e.EndorsementID,
		Amount:          e.Amount,
		TransactionType: string(e.TransactionType),
		BalanceBefore:   e.BalanceBefore,
		BalanceAfter:    e.BalanceAfter,
		Metadata:        e.Metadata,
		PerformedBy:     e.PerformedBy,
		CreatedAt:       e.CreatedAt,
	}
}

// ToAuditEntryResponses converts a slice of domain.AuditEntry to []AuditEntryResponse.
func ToAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToAuditEntryResponse(&entries[i])
	}
	return responses
}
