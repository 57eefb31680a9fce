package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PremiumBreakdownResp is the calculation trail for one student's premium.
type PremiumBreakdownResp struct {
	SumInsured     decimal.Decimal `json:"sumInsured"`
	Rate           decimal.Decimal `json:"rate"`
	AnnualPremium  decimal.Decimal `json:"annualPremium"`
	DateOfJoining  time.Time       `json:"dateOfJoining"`
	DateOfExit     time.Time       `json:"dateOfExit"`
	ProRataDays    int             `json:"proRataDays"`
	ProRataPremium decimal.Decimal `json:"proRataPremium"`
	GSTRate        decimal.Decimal `json:"gstRate"`
	GSTAmount      decimal.Decimal `json:"gstAmount"`
	FinalPremium   decimal.Decimal `json:"finalPremium"`
}

// PremiumResponse defines the data returned for a persisted premium record.
type PremiumResponse struct {
	PremiumID     string               `json:"premiumID"`
	StudentID     string               `json:"studentID"`
	PolicyID      string               `json:"policyID"`
	EndorsementID string               `json:"endorsementID"`
	Breakdown     PremiumBreakdownResp `json:"breakdown"`
	PremiumType   string               `json:"premiumType"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToPremiumBreakdownResp converts a domain.PremiumBreakdown to its DTO.
func ToPremiumBreakdownResp(b domain.PremiumBreakdown) PremiumBreakdownResp {
	return PremiumBreakdownResp{
		SumInsured:     b.SumInsured,
		Rate:           b.Rate,
		AnnualPremium:  b.AnnualPremium,
		DateOfJoining:  b.DateOfJoining,
		DateOfExit:     b.DateOfExit,
		ProRataDays:    b.ProRataDays,
		ProRataPremium: b.ProRataPremium,
		GSTRate:        b.GSTRate,
		GSTAmount:      b.GSTAmount,
		FinalPremium:   b.FinalPremium,
	}
}

// ToPremiumResponse converts a domain.StudentPolicyPremium to PremiumResponse DTO.
func ToPremiumResponse(p *domain.StudentPolicyPremium) PremiumResponse {
	return PremiumResponse{
		PremiumID:     p.PremiumID,
		StudentID:     p.StudentID,
		PolicyID:      p.PolicyID,
		EndorsementID: p.EndorsementID,
		Breakdown:     ToPremiumBreakdownResp(p.Breakdown),
		PremiumType:   string(p.PremiumType),
		CreatedAt:     p.CreatedAt,
	}
}

// ToPremiumResponses converts a slice of domain.StudentPolicyPremium to []PremiumResponse.
func ToPremiumResponses(premiums []domain.StudentPolicyPremium) []PremiumResponse {
	responses := make([]PremiumResponse, len(premiums))
	for i := range premiums {
		responses[i] = ToPremiumResponse(&premiums[i])
	}
	return responses
}
