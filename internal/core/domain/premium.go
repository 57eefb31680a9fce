package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PremiumType distinguishes addition premiums from removal refunds.
type PremiumType string

const (
	PremiumAddition PremiumType = "ADDITION"
	PremiumRemoval  PremiumType = "REMOVAL"
)

// PremiumBreakdown is the full calculation trail for one student's premium
// or refund.
type PremiumBreakdown struct {
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

// StudentPolicyPremium persists one breakdown against a student, policy and
// the endorsement that carried it.
type StudentPolicyPremium struct {
	PremiumID     string           `json:"premiumID"`
	StudentID     string           `json:"studentID"`
	PolicyID      string           `json:"policyID"`
	EndorsementID string           `json:"endorsementID"`
	Breakdown     PremiumBreakdown `json:"breakdown"`
	PremiumType   PremiumType      `json:"premiumType"`
	CreatedAt     time.Time        `json:"createdAt"`
}
