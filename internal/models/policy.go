package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy mirrors the policies table.
type Policy struct {
	PolicyID      string          `json:"policyID"`
	PolicyNumber  string          `json:"policyNumber"`
	InsuranceType string          `json:"insuranceType"`
	Provider      string          `json:"provider"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	SumInsured    decimal.Decimal `json:"sumInsured"`
	PremiumAmount decimal.Decimal `json:"premiumAmount"`
	Status        string          `json:"status"`
	AuditFields
}

// CoverageAttachment mirrors the policy_entities table.
type CoverageAttachment struct {
	AttachmentID    string     `json:"attachmentID"`
	PolicyID        string     `json:"policyID"`
	EntityID        string     `json:"entityID"`
	EffectiveDate   time.Time  `json:"effectiveDate"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
	Status          string     `json:"status"`
	AuditFields
}

// Endorsement mirrors the endorsements table.
type Endorsement struct {
	EndorsementID     string    `json:"endorsementID"`
	PolicyID          string    `json:"policyID"`
	EndorsementNumber string    `json:"endorsementNumber"`
	Description       string    `json:"description"`
	EffectiveDate     time.Time `json:"effectiveDate"`
	AuditFields
}
