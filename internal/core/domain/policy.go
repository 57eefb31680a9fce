package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceType classifies what a policy covers.
type InsuranceType string

const (
	InsuranceHealth   InsuranceType = "HEALTH"
	InsuranceAccident InsuranceType = "ACCIDENT"
	InsuranceProperty InsuranceType = "PROPERTY"
	InsuranceVehicle  InsuranceType = "VEHICLE"
	InsuranceMarine   InsuranceType = "MARINE"
)

// PolicyStatus is the lifecycle state of a policy.
type PolicyStatus string

const (
	PolicyActive      PolicyStatus = "ACTIVE"
	PolicyExpired     PolicyStatus = "EXPIRED"
	PolicyUnderReview PolicyStatus = "UNDER_REVIEW"
	PolicyCancelled   PolicyStatus = "CANCELLED"
)

// Policy is an insurance policy. SumInsured is a running capacity/exposure
// balance: every covered addition debits it by the premium and every removal
// credits the refund back. It is the only aggregate the ledger mutates in
// place.
type Policy struct {
	PolicyID      string          `json:"policyID"`
	PolicyNumber  string          `json:"policyNumber"` // unique
	InsuranceType InsuranceType   `json:"insuranceType"`
	Provider      string          `json:"provider"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	SumInsured    decimal.Decimal `json:"sumInsured"`
	PremiumAmount decimal.Decimal `json:"premiumAmount"`
	Status        PolicyStatus    `json:"status"`
	AuditFields
}
