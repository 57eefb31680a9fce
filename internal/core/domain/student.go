package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student is an insurable student record. SumInsured and DateOfJoining feed
// the premium calculation when the student is attached to a policy.
type Student struct {
	StudentID     string          `json:"studentID"`
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	StudentCode   string          `json:"studentCode"`
	SumInsured    decimal.Decimal `json:"sumInsured"`
	DateOfJoining *time.Time      `json:"dateOfJoining,omitempty"`
	AuditFields
}
