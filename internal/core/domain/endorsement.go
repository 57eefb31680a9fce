package domain

import (
	"fmt"
	"time"
)

// Endorsement is an immutable record of one bulk addition/removal against a
// policy's covered entities. EndorsementNumber is policy_number + "-END-" +
// a zero-padded per-policy sequence.
type Endorsement struct {
	EndorsementID     string    `json:"endorsementID"`
	PolicyID          string    `json:"policyID"`
	EndorsementNumber string    `json:"endorsementNumber"`
	Description       string    `json:"description"`
	EffectiveDate     time.Time `json:"effectiveDate"`
	EntityIDs         []string  `json:"entityIDs,omitempty"`
	AuditFields
}

// FormatEndorsementNumber builds the per-policy endorsement number for the
// given 1-based sequence, e.g. "POL-2024-001-END-0003".
func FormatEndorsementNumber(policyNumber string, seq int) string {
	return fmt.Sprintf("%s-END-%04d", policyNumber, seq)
}
