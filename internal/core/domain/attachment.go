package domain

import "time"

// AttachmentStatus is the state of a policy-entity coverage link.
type AttachmentStatus string

const (
	AttachmentActive     AttachmentStatus = "ACTIVE"
	AttachmentTerminated AttachmentStatus = "TERMINATED"
)

// CoverageAttachment links an entity to a policy. At most one ACTIVE
// attachment may exist per (policy, entity) pair; removal terminates the
// attachment rather than deleting it so coverage history is preserved.
type CoverageAttachment struct {
	AttachmentID    string           `json:"attachmentID"`
	PolicyID        string           `json:"policyID"`
	EntityID        string           `json:"entityID"`
	EffectiveDate   time.Time        `json:"effectiveDate"`
	TerminationDate *time.Time       `json:"terminationDate,omitempty"`
	Status          AttachmentStatus `json:"status"`
	AuditFields
}
