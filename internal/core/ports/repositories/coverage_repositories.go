package repositories

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// CoverageReader defines read operations over the policy/entity ledger
type CoverageReader interface {
	// FindAttachmentsByPolicy retrieves attachments for a policy. When
	// activeOnly is true, terminated attachments are excluded.
	FindAttachmentsByPolicy(ctx context.Context, policyID string, activeOnly bool) ([]domain.CoverageAttachment, error)

	// FindAttachmentsByEntity retrieves all attachments for one entity across policies.
	FindAttachmentsByEntity(ctx context.Context, entityID string) ([]domain.CoverageAttachment, error)

	// CountActiveAttachments returns the number of ACTIVE attachments on a policy.
	CountActiveAttachments(ctx context.Context, policyID string) (int, error)

	// FindActiveEntityIDsByPolicy returns the entity IDs currently covered by a policy.
	FindActiveEntityIDsByPolicy(ctx context.Context, policyID string) ([]string, error)
}

// CoverageWriter applies bulk ledger operations
type CoverageWriter interface {
	// ApplyCoverageOperation executes a bulk add or remove as one database
	// transaction: the policy row is locked, each item is checked against
	// current attachments, the sum insured is adjusted by the batch total,
	// and the endorsement, audit and premium rows are written. Items that
	// fail their checks are reported in the outcome without aborting the
	// batch. If no item succeeds, nothing is persisted.
	ApplyCoverageOperation(ctx context.Context, op domain.CoverageOperation) (*domain.CoverageOutcome, error)
}

// CoverageRepositoryFacade combines all coverage ledger repository interfaces
type CoverageRepositoryFacade interface {
	CoverageReader
	CoverageWriter
}
