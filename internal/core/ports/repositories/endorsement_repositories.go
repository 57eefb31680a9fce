package repositories

import (
	"context"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// EndorsementReader defines read operations for endorsement records.
// Endorsements are created only inside a coverage operation's transaction
// and are immutable afterwards, so the only write is removal of the record.
type EndorsementReader interface {
	// FindEndorsementByID retrieves an endorsement with its linked entity IDs.
	FindEndorsementByID(ctx context.Context, endorsementID string) (*domain.Endorsement, error)

	// ListEndorsementsByPolicy retrieves a paginated list of endorsements for a policy,
	// newest first.
	ListEndorsementsByPolicy(ctx context.Context, policyID string, limit int, offset int) ([]domain.Endorsement, error)

	// ListEndorsementsEffectiveBetween retrieves endorsements whose effective
	// date falls in [from, to], joined with their policy IDs.
	ListEndorsementsEffectiveBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.Endorsement, error)
}

// EndorsementWriter defines the removal of an endorsement record.
type EndorsementWriter interface {
	// DeleteEndorsement removes the endorsement and its entity links. Premium
	// breakdowns are detached, audit rows are left untouched.
	DeleteEndorsement(ctx context.Context, endorsementID string) error
}

// EndorsementRepositoryFacade combines all endorsement repository interfaces
type EndorsementRepositoryFacade interface {
	EndorsementReader
	EndorsementWriter
}
