package repositories

import (
	"context"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// PolicyReader defines read operations for policy data
type PolicyReader interface {
	// FindPolicyByID retrieves a specific policy by its unique identifier.
	FindPolicyByID(ctx context.Context, policyID string) (*domain.Policy, error)

	// FindPolicyByNumber retrieves a policy by its insurer-facing policy number.
	FindPolicyByNumber(ctx context.Context, policyNumber string) (*domain.Policy, error)

	// ListPolicies retrieves a paginated list of policies, optionally filtered by status.
	ListPolicies(ctx context.Context, status *domain.PolicyStatus, limit int, offset int) ([]domain.Policy, error)

	// ListPoliciesExpiringBetween retrieves ACTIVE policies whose end date falls in [from, to].
	ListPoliciesExpiringBetween(ctx context.Context, from time.Time, to time.Time) ([]domain.Policy, error)

	// ListExpiredActivePolicies retrieves policies still marked ACTIVE whose end date is before asOf.
	ListExpiredActivePolicies(ctx context.Context, asOf time.Time) ([]domain.Policy, error)
}

// PolicyWriter defines write operations for policy data
type PolicyWriter interface {
	// SavePolicy persists a new policy.
	SavePolicy(ctx context.Context, policy domain.Policy) error

	// UpdatePolicy updates an existing policy's details.
	UpdatePolicy(ctx context.Context, policy domain.Policy) error

	// DeletePolicy removes a policy that has no coverage attachments.
	DeletePolicy(ctx context.Context, policyID string) error
}

// PolicyRepositoryFacade combines all policy-related repository interfaces
type PolicyRepositoryFacade interface {
	PolicyReader
	PolicyWriter
}
