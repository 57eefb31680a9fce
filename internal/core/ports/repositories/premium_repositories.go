package repositories

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// PremiumReader defines read operations for per-student premium records.
// Premium rows are written only inside a coverage operation's transaction.
type PremiumReader interface {
	// ListPremiumsByStudent retrieves all premium records for a student, newest first.
	ListPremiumsByStudent(ctx context.Context, studentID string) ([]domain.StudentPolicyPremium, error)

	// ListPremiumsByPolicy retrieves a paginated list of premium records for a policy.
	ListPremiumsByPolicy(ctx context.Context, policyID string, limit int, offset int) ([]domain.StudentPolicyPremium, error)
}

// PremiumRepositoryFacade combines all premium repository interfaces
type PremiumRepositoryFacade interface {
	PremiumReader
}
