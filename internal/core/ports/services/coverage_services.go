package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// CoverageWriterSvc defines the bulk ledger operations
type CoverageWriterSvc interface {
	// AddStudentsToPolicy attaches students to a policy in one atomic batch.
	// Each student's premium debits the policy's sum insured; failures are
	// reported per student without aborting the batch.
	AddStudentsToPolicy(ctx context.Context, policyID string, req dto.AddStudentsRequest, requestingUserID string) (*domain.CoverageOutcome, error)

	// RemoveStudentsFromPolicy terminates students' coverage in one atomic
	// batch, crediting each pro-rata refund back to the sum insured.
	RemoveStudentsFromPolicy(ctx context.Context, policyID string, req dto.RemoveStudentsRequest, requestingUserID string) (*domain.CoverageOutcome, error)
}

// CoverageReaderSvc defines read operations over current coverage
type CoverageReaderSvc interface {
	// ListPolicyStudents retrieves the students currently covered by a policy.
	ListPolicyStudents(ctx context.Context, policyID string) ([]domain.Student, error)

	// ListAvailableStudents retrieves a company's students not currently
	// covered by the given policy.
	ListAvailableStudents(ctx context.Context, policyID string, companyID string) ([]domain.Student, error)
}

// CoverageSvcFacade combines all coverage ledger service interfaces
type CoverageSvcFacade interface {
	CoverageWriterSvc
	CoverageReaderSvc
}
