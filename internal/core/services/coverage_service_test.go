package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/core/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CoverageServiceTestSuite struct {
	suite.Suite
	mockCoverageRepo  *MockCoverageRepository
	mockPolicyRepo    *MockPolicyRepository
	mockStudentRepo   *MockStudentRepository
	mockEntityRepo    *MockEntityRepository
	mockDocumentStore *MockDocumentStore
	service           portssvc.CoverageSvcFacade

	policyID string
	userID   string
	policy   *domain.Policy
}

func (suite *CoverageServiceTestSuite) SetupTest() {
	suite.mockCoverageRepo = new(MockCoverageRepository)
	suite.mockPolicyRepo = new(MockPolicyRepository)
	suite.mockStudentRepo = new(MockStudentRepository)
	suite.mockEntityRepo = new(MockEntityRepository)
	suite.mockDocumentStore = new(MockDocumentStore)
	suite.service = services.NewCoverageServiceImpl(
		suite.mockCoverageRepo,
		suite.mockPolicyRepo,
		suite.mockStudentRepo,
		suite.mockEntityRepo,
		services.WithDocumentStore(suite.mockDocumentStore),
	)

	suite.policyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.policy = &domain.Policy{
		PolicyID:     suite.policyID,
		PolicyNumber: "POL-2026-001",
		Status:       domain.PolicyActive,
		SumInsured:   decimal.NewFromInt(10000),
	}
}

func (suite *CoverageServiceTestSuite) newStudent(name string) domain.Student {
	joining := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.Student{
		StudentID:     uuid.NewString(),
		CompanyID:     uuid.NewString(),
		Name:          name,
		SumInsured:    decimal.NewFromInt(1000000),
		DateOfJoining: &joining,
	}
}

func (suite *CoverageServiceTestSuite) TestAddStudents_BuildsDebitOperation() {
	ctx := context.Background()
	alice := suite.newStudent("Alice")
	bob := suite.newStudent("Bob")
	req := dto.AddStudentsRequest{StudentIDs: []string{alice.StudentID, bob.StudentID}}

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, req.StudentIDs).Return(map[string]domain.Student{
		alice.StudentID: alice,
		bob.StudentID:   bob,
	}, nil).Once()

	var captured domain.CoverageOperation
	outcome := &domain.CoverageOutcome{
		Succeeded:     []domain.CoverageSuccess{{StudentID: alice.StudentID}, {StudentID: bob.StudentID}},
		TotalAmount:   decimal.NewFromInt(730),
		BalanceBefore: decimal.NewFromInt(10000),
		BalanceAfter:  decimal.NewFromInt(9270),
	}
	suite.mockCoverageRepo.On("ApplyCoverageOperation", ctx, mock.AnythingOfType("domain.CoverageOperation")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.CoverageOperation)
		}).
		Return(outcome, nil).Once()

	result, err := suite.service.AddStudentsToPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Len(result.Succeeded, 2)
	suite.Empty(result.Failed)

	suite.Equal(domain.CoverageAdd, captured.Action)
	suite.Equal(domain.Debit, captured.TransactionType)
	suite.Equal(suite.userID, captured.PerformedBy)
	suite.Require().Len(captured.Items, 2)
	for _, item := range captured.Items {
		suite.Equal(domain.EntityStudent, item.Entity.Type)
		suite.Require().NotNil(item.Breakdown)
		// One year of cover from the joining date, endpoints inclusive.
		suite.Equal(366, item.Breakdown.ProRataDays)
		suite.True(item.Amount.Equal(decimal.NewFromInt(365)), "premium: %s", item.Amount)
		suite.True(item.Amount.Equal(item.Breakdown.FinalPremium))
	}

	suite.mockCoverageRepo.AssertExpectations(suite.T())
	suite.mockPolicyRepo.AssertExpectations(suite.T())
	suite.mockStudentRepo.AssertExpectations(suite.T())
}

func (suite *CoverageServiceTestSuite) TestAddStudents_InactivePolicyRejected() {
	ctx := context.Background()
	suite.policy.Status = domain.PolicyExpired
	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()

	result, err := suite.service.AddStudentsToPolicy(ctx, suite.policyID, dto.AddStudentsRequest{StudentIDs: []string{"s1"}}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCoverageRepo.AssertNotCalled(suite.T(), "ApplyCoverageOperation", mock.Anything, mock.Anything)
}

func (suite *CoverageServiceTestSuite) TestAddStudents_UnknownStudentsReportedNotApplied() {
	ctx := context.Background()
	missingA := uuid.NewString()
	missingB := uuid.NewString()
	req := dto.AddStudentsRequest{StudentIDs: []string{missingA, missingB}}

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, req.StudentIDs).Return(map[string]domain.Student{}, nil).Once()

	result, err := suite.service.AddStudentsToPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result.Succeeded)
	suite.Len(result.Failed, 2)
	suite.True(result.BalanceBefore.Equal(result.BalanceAfter))
	// Nothing resolvable, so the ledger is never touched.
	suite.mockCoverageRepo.AssertNotCalled(suite.T(), "ApplyCoverageOperation", mock.Anything, mock.Anything)
}

func (suite *CoverageServiceTestSuite) TestAddStudents_MixedOutcomeCoversEveryRequested() {
	ctx := context.Background()
	alice := suite.newStudent("Alice")
	missing := uuid.NewString()
	req := dto.AddStudentsRequest{StudentIDs: []string{alice.StudentID, missing}}

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, req.StudentIDs).Return(map[string]domain.Student{
		alice.StudentID: alice,
	}, nil).Once()
	suite.mockCoverageRepo.On("ApplyCoverageOperation", ctx, mock.AnythingOfType("domain.CoverageOperation")).
		Return(&domain.CoverageOutcome{
			Succeeded: []domain.CoverageSuccess{{StudentID: alice.StudentID}},
			Failed: []domain.CoverageFailure{
				{StudentID: uuid.NewString(), Reason: "student is already covered by this policy"},
			},
		}, nil).Once()

	result, err := suite.service.AddStudentsToPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().NoError(err)
	// Pre-transaction failures and in-transaction failures both surface.
	suite.Len(result.Succeeded, 1)
	suite.Len(result.Failed, 2)
	suite.Equal(missing, result.Failed[0].StudentID)
	suite.Equal("student not found", result.Failed[0].Reason)
}

func (suite *CoverageServiceTestSuite) TestRemoveStudents_BuildsCreditOperation() {
	ctx := context.Background()
	alice := suite.newStudent("Alice")
	exit := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	req := dto.RemoveStudentsRequest{StudentIDs: []string{alice.StudentID}, ExitDate: &exit, Reason: "Left the institution"}

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, req.StudentIDs).Return(map[string]domain.Student{
		alice.StudentID: alice,
	}, nil).Once()

	var captured domain.CoverageOperation
	suite.mockCoverageRepo.On("ApplyCoverageOperation", ctx, mock.AnythingOfType("domain.CoverageOperation")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.CoverageOperation)
		}).
		Return(&domain.CoverageOutcome{
			Succeeded: []domain.CoverageSuccess{{StudentID: alice.StudentID}},
		}, nil).Once()

	result, err := suite.service.RemoveStudentsFromPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(result.Succeeded, 1)
	suite.Equal(domain.CoverageRemove, captured.Action)
	suite.Equal(domain.Credit, captured.TransactionType)
	suite.Contains(captured.Description, "Left the institution")
	suite.Require().Len(captured.Items, 1)
	// Refund window runs joining through the requested exit date.
	suite.Equal(exit, captured.Items[0].Breakdown.DateOfExit)
	suite.Equal(181, captured.Items[0].Breakdown.ProRataDays)
}

func (suite *CoverageServiceTestSuite) TestRemoveStudents_ExitBeforeJoiningClamped() {
	ctx := context.Background()
	alice := suite.newStudent("Alice")
	exit := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC) // before joining
	req := dto.RemoveStudentsRequest{StudentIDs: []string{alice.StudentID}, ExitDate: &exit, Reason: "Withdrawn"}

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, req.StudentIDs).Return(map[string]domain.Student{
		alice.StudentID: alice,
	}, nil).Once()

	var captured domain.CoverageOperation
	suite.mockCoverageRepo.On("ApplyCoverageOperation", ctx, mock.AnythingOfType("domain.CoverageOperation")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.CoverageOperation)
		}).
		Return(&domain.CoverageOutcome{}, nil).Once()

	_, err := suite.service.RemoveStudentsFromPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(captured.Items, 1)
	suite.Equal(1, captured.Items[0].Breakdown.ProRataDays)
}

func (suite *CoverageServiceTestSuite) TestRemoveStudents_MissingReasonRejected() {
	ctx := context.Background()
	req := dto.RemoveStudentsRequest{StudentIDs: []string{uuid.NewString()}, Reason: "   "}

	result, err := suite.service.RemoveStudentsFromPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPolicyRepo.AssertNotCalled(suite.T(), "FindPolicyByID", mock.Anything, mock.Anything)
	suite.mockCoverageRepo.AssertNotCalled(suite.T(), "ApplyCoverageOperation", mock.Anything, mock.Anything)
}

func (suite *CoverageServiceTestSuite) TestRemoveStudents_SupportingDocumentsLinkedToEndorsement() {
	ctx := context.Background()
	alice := suite.newStudent("Alice")
	endorsement := &domain.Endorsement{
		EndorsementID:     uuid.NewString(),
		EndorsementNumber: "POL-2026-001-END-0002",
	}
	req := dto.RemoveStudentsRequest{
		StudentIDs: []string{alice.StudentID},
		Reason:     "Left the institution",
		Documents: []dto.DocumentUpload{
			{Name: "exit-letter.pdf", ContentType: "application/pdf", Contents: strings.NewReader("%PDF-1.4")},
		},
	}

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, req.StudentIDs).Return(map[string]domain.Student{
		alice.StudentID: alice,
	}, nil).Once()
	suite.mockCoverageRepo.On("ApplyCoverageOperation", ctx, mock.AnythingOfType("domain.CoverageOperation")).
		Return(&domain.CoverageOutcome{
			Succeeded:   []domain.CoverageSuccess{{StudentID: alice.StudentID}},
			Endorsement: endorsement,
		}, nil).Once()

	stored := &domain.Document{
		DocumentID:   uuid.NewString(),
		OwnerType:    domain.DocumentOwnerEndorsement,
		OwnerID:      endorsement.EndorsementID,
		Name:         "exit-letter.pdf",
		DocumentType: domain.DocTypeSupporting,
	}
	suite.mockDocumentStore.On("StoreDocument", ctx, mock.MatchedBy(func(d domain.Document) bool {
		return d.OwnerType == domain.DocumentOwnerEndorsement &&
			d.OwnerID == endorsement.EndorsementID &&
			d.Name == "exit-letter.pdf" &&
			d.DocumentType == domain.DocTypeSupporting &&
			d.UploadedBy == suite.userID
	}), mock.Anything).Return(stored, nil).Once()

	result, err := suite.service.RemoveStudentsFromPolicy(ctx, suite.policyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(result.Documents, 1)
	suite.Equal(stored.DocumentID, result.Documents[0].DocumentID)
	suite.mockDocumentStore.AssertExpectations(suite.T())
}

func (suite *CoverageServiceTestSuite) TestListPolicyStudents_ResolvesActiveEntities() {
	ctx := context.Background()
	alice := suite.newStudent("Alice")
	entityID := uuid.NewString()

	suite.mockPolicyRepo.On("FindPolicyByID", ctx, suite.policyID).Return(suite.policy, nil).Once()
	suite.mockCoverageRepo.On("FindActiveEntityIDsByPolicy", ctx, suite.policyID).Return([]string{entityID}, nil).Once()
	suite.mockEntityRepo.On("FindEntitiesByIDs", ctx, []string{entityID}).Return(map[string]domain.Entity{
		entityID: {EntityID: entityID, Type: domain.EntityStudent, RefID: alice.StudentID},
	}, nil).Once()
	suite.mockStudentRepo.On("FindStudentsByIDs", ctx, []string{alice.StudentID}).Return(map[string]domain.Student{
		alice.StudentID: alice,
	}, nil).Once()

	students, err := suite.service.ListPolicyStudents(ctx, suite.policyID)

	suite.Require().NoError(err)
	suite.Require().Len(students, 1)
	suite.Equal(alice.StudentID, students[0].StudentID)
}

func TestCoverageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoverageServiceTestSuite))
}
