package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/core/services"
	"github.com/policyzen/policyzen_app/internal/dto"
	"github.com/policyzen/policyzen_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAuditRepository
	service  portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAuditRepository)
	suite.service = services.NewAuditServiceImpl(suite.mockRepo)
}

func auditEntries(n int, newest time.Time) []domain.AuditEntry {
	entries := make([]domain.AuditEntry, n)
	for i := range entries {
		entries[i] = domain.AuditEntry{
			AuditID:   uuid.NewString(),
			Action:    domain.ActionAddStudent,
			CreatedAt: newest.Add(-time.Duration(i) * time.Minute),
		}
	}
	return entries
}

func (suite *AuditServiceTestSuite) TestListPolicyAudit_FullPageSetsNextToken() {
	ctx := context.Background()
	policyID := uuid.NewString()
	newest := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	// Repo returns limit+1 rows, signalling another page exists.
	suite.mockRepo.On("ListAuditEntriesByPolicy", ctx, policyID, mock.Anything, 3).
		Return(auditEntries(3, newest), nil).Once()

	resp, err := suite.service.ListPolicyAudit(ctx, policyID, dto.ListAuditParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 2)
	suite.Require().NotNil(resp.NextToken)

	// The token decodes to the creation time of the last returned row.
	cursor, err := pagination.DecodeDateBasedToken(*resp.NextToken)
	suite.Require().NoError(err)
	suite.True(cursor.Equal(newest.Add(-time.Minute)))
}

func (suite *AuditServiceTestSuite) TestListPolicyAudit_ShortPageOmitsNextToken() {
	ctx := context.Background()
	policyID := uuid.NewString()
	suite.mockRepo.On("ListAuditEntriesByPolicy", ctx, policyID, mock.Anything, 51).
		Return(auditEntries(2, time.Now()), nil).Once()

	resp, err := suite.service.ListPolicyAudit(ctx, policyID, dto.ListAuditParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 2)
	suite.Nil(resp.NextToken)
}

func (suite *AuditServiceTestSuite) TestListPolicyAudit_TokenDrivesCursor() {
	ctx := context.Background()
	policyID := uuid.NewString()
	cursor := time.Date(2026, 8, 20, 8, 30, 0, 0, time.UTC)
	token := pagination.EncodeDateBasedToken(cursor)

	var before time.Time
	suite.mockRepo.On("ListAuditEntriesByPolicy", ctx, policyID, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			before = args.Get(2).(time.Time)
		}).
		Return([]domain.AuditEntry{}, nil).Once()

	_, err := suite.service.ListPolicyAudit(ctx, policyID, dto.ListAuditParams{NextToken: &token})

	suite.Require().NoError(err)
	suite.True(before.Equal(cursor))
}

func (suite *AuditServiceTestSuite) TestListEntityAudit_InvalidTokenRejected() {
	ctx := context.Background()
	bad := "not-a-token"

	resp, err := suite.service.ListEntityAudit(ctx, uuid.NewString(), dto.ListAuditParams{NextToken: &bad})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAuditEntriesByEntity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
