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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpiryScannerTestSuite struct {
	suite.Suite
	mockPolicyRepo       *MockPolicyRepository
	mockEndorsementRepo  *MockEndorsementRepository
	mockNotificationRepo *MockNotificationRepository
	mockUserRepo         *MockUserRepository
	service              portssvc.ExpiryScannerSvc

	now   time.Time
	users []domain.User
}

func (suite *ExpiryScannerTestSuite) SetupTest() {
	suite.mockPolicyRepo = new(MockPolicyRepository)
	suite.mockEndorsementRepo = new(MockEndorsementRepository)
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewExpiryScannerServiceImpl(
		suite.mockPolicyRepo,
		suite.mockEndorsementRepo,
		suite.mockNotificationRepo,
		suite.mockUserRepo,
	)

	suite.now = time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	suite.users = []domain.User{
		{UserID: uuid.NewString(), Username: "ops1", Status: domain.UserActive},
		{UserID: uuid.NewString(), Username: "ops2", Status: domain.UserActive},
	}
	suite.mockUserRepo.On("ListUsers", mock.Anything).Return(suite.users, nil)
}

func (suite *ExpiryScannerTestSuite) expiringPolicy(daysLeft int) domain.Policy {
	return domain.Policy{
		PolicyID:     uuid.NewString(),
		PolicyNumber: "POL-2026-100",
		Status:       domain.PolicyActive,
		SumInsured:   decimal.NewFromInt(500000),
		EndDate:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysLeft),
	}
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_TomorrowIsCritical() {
	ctx := context.Background()
	policy := suite.expiringPolicy(1)

	suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Policy{policy}, nil).Once()
	suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
		Return([]domain.Policy{}, nil).Once()
	suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
		domain.NotifPolicyExpiryWarning, "POLICY", policy.PolicyID, mock.Anything).
		Return(false, nil).Twice()

	var saved []domain.Notification
	suite.mockNotificationRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Notification)
		}).
		Return(nil).Once()

	result, err := suite.service.CheckPolicyExpiries(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(2, result.NotificationsCreated) // one per user
	suite.Require().Len(saved, 2)
	for _, n := range saved {
		suite.Equal(domain.PriorityCritical, n.Priority)
		suite.Equal("Policy Expiring Tomorrow", n.Title)
		suite.Equal(domain.NotifPolicyExpiryWarning, n.Type)
		suite.Equal(policy.PolicyID, n.ReferenceID)
		suite.True(n.IsActive)
		suite.Require().NotNil(n.ExpiresAt)
	}
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_ThresholdPriorities() {
	tests := []struct {
		daysLeft int
		priority domain.NotificationPriority
	}{
		{2, domain.PriorityHigh},
		{7, domain.PriorityMedium},
		{14, domain.PriorityLow},
		{30, domain.PriorityLow},
	}
	for _, tt := range tests {
		suite.SetupTest()
		ctx := context.Background()
		policy := suite.expiringPolicy(tt.daysLeft)

		suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
			Return([]domain.Policy{policy}, nil).Once()
		suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
			Return([]domain.Policy{}, nil).Once()
		suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		var saved []domain.Notification
		suite.mockNotificationRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).([]domain.Notification)
			}).
			Return(nil).Once()

		_, err := suite.service.CheckPolicyExpiries(ctx, suite.now)

		suite.Require().NoError(err)
		suite.Require().NotEmpty(saved, "days left %d", tt.daysLeft)
		suite.Equal(tt.priority, saved[0].Priority, "days left %d", tt.daysLeft)
	}
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_OffThresholdDaysEmitNothing() {
	ctx := context.Background()
	policy := suite.expiringPolicy(5) // not a warning mark

	suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Policy{policy}, nil).Once()
	suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
		Return([]domain.Policy{}, nil).Once()

	result, err := suite.service.CheckPolicyExpiries(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(0, result.NotificationsCreated)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotifications", mock.Anything, mock.Anything)
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_DedupSuppressesRerun() {
	ctx := context.Background()
	policy := suite.expiringPolicy(1)

	suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Policy{policy}, nil).Once()
	suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
		Return([]domain.Policy{}, nil).Once()
	// Every user already got this alert within the window.
	suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
		domain.NotifPolicyExpiryWarning, "POLICY", policy.PolicyID, mock.Anything).
		Return(true, nil).Twice()

	result, err := suite.service.CheckPolicyExpiries(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(0, result.NotificationsCreated)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotifications", mock.Anything, mock.Anything)
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_OverdueAlertsWithoutStatusChange() {
	ctx := context.Background()
	overdue := suite.expiringPolicy(-3)

	suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Policy{}, nil).Once()
	suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
		Return([]domain.Policy{overdue}, nil).Once()
	suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
		domain.NotifPolicyExpired, "POLICY", overdue.PolicyID, mock.Anything).
		Return(false, nil).Twice()

	var saved []domain.Notification
	suite.mockNotificationRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Notification)
		}).
		Return(nil).Once()

	result, err := suite.service.CheckPolicyExpiries(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(2, result.NotificationsCreated)
	suite.Require().Len(saved, 2)
	suite.Equal(domain.PriorityCritical, saved[0].Priority)
	suite.Equal("Policy Expired", saved[0].Title)
	// The scan only notifies; the policy row is left alone so the alert can
	// recur on the next pass.
	suite.mockPolicyRepo.AssertExpectations(suite.T())
	suite.mockPolicyRepo.AssertNumberOfCalls(suite.T(), "UpdatePolicy", 0)
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_FailedSaveAbortsWholePass() {
	ctx := context.Background()
	overdue := suite.expiringPolicy(-3)
	saveErr := apperrors.NewAppError(500, "failed to insert notification batch", nil)

	suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Policy{}, nil).Once()
	suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
		Return([]domain.Policy{overdue}, nil).Once()
	suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
		domain.NotifPolicyExpired, "POLICY", overdue.PolicyID, mock.Anything).
		Return(false, nil).Twice()
	suite.mockNotificationRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
		Return(saveErr).Once()

	result, err := suite.service.CheckPolicyExpiries(ctx, suite.now)

	suite.Require().ErrorIs(err, saveErr)
	suite.Nil(result)
	// The pass writes through a single transactional batch insert, so a
	// failed save means nothing was persisted and no policy was modified.
	suite.mockPolicyRepo.AssertNumberOfCalls(suite.T(), "UpdatePolicy", 0)
	suite.mockPolicyRepo.AssertNumberOfCalls(suite.T(), "SavePolicy", 0)
}

func (suite *ExpiryScannerTestSuite) TestCheckPolicyExpiries_OverdueAlertRecursDaily() {
	ctx := context.Background()
	overdue := suite.expiringPolicy(-3)
	dayTwo := suite.now.Add(25 * time.Hour)

	suite.mockPolicyRepo.On("ListPoliciesExpiringBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Policy{}, nil).Twice()
	suite.mockPolicyRepo.On("ListExpiredActivePolicies", ctx, mock.Anything).
		Return([]domain.Policy{overdue}, nil).Twice()
	// Day one: nothing seen yet. Day two: the day-one alerts are older than
	// the dedup window, so they no longer suppress.
	suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
		domain.NotifPolicyExpired, "POLICY", overdue.PolicyID, mock.Anything).
		Return(false, nil).Times(4)
	suite.mockNotificationRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
		Return(nil).Twice()

	first, err := suite.service.CheckPolicyExpiries(ctx, suite.now)
	suite.Require().NoError(err)
	suite.Equal(2, first.NotificationsCreated)

	second, err := suite.service.CheckPolicyExpiries(ctx, dayTwo)
	suite.Require().NoError(err)
	suite.Equal(2, second.NotificationsCreated)

	suite.mockPolicyRepo.AssertExpectations(suite.T())
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *ExpiryScannerTestSuite) TestCheckEndorsementAlerts_PendingAndEffective() {
	ctx := context.Background()
	pending := domain.Endorsement{
		EndorsementID:     uuid.NewString(),
		PolicyID:          uuid.NewString(),
		EndorsementNumber: "POL-2026-100-END-0002",
		EffectiveDate:     time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	}
	effective := domain.Endorsement{
		EndorsementID:     uuid.NewString(),
		PolicyID:          uuid.NewString(),
		EndorsementNumber: "POL-2026-100-END-0003",
		EffectiveDate:     time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockEndorsementRepo.On("ListEndorsementsEffectiveBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Endorsement{pending}, nil).Once()
	suite.mockEndorsementRepo.On("ListEndorsementsEffectiveBetween", ctx, mock.Anything, mock.Anything).
		Return([]domain.Endorsement{effective}, nil).Once()
	suite.mockNotificationRepo.On("HasRecentNotification", ctx, mock.Anything,
		mock.Anything, "ENDORSEMENT", mock.Anything, mock.Anything).Return(false, nil)

	var saved []domain.Notification
	suite.mockNotificationRepo.On("SaveNotifications", ctx, mock.AnythingOfType("[]domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Notification)
		}).
		Return(nil).Once()

	result, err := suite.service.CheckEndorsementAlerts(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(4, result.NotificationsCreated) // two endorsements, two users
	types := map[string]int{}
	for _, n := range saved {
		types[n.Type]++
	}
	suite.Equal(2, types[domain.NotifEndorsementPending])
	suite.Equal(2, types[domain.NotifEndorsementEffective])
}

func (suite *ExpiryScannerTestSuite) TestCleanupOldNotifications() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("DeleteExpiredBefore", ctx, suite.now.AddDate(0, 0, -30), suite.now).
		Return(4, nil).Once()
	suite.mockNotificationRepo.On("DeleteReadBefore", ctx, suite.now.AddDate(0, 0, -7)).
		Return(9, nil).Once()

	result, err := suite.service.CleanupOldNotifications(ctx, suite.now)

	suite.Require().NoError(err)
	suite.Equal(4, result.ExpiredDeleted)
	suite.Equal(9, result.ReadDeleted)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func TestExpiryScannerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpiryScannerTestSuite))
}
