package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
)

const (
	expiryLookaheadDays     = 30
	endorsementLookaheadDays = 7
	dedupWindow             = 24 * time.Hour
	notificationTTLDays     = 30
	cleanupExpiredAfterDays = 30
	cleanupReadAfterDays    = 7
)

// expiryWarning maps days-until-expiry to the alert emitted at that mark.
type expiryWarning struct {
	priority domain.NotificationPriority
	title    string
}

// Warnings fire only on the exact day marks, not on every day in between.
var expiryWarnings = map[int]expiryWarning{
	1:  {domain.PriorityCritical, "Policy Expiring Tomorrow"},
	2:  {domain.PriorityHigh, "Policy Expiry Warning"},
	7:  {domain.PriorityMedium, "Policy Expiry Warning"},
	14: {domain.PriorityLow, "Policy Expiry Warning"},
	30: {domain.PriorityLow, "Policy Expiry Warning"},
}

// expiryScannerServiceImpl implements the ExpiryScannerSvc interface
type expiryScannerServiceImpl struct {
	BaseService
	policyRepo       portsrepo.PolicyRepositoryFacade
	endorsementRepo  portsrepo.EndorsementReader
	notificationRepo portsrepo.NotificationRepositoryFacade
	userRepo         portsrepo.UserReader
}

// NewExpiryScannerServiceImpl creates a new expiry scanner service
func NewExpiryScannerServiceImpl(
	policyRepo portsrepo.PolicyRepositoryFacade,
	endorsementRepo portsrepo.EndorsementReader,
	notificationRepo portsrepo.NotificationRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.ExpiryScannerSvc {
	return &expiryScannerServiceImpl{
		policyRepo:       policyRepo,
		endorsementRepo:  endorsementRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Ensure expiryScannerServiceImpl implements the ExpiryScannerSvc interface
var _ portssvc.ExpiryScannerSvc = (*expiryScannerServiceImpl)(nil)

// CheckPolicyExpiries emits warnings for ACTIVE policies hitting an expiry
// day mark and a critical alert for each ACTIVE policy already past its end
// date. Policy status is never touched here, so an overdue policy keeps
// alerting once per dedup window until someone acts on it. Re-running within
// the window creates no duplicate alerts.
func (s *expiryScannerServiceImpl) CheckPolicyExpiries(ctx context.Context, now time.Time) (*dto.ScanRunResponse, error) {
	today := startOfDay(now)
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users for expiry scan")
		return nil, err
	}

	var batch []domain.Notification
	result := &dto.ScanRunResponse{}

	expiring, err := s.policyRepo.ListPoliciesExpiringBetween(ctx, today, today.AddDate(0, 0, expiryLookaheadDays))
	if err != nil {
		s.LogError(ctx, err, "Failed to list expiring policies")
		return nil, err
	}
	for _, policy := range expiring {
		daysLeft := daysBetween(today, startOfDay(policy.EndDate))
		warning, ok := expiryWarnings[daysLeft]
		if !ok {
			continue
		}
		message := fmt.Sprintf("Policy %s expires in %d day(s), on %s.",
			policy.PolicyNumber, daysLeft, policy.EndDate.Format("2006-01-02"))
		if daysLeft == 1 {
			message = fmt.Sprintf("Policy %s expires tomorrow, on %s.",
				policy.PolicyNumber, policy.EndDate.Format("2006-01-02"))
		}
		notifs, err := s.fanOut(ctx, users, now, domain.NotifPolicyExpiryWarning, "POLICY", policy.PolicyID,
			warning.priority, warning.title, message, map[string]any{
				"policyNumber":  policy.PolicyNumber,
				"endDate":       policy.EndDate.Format("2006-01-02"),
				"daysRemaining": daysLeft,
			})
		if err != nil {
			return nil, err
		}
		batch = append(batch, notifs...)
	}

	overdue, err := s.policyRepo.ListExpiredActivePolicies(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue policies")
		return nil, err
	}
	for _, policy := range overdue {
		notifs, err := s.fanOut(ctx, users, now, domain.NotifPolicyExpired, "POLICY", policy.PolicyID,
			domain.PriorityCritical, "Policy Expired",
			fmt.Sprintf("Policy %s expired on %s and requires attention.",
				policy.PolicyNumber, policy.EndDate.Format("2006-01-02")),
			map[string]any{
				"policyNumber": policy.PolicyNumber,
				"endDate":      policy.EndDate.Format("2006-01-02"),
			})
		if err != nil {
			return nil, err
		}
		batch = append(batch, notifs...)
	}

	if err := s.saveBatch(ctx, batch); err != nil {
		return nil, err
	}
	result.NotificationsCreated = len(batch)
	s.LogInfo(ctx, "Policy expiry scan completed",
		"notifications_created", result.NotificationsCreated)
	return result, nil
}

// CheckEndorsementAlerts emits alerts for endorsements becoming effective
// within the next week, and for endorsements effective today.
func (s *expiryScannerServiceImpl) CheckEndorsementAlerts(ctx context.Context, now time.Time) (*dto.ScanRunResponse, error) {
	today := startOfDay(now)
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users for endorsement scan")
		return nil, err
	}

	var batch []domain.Notification

	pending, err := s.endorsementRepo.ListEndorsementsEffectiveBetween(ctx,
		today.AddDate(0, 0, 1), today.AddDate(0, 0, endorsementLookaheadDays))
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending endorsements")
		return nil, err
	}
	for _, endorsement := range pending {
		notifs, err := s.fanOut(ctx, users, now, domain.NotifEndorsementPending, "ENDORSEMENT", endorsement.EndorsementID,
			domain.PriorityMedium, "Endorsement Pending",
			fmt.Sprintf("Endorsement %s becomes effective on %s.",
				endorsement.EndorsementNumber, endorsement.EffectiveDate.Format("2006-01-02")),
			map[string]any{
				"endorsementNumber": endorsement.EndorsementNumber,
				"policyID":          endorsement.PolicyID,
				"effectiveDate":     endorsement.EffectiveDate.Format("2006-01-02"),
			})
		if err != nil {
			return nil, err
		}
		batch = append(batch, notifs...)
	}

	effective, err := s.endorsementRepo.ListEndorsementsEffectiveBetween(ctx,
		today, today.AddDate(0, 0, 1).Add(-time.Nanosecond))
	if err != nil {
		s.LogError(ctx, err, "Failed to list endorsements effective today")
		return nil, err
	}
	for _, endorsement := range effective {
		notifs, err := s.fanOut(ctx, users, now, domain.NotifEndorsementEffective, "ENDORSEMENT", endorsement.EndorsementID,
			domain.PriorityMedium, "Endorsement Effective",
			fmt.Sprintf("Endorsement %s is effective today.", endorsement.EndorsementNumber),
			map[string]any{
				"endorsementNumber": endorsement.EndorsementNumber,
				"policyID":          endorsement.PolicyID,
			})
		if err != nil {
			return nil, err
		}
		batch = append(batch, notifs...)
	}

	if err := s.saveBatch(ctx, batch); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Endorsement alert scan completed", "notifications_created", len(batch))
	return &dto.ScanRunResponse{NotificationsCreated: len(batch)}, nil
}

// CleanupOldNotifications prunes stale rows: expired notifications past the
// retention window and read notifications past the shorter read window.
func (s *expiryScannerServiceImpl) CleanupOldNotifications(ctx context.Context, now time.Time) (*dto.CleanupRunResponse, error) {
	expiredDeleted, err := s.notificationRepo.DeleteExpiredBefore(ctx, now.AddDate(0, 0, -cleanupExpiredAfterDays), now)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expired notifications")
		return nil, err
	}
	readDeleted, err := s.notificationRepo.DeleteReadBefore(ctx, now.AddDate(0, 0, -cleanupReadAfterDays))
	if err != nil {
		s.LogError(ctx, err, "Failed to delete read notifications")
		return nil, err
	}
	s.LogInfo(ctx, "Notification cleanup completed",
		"expired_deleted", expiredDeleted, "read_deleted", readDeleted)
	return &dto.CleanupRunResponse{ExpiredDeleted: expiredDeleted, ReadDeleted: readDeleted}, nil
}

// fanOut builds one notification per user, skipping users already alerted for
// the same type and reference within the dedup window.
func (s *expiryScannerServiceImpl) fanOut(ctx context.Context, users []domain.User, now time.Time,
	notifType string, referenceType string, referenceID string,
	priority domain.NotificationPriority, title string, message string, data map[string]any,
) ([]domain.Notification, error) {
	expiresAt := now.AddDate(0, 0, notificationTTLDays)
	since := now.Add(-dedupWindow)

	var notifications []domain.Notification
	for _, user := range users {
		seen, err := s.notificationRepo.HasRecentNotification(ctx, user.UserID, notifType, referenceType, referenceID, since)
		if err != nil {
			s.LogError(ctx, err, "Failed to check notification dedup", "user_id", user.UserID)
			return nil, err
		}
		if seen {
			continue
		}
		notifications = append(notifications, domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         user.UserID,
			Type:           notifType,
			Title:          title,
			Message:        message,
			Priority:       priority,
			ReferenceType:  referenceType,
			ReferenceID:    referenceID,
			Data:           data,
			ExpiresAt:      &expiresAt,
			IsActive:       true,
			CreatedAt:      now,
		})
	}
	return notifications, nil
}

func (s *expiryScannerServiceImpl) saveBatch(ctx context.Context, batch []domain.Notification) error {
	if len(batch) == 0 {
		return nil
	}
	if err := s.notificationRepo.SaveNotifications(ctx, batch); err != nil {
		s.LogError(ctx, err, "Failed to save scanner notifications", "count", len(batch))
		return err
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole days from a to b, both taken at start of day.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
