package services

import (
	"context"
	"net/http"
	"time"

	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
)

const defaultNotificationPageSize = 50

// notificationServiceImpl implements the NotificationSvcFacade interface
type notificationServiceImpl struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationServiceImpl creates a new notification service
func NewNotificationServiceImpl(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

// Ensure notificationServiceImpl implements the NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationServiceImpl)(nil)

func (s *notificationServiceImpl) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, userID, params.UnreadOnly, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", "user_id", userID)
		return nil, err
	}
	unread, err := s.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count unread notifications", "user_id", userID)
		return nil, err
	}

	return &dto.ListNotificationsResponse{
		Notifications: dto.ToNotificationResponses(notifications),
		UnreadCount:   unread,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, notificationID string, userID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return apperrors.NewAppError(http.StatusForbidden, "notification belongs to another user", apperrors.ErrForbidden)
	}
	if notification.Read() {
		return nil
	}
	return s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID, time.Now())
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) (int, error) {
	updated, err := s.notificationRepo.MarkAllNotificationsRead(ctx, userID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark notifications read", "user_id", userID)
		return 0, err
	}
	return updated, nil
}

func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return apperrors.NewAppError(http.StatusForbidden, "notification belongs to another user", apperrors.ErrForbidden)
	}
	return s.notificationRepo.DeleteNotification(ctx, notificationID, userID)
}

func (s *notificationServiceImpl) GetStats(ctx context.Context, userID string) (*domain.NotificationStats, error) {
	stats, err := s.notificationRepo.GetNotificationStats(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute notification stats", "user_id", userID)
		return nil, err
	}
	return stats, nil
}
