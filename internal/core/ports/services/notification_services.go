package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// NotificationSvcFacade defines the user-facing notification operations.
type NotificationSvcFacade interface {
	// ListNotifications retrieves a page of the user's notifications.
	ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)

	// MarkRead stamps one notification as read.
	MarkRead(ctx context.Context, notificationID string, userID string) error

	// MarkAllRead stamps all unread notifications as read, returning the count.
	MarkAllRead(ctx context.Context, userID string) (int, error)

	// DeleteNotification removes one of the user's notifications.
	DeleteNotification(ctx context.Context, notificationID string, userID string) error

	// GetStats summarises the user's inbox (total, unread, per priority).
	GetStats(ctx context.Context, userID string) (*domain.NotificationStats, error)
}
