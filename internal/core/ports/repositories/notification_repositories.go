package repositories

import (
	"context"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// FindNotificationByID retrieves a single notification.
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// ListNotificationsByUser retrieves a paginated list for a user, newest
	// first. When unreadOnly is true, read notifications are excluded.
	ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error)

	// CountUnreadByUser returns the number of unread notifications for a user.
	CountUnreadByUser(ctx context.Context, userID string) (int, error)

	// HasRecentNotification reports whether a notification of the given type
	// and reference exists for the user since the given time. Used to
	// suppress duplicate alerts across scanner runs.
	HasRecentNotification(ctx context.Context, userID string, notifType string, referenceType string, referenceID string, since time.Time) (bool, error)

	// GetNotificationStats computes total/unread/per-priority counts for a user.
	GetNotificationStats(ctx context.Context, userID string) (*domain.NotificationStats, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotifications persists a batch of notifications in one transaction.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error

	// MarkNotificationRead stamps a notification as read by its owner.
	MarkNotificationRead(ctx context.Context, notificationID string, userID string, now time.Time) error

	// MarkAllNotificationsRead stamps all of a user's unread notifications
	// as read and returns how many were affected.
	MarkAllNotificationsRead(ctx context.Context, userID string, now time.Time) (int, error)

	// DeleteNotification removes a notification owned by the user.
	DeleteNotification(ctx context.Context, notificationID string, userID string) error

	// DeleteExpiredBefore removes notifications created before cutoff whose
	// expiry time has passed, returning the number deleted.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time, now time.Time) (int, error)

	// DeleteReadBefore removes notifications read before cutoff, returning
	// the number deleted.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
