package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

const notificationColumns = `notification_id, user_id, type, title, message, priority, reference_type, reference_id, data, read_at, expires_at, is_active, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotifications inserts a batch of notifications in one transaction so a
// scanner pass either lands completely or not at all.
func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, n := range notifications {
		m, err := mapping.ToModelNotification(n)
		if err != nil {
			return apperrors.NewAppError(500, "failed to encode notification data", err)
		}
		batch.Queue(query,
			m.NotificationID,
			m.UserID,
			m.Type,
			m.Title,
			m.Message,
			m.Priority,
			m.ReferenceType,
			m.ReferenceID,
			m.Data,
			m.ReadAt,
			m.ExpiresAt,
			m.IsActive,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert notification batch", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`
	var m models.Notification
	err := r.Pool.QueryRow(ctx, query, notificationID).Scan(
		&m.NotificationID,
		&m.UserID,
		&m.Type,
		&m.Title,
		&m.Message,
		&m.Priority,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Data,
		&m.ReadAt,
		&m.ExpiresAt,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find notification "+notificationID, err)
	}
	notification := mapping.ToDomainNotification(m)
	return &notification, nil
}

func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND is_active = TRUE
	`
	if unreadOnly {
		query += ` AND read_at IS NULL`
	}
	query += ` ORDER BY created_at DESC, notification_id LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query notifications for user "+userID, err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID,
			&m.UserID,
			&m.Type,
			&m.Title,
			&m.Message,
			&m.Priority,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.Data,
			&m.ReadAt,
			&m.ExpiresAt,
			&m.IsActive,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan notification row", err)
		}
		notifications = append(notifications, mapping.ToDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating notification rows", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_active = TRUE AND read_at IS NULL;`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count unread notifications for user "+userID, err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) GetNotificationStats(ctx context.Context, userID string) (*domain.NotificationStats, error) {
	stats := &domain.NotificationStats{ByPriority: make(map[string]int)}

	query := `
		SELECT priority, COUNT(*), COUNT(*) FILTER (WHERE read_at IS NULL)
		FROM notifications
		WHERE user_id = $1 AND is_active = TRUE
		GROUP BY priority;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query notification stats for user "+userID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var priority string
		var total, unread int
		if err := rows.Scan(&priority, &total, &unread); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan notification stats row", err)
		}
		stats.ByPriority[priority] = total
		stats.Total += total
		stats.Unread += unread
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating notification stats rows", err)
	}
	return stats, nil
}

func (r *PgxNotificationRepository) HasRecentNotification(ctx context.Context, userID string, notifType string, referenceType string, referenceID string, since time.Time) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND type = $2 AND reference_type = $3 AND reference_id = $4 AND created_at >= $5
		);
	`
	err := r.Pool.QueryRow(ctx, query, userID, notifType, referenceType, referenceID, since).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check recent notifications", err)
	}
	return exists, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string, now time.Time) error {
	query := `
		UPDATE notifications
		SET read_at = $3
		WHERE notification_id = $1 AND user_id = $2 AND read_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, notificationID, userID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `
		UPDATE notifications
		SET read_at = $2
		WHERE user_id = $1 AND is_active = TRUE AND read_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, now)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark notifications read for user "+userID, err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string, userID string) error {
	query := `DELETE FROM notifications WHERE notification_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete notification "+notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time, now time.Time) (int, error) {
	query := `
		DELETE FROM notifications
		WHERE created_at < $1 AND expires_at IS NOT NULL AND expires_at < $2;
	`
	tag, err := r.Pool.Exec(ctx, query, cutoff, now)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete expired notifications", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := `DELETE FROM notifications WHERE read_at IS NOT NULL AND read_at < $1;`
	tag, err := r.Pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete read notifications", err)
	}
	return int(tag.RowsAffected()), nil
}
