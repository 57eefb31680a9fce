package services

import (
	"context"
	"time"

	"github.com/policyzen/policyzen_app/internal/dto"
)

// ExpiryScannerSvc defines the scheduled scanner passes. Each pass runs in
// its own transaction; a failing pass is logged and does not block the others.
type ExpiryScannerSvc interface {
	// CheckPolicyExpiries emits expiry-warning notifications for ACTIVE
	// policies approaching their end date and marks overdue ones EXPIRED.
	CheckPolicyExpiries(ctx context.Context, now time.Time) (*dto.ScanRunResponse, error)

	// CheckEndorsementAlerts emits alerts for endorsements becoming
	// effective within the next week or effective today.
	CheckEndorsementAlerts(ctx context.Context, now time.Time) (*dto.ScanRunResponse, error)

	// CleanupOldNotifications prunes stale notifications.
	CleanupOldNotifications(ctx context.Context, now time.Time) (*dto.CleanupRunResponse, error)
}
