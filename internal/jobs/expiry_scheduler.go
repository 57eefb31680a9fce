// Package jobs runs the recurring background passes that keep policy and
// notification state current without an external cron.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
)

// ExpiryScheduler fires the expiry and endorsement scans once a day and the
// notification cleanup once a week. Each pass is independent; one failing
// pass is logged and does not stop the others.
type ExpiryScheduler struct {
	scanner portssvc.ExpiryScannerSvc
	logger  *slog.Logger

	scanHour    int
	cleanupHour int

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewExpiryScheduler builds a scheduler around the scanner service.
// scanHour and cleanupHour are local-time fire hours (0-23).
func NewExpiryScheduler(scanner portssvc.ExpiryScannerSvc, logger *slog.Logger, scanHour, cleanupHour int) *ExpiryScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpiryScheduler{
		scanner:     scanner,
		logger:      logger,
		scanHour:    scanHour,
		cleanupHour: cleanupHour,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start launches the scheduler loop. It returns immediately; the loop runs
// until Stop is called or ctx is cancelled.
func (s *ExpiryScheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop signals the loop to exit and waits for the in-flight pass to finish.
func (s *ExpiryScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

func (s *ExpiryScheduler) run(ctx context.Context) {
	defer close(s.doneCh)

	// Run once at startup so a restart never skips a day.
	s.runScans(ctx)

	for {
		now := time.Now()
		next := s.nextFire(now)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.stopCh:
			timer.Stop()
			return
		case fired := <-timer.C:
			s.runScans(ctx)
			if fired.Weekday() == time.Sunday && fired.Hour() == s.cleanupHour {
				s.runCleanup(ctx)
			}
		}
	}
}

// nextFire picks the earlier of the next daily scan mark and, on the path to
// Sunday, the next weekly cleanup mark.
func (s *ExpiryScheduler) nextFire(now time.Time) time.Time {
	scan := time.Date(now.Year(), now.Month(), now.Day(), s.scanHour, 0, 0, 0, now.Location())
	if !scan.After(now) {
		scan = scan.AddDate(0, 0, 1)
	}

	cleanup := time.Date(now.Year(), now.Month(), now.Day(), s.cleanupHour, 0, 0, 0, now.Location())
	for !cleanup.After(now) || cleanup.Weekday() != time.Sunday {
		cleanup = cleanup.AddDate(0, 0, 1)
	}

	if cleanup.Before(scan) {
		return cleanup
	}
	return scan
}

func (s *ExpiryScheduler) runScans(ctx context.Context) {
	now := time.Now()

	if result, err := s.scanner.CheckPolicyExpiries(ctx, now); err != nil {
		s.logger.Error("Policy expiry scan failed", "error", err.Error())
	} else {
		s.logger.Info("Policy expiry scan complete",
			"notified", result.NotificationsCreated)
	}

	if result, err := s.scanner.CheckEndorsementAlerts(ctx, now); err != nil {
		s.logger.Error("Endorsement alert scan failed", "error", err.Error())
	} else {
		s.logger.Info("Endorsement alert scan complete", "notified", result.NotificationsCreated)
	}
}

func (s *ExpiryScheduler) runCleanup(ctx context.Context) {
	result, err := s.scanner.CleanupOldNotifications(ctx, time.Now())
	if err != nil {
		s.logger.Error("Notification cleanup failed", "error", err.Error())
		return
	}
	s.logger.Info("Notification cleanup complete",
		"expiredDeleted", result.ExpiredDeleted, "readDeleted", result.ReadDeleted)
}
