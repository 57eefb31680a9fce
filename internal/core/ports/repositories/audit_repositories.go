package repositories

import (
	"context"
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// AuditReader defines read operations over the append-only audit trail.
// Audit rows are written only inside a coverage operation's transaction.
type AuditReader interface {
	// FindAuditEntryByID retrieves a single audit entry.
	FindAuditEntryByID(ctx context.Context, auditID string) (*domain.AuditEntry, error)

	// ListAuditEntriesByPolicy retrieves the audit history for a policy,
	// newest first, returning rows created strictly before the cursor.
	ListAuditEntriesByPolicy(ctx context.Context, policyID string, before time.Time, limit int) ([]domain.AuditEntry, error)

	// ListAuditEntriesByEntity retrieves the audit history for one covered
	// entity, newest first, returning rows created strictly before the cursor.
	ListAuditEntriesByEntity(ctx context.Context, entityID string, before time.Time, limit int) ([]domain.AuditEntry, error)

	// ListAuditEntriesByEndorsement retrieves the audit rows written under one endorsement.
	ListAuditEntriesByEndorsement(ctx context.Context, endorsementID string) ([]domain.AuditEntry, error)

	// ListRecentAuditEntries retrieves the newest audit rows across all
	// policies. Feeds the dashboard activity feed.
	ListRecentAuditEntries(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// AuditRepositoryFacade combines all audit repository interfaces
type AuditRepositoryFacade interface {
	AuditReader
}
