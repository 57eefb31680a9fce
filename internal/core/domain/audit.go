package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger movement debits or credits the
// policy balance.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Audit actions recorded by the coverage ledger.
const (
	ActionAddStudent    = "ADD_STUDENT"
	ActionRemoveStudent = "REMOVE_STUDENT"
)

// AuditEntry is one append-only audit trail row: one per affected entity per
// ledger transaction. BalanceBefore/BalanceAfter are the whole-batch values,
// stamped identically on every row of a bulk operation.
type AuditEntry struct {
	AuditID         string          `json:"auditID"`
	Action          string          `json:"action"`
	EntityType      string          `json:"entityType"`
	EntityID        string          `json:"entityID"`
	PolicyID        string          `json:"policyID"`
	EndorsementID   string          `json:"endorsementID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	BalanceBefore   decimal.Decimal `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
	PerformedBy     string          `json:"performedBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}
