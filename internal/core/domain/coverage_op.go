package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoverageAction names the two ledger operations.
type CoverageAction string

const (
	CoverageAdd    CoverageAction = "ADD"
	CoverageRemove CoverageAction = "REMOVE"
)

// CoverageItem is one student in a bulk coverage operation. Entity carries
// the resolved wrapper row for removals, or a candidate row (fresh ID) to be
// created lazily for additions.
type CoverageItem struct {
	StudentID   string
	StudentName string
	Entity      Entity
	Amount      decimal.Decimal
	Breakdown   *PremiumBreakdown
}

// CoverageOperation describes one bulk add/remove to be applied atomically:
// attachments, balance update, endorsement, audit rows and premium records
// all commit or roll back together.
type CoverageOperation struct {
	PolicyID        string
	Action          CoverageAction
	TransactionType TransactionType
	EffectiveDate   time.Time
	Description     string
	Items           []CoverageItem
	PerformedBy     string
}

// CoverageFailure reports one student that could not be processed. Failures
// are collected, never abort the batch.
type CoverageFailure struct {
	StudentID   string `json:"studentID"`
	StudentName string `json:"studentName"`
	Reason      string `json:"reason"`
}

// CoverageSuccess reports one student that was processed, with the amount
// debited or credited for it.
type CoverageSuccess struct {
	StudentID   string            `json:"studentID"`
	StudentName string            `json:"studentName"`
	EntityID    string            `json:"entityID"`
	Amount      decimal.Decimal   `json:"amount"`
	Breakdown   *PremiumBreakdown `json:"breakdown,omitempty"`
}

// CoverageOutcome is the aggregate result of one committed bulk operation.
// Endorsement is nil when no item succeeded (nothing was persisted).
type CoverageOutcome struct {
	Succeeded     []CoverageSuccess `json:"succeeded"`
	Failed        []CoverageFailure `json:"failed"`
	Endorsement   *Endorsement      `json:"endorsement,omitempty"`
	Documents     []Document        `json:"documents,omitempty"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	BalanceBefore decimal.Decimal   `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal   `json:"balanceAfter"`
}
