package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditLog mirrors the audit_logs table. Metadata is stored as JSONB.
type AuditLog struct {
	AuditID         string          `json:"auditID"`
	Action          string          `json:"action"`
	EntityType      string          `json:"entityType"`
	EntityID        string          `json:"entityID"`
	PolicyID        string          `json:"policyID"`
	EndorsementID   string          `json:"endorsementID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	BalanceBefore   decimal.Decimal `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Metadata        []byte          `json:"-"`
	PerformedBy     string          `json:"performedBy"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Notification mirrors the notifications table. Data is stored as JSONB.
type Notification struct {
	NotificationID string     `json:"notificationID"`
	UserID         string     `json:"userID"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Priority       string     `json:"priority"`
	ReferenceType  string     `json:"referenceType,omitempty"`
	ReferenceID    string     `json:"referenceID,omitempty"`
	Data           []byte     `json:"-"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Document mirrors the documents table.
type Document struct {
	DocumentID   string    `json:"documentID"`
	OwnerType    string    `json:"ownerType"`
	OwnerID      string    `json:"ownerID"`
	Name         string    `json:"name"`
	FilePath     string    `json:"filePath"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	DocumentType string    `json:"documentType"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// StudentPolicyPremium mirrors the student_policy_premiums table.
type StudentPolicyPremium struct {
	PremiumID      string          `json:"premiumID"`
	StudentID      string          `json:"studentID"`
	PolicyID       string          `json:"policyID"`
	EndorsementID  string          `json:"endorsementID"`
	SumInsured     decimal.Decimal `json:"sumInsured"`
	Rate           decimal.Decimal `json:"rate"`
	AnnualPremium  decimal.Decimal `json:"annualPremium"`
	DateOfJoining  time.Time       `json:"dateOfJoining"`
	DateOfExit     time.Time       `json:"dateOfExit"`
	ProRataDays    int             `json:"proRataDays"`
	ProRataPremium decimal.Decimal `json:"proRataPremium"`
	GSTRate        decimal.Decimal `json:"gstRate"`
	GSTAmount      decimal.Decimal `json:"gstAmount"`
	FinalPremium   decimal.Decimal `json:"finalPremium"`
	PremiumType    string          `json:"premiumType"`
	CreatedAt      time.Time       `json:"createdAt"`
}
