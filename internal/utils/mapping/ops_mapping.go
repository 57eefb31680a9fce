package mapping

import (
	"encoding/json"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/models"
)

// ToModelAuditLog converts a domain AuditEntry to a model AuditLog.
// Metadata is marshalled to JSON for the JSONB column.
func ToModelAuditLog(d domain.AuditEntry) (models.AuditLog, error) {
	var meta []byte
	if d.Metadata != nil {
		var err error
		meta, err = json.Marshal(d.Metadata)
		if err != nil {
			return models.AuditLog{}, err
		}
	}
	return models.AuditLog{
		AuditID:         d.AuditID,
		Action:          d.Action,
		EntityType:      d.EntityType,
		EntityID:        d.EntityID,
		PolicyID:        d.PolicyID,
		EndorsementID:   d.EndorsementID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		BalanceBefore:   d.BalanceBefore,
		BalanceAfter:    d.BalanceAfter,
		Metadata:        meta,
		PerformedBy:     d.PerformedBy,
		CreatedAt:       d.CreatedAt,
	}, nil
}

// ToDomainAuditEntry converts a model AuditLog to a domain AuditEntry.
func ToDomainAuditEntry(m models.AuditLog) domain.AuditEntry {
	var meta map[string]any
	if len(m.Metadata) > 0 {
		// A corrupt metadata blob degrades to nil rather than failing the read.
		_ = json.Unmarshal(m.Metadata, &meta)
	}
	return domain.AuditEntry{
		AuditID:         m.AuditID,
		Action:          m.Action,
		EntityType:      m.EntityType,
		EntityID:        m.EntityID,
		PolicyID:        m.PolicyID,
		EndorsementID:   m.EndorsementID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		BalanceBefore:   m.BalanceBefore,
		BalanceAfter:    m.BalanceAfter,
		Metadata:        meta,
		PerformedBy:     m.PerformedBy,
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelNotification converts a domain Notification to its model.
func ToModelNotification(d domain.Notification) (models.Notification, error) {
	var data []byte
	if d.Data != nil {
		var err error
		data, err = json.Marshal(d.Data)
		if err != nil {
			return models.Notification{}, err
		}
	}
	return models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Type:           d.Type,
		Title:          d.Title,
		Message:        d.Message,
		Priority:       string(d.Priority),
		ReferenceType:  d.ReferenceType,
		ReferenceID:    d.ReferenceID,
		Data:           data,
		ReadAt:         d.ReadAt,
		ExpiresAt:      d.ExpiresAt,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
	}, nil
}

// ToDomainNotification converts a model Notification to its domain form.
func ToDomainNotification(m models.Notification) domain.Notification {
	var data map[string]any
	if len(m.Data) > 0 {
		_ = json.Unmarshal(m.Data, &data)
	}
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           m.Type,
		Title:          m.Title,
		Message:        m.Message,
		Priority:       domain.NotificationPriority(m.Priority),
		ReferenceType:  m.ReferenceType,
		ReferenceID:    m.ReferenceID,
		Data:           data,
		ReadAt:         m.ReadAt,
		ExpiresAt:      m.ExpiresAt,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelDocument converts a domain Document to its model.
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:   d.DocumentID,
		OwnerType:    string(d.OwnerType),
		OwnerID:      d.OwnerID,
		Name:         d.Name,
		FilePath:     d.FilePath,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		DocumentType: d.DocumentType,
		UploadedBy:   d.UploadedBy,
		UploadedAt:   d.UploadedAt,
	}
}

// ToDomainDocument converts a model Document to its domain form.
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:   m.DocumentID,
		OwnerType:    domain.DocumentOwnerType(m.OwnerType),
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		FilePath:     m.FilePath,
		FileType:     m.FileType,
		FileSize:     m.FileSize,
		DocumentType: m.DocumentType,
		UploadedBy:   m.UploadedBy,
		UploadedAt:   m.UploadedAt,
	}
}

// ToModelStudentPremium converts a domain StudentPolicyPremium to its model.
func ToModelStudentPremium(d domain.StudentPolicyPremium) models.StudentPolicyPremium {
	return models.StudentPolicyPremium{
		PremiumID:      d.PremiumID,
		StudentID:      d.StudentID,
		PolicyID:       d.PolicyID,
		EndorsementID:  d.EndorsementID,
		SumInsured:     d.Breakdown.SumInsured,
		Rate:           d.Breakdown.Rate,
		AnnualPremium:  d.Breakdown.AnnualPremium,
		DateOfJoining:  d.Breakdown.DateOfJoining,
		DateOfExit:     d.Breakdown.DateOfExit,
		ProRataDays:    d.Breakdown.ProRataDays,
		ProRataPremium: d.Breakdown.ProRataPremium,
		GSTRate:        d.Breakdown.GSTRate,
		GSTAmount:      d.Breakdown.GSTAmount,
		FinalPremium:   d.Breakdown.FinalPremium,
		PremiumType:    string(d.PremiumType),
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainStudentPremium converts a model StudentPolicyPremium to its domain form.
func ToDomainStudentPremium(m models.StudentPolicyPremium) domain.StudentPolicyPremium {
	return domain.StudentPolicyPremium{
		PremiumID:     m.PremiumID,
		StudentID:     m.StudentID,
		PolicyID:      m.PolicyID,
		EndorsementID: m.EndorsementID,
		Breakdown: domain.PremiumBreakdown{
			SumInsured:     m.SumInsured,
			Rate:           m.Rate,
			AnnualPremium:  m.AnnualPremium,
			DateOfJoining:  m.DateOfJoining,
			DateOfExit:     m.DateOfExit,
			ProRataDays:    m.ProRataDays,
			ProRataPremium: m.ProRataPremium,
			GSTRate:        m.GSTRate,
			GSTAmount:      m.GSTAmount,
			FinalPremium:   m.FinalPremium,
		},
		PremiumType: domain.PremiumType(m.PremiumType),
		CreatedAt:   m.CreatedAt,
	}
}
