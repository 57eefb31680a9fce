package mapping

import (
	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/models"
)

// ToModelPolicy converts a domain Policy to a model Policy
func ToModelPolicy(d domain.Policy) models.Policy {
	return models.Policy{
		PolicyID:      d.PolicyID,
		PolicyNumber:  d.PolicyNumber,
		InsuranceType: string(d.InsuranceType),
		Provider:      d.Provider,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		SumInsured:    d.SumInsured,
		PremiumAmount: d.PremiumAmount,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPolicy converts a model Policy to a domain Policy
func ToDomainPolicy(m models.Policy) domain.Policy {
	return domain.Policy{
		PolicyID:      m.PolicyID,
		PolicyNumber:  m.PolicyNumber,
		InsuranceType: domain.InsuranceType(m.InsuranceType),
		Provider:      m.Provider,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		SumInsured:    m.SumInsured,
		PremiumAmount: m.PremiumAmount,
		Status:        domain.PolicyStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAttachment converts a domain CoverageAttachment to its model
func ToModelAttachment(d domain.CoverageAttachment) models.CoverageAttachment {
	return models.CoverageAttachment{
		AttachmentID:    d.AttachmentID,
		PolicyID:        d.PolicyID,
		EntityID:        d.EntityID,
		EffectiveDate:   d.EffectiveDate,
		TerminationDate: d.TerminationDate,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttachment converts a model CoverageAttachment to its domain form
func ToDomainAttachment(m models.CoverageAttachment) domain.CoverageAttachment {
	return domain.CoverageAttachment{
		AttachmentID:    m.AttachmentID,
		PolicyID:        m.PolicyID,
		EntityID:        m.EntityID,
		EffectiveDate:   m.EffectiveDate,
		TerminationDate: m.TerminationDate,
		Status:          domain.AttachmentStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEndorsement converts a domain Endorsement to its model
func ToModelEndorsement(d domain.Endorsement) models.Endorsement {
	return models.Endorsement{
		EndorsementID:     d.EndorsementID,
		PolicyID:          d.PolicyID,
		EndorsementNumber: d.EndorsementNumber,
		Description:       d.Description,
		EffectiveDate:     d.EffectiveDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEndorsement converts a model Endorsement to its domain form
func ToDomainEndorsement(m models.Endorsement) domain.Endorsement {
	return domain.Endorsement{
		EndorsementID:     m.EndorsementID,
		PolicyID:          m.PolicyID,
		EndorsementNumber: m.EndorsementNumber,
		Description:       m.Description,
		EffectiveDate:     m.EffectiveDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
