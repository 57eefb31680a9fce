package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
	"github.com/policyzen/policyzen_app/internal/dto"
)

const defaultCompanyPageSize = 50

// companyServiceImpl implements the CompanySvcFacade interface
type companyServiceImpl struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyServiceImpl creates a new company service
func NewCompanyServiceImpl(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyServiceImpl{companyRepo: companyRepo}
}

// Ensure companyServiceImpl implements the CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyServiceImpl)(nil)

func (s *companyServiceImpl) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *companyServiceImpl) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	if limit <= 0 {
		limit = defaultCompanyPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.companyRepo.ListCompanies(ctx, limit, offset)
}

func (s *companyServiceImpl) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := time.Now()
	company := domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         req.Name,
		Registration: req.Registration,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", "name", req.Name)
		return nil, err
	}
	s.LogInfo(ctx, "Company created", "company_id", company.CompanyID)
	return &company, nil
}

func (s *companyServiceImpl) UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, requestingUserID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.ContactEmail != nil {
		company.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		company.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = requestingUserID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", "company_id", companyID)
		return nil, err
	}
	return company, nil
}

func (s *companyServiceImpl) DeleteCompany(ctx context.Context, companyID string, requestingUserID string) error {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		s.LogError(ctx, err, "Failed to delete company", "company_id", companyID)
		return err
	}
	s.LogInfo(ctx, "Company deleted", "company_id", companyID, "deleted_by", requestingUserID)
	return nil
}
