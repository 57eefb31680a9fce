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

// insuredServiceImpl implements the InsuredSvcFacade interface
type insuredServiceImpl struct {
	BaseService
	insuredRepo portsrepo.InsuredRecordRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewInsuredServiceImpl creates a new insured record service
func NewInsuredServiceImpl(insuredRepo portsrepo.InsuredRecordRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) portssvc.InsuredSvcFacade {
	return &insuredServiceImpl{insuredRepo: insuredRepo, companyRepo: companyRepo}
}

// Ensure insuredServiceImpl implements the InsuredSvcFacade interface
var _ portssvc.InsuredSvcFacade = (*insuredServiceImpl)(nil)

func (s *insuredServiceImpl) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		AuditFields: newAuditFields(creatorUserID, time.Now()),
	}
	if err := s.insuredRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", "company_id", req.CompanyID)
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", "employee_id", employee.EmployeeID)
	return &employee, nil
}

func (s *insuredServiceImpl) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.insuredRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *insuredServiceImpl) CreateVessel(ctx context.Context, req dto.CreateVesselRequest, creatorUserID string) (*domain.Vessel, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	vessel := domain.Vessel{
		VesselID:           uuid.NewString(),
		CompanyID:          req.CompanyID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		VesselType:         req.VesselType,
		AuditFields:        newAuditFields(creatorUserID, time.Now()),
	}
	if err := s.insuredRepo.SaveVessel(ctx, vessel); err != nil {
		s.LogError(ctx, err, "Failed to save vessel", "company_id", req.CompanyID)
		return nil, err
	}

	s.LogInfo(ctx, "Vessel created", "vessel_id", vessel.VesselID)
	return &vessel, nil
}

func (s *insuredServiceImpl) GetVesselByID(ctx context.Context, vesselID string) (*domain.Vessel, error) {
	return s.insuredRepo.FindVesselByID(ctx, vesselID)
}

func (s *insuredServiceImpl) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	vehicle := domain.Vehicle{
		VehicleID:          uuid.NewString(),
		CompanyID:          req.CompanyID,
		Make:               req.Make,
		Model:              req.Model,
		RegistrationNumber: req.RegistrationNumber,
		AuditFields:        newAuditFields(creatorUserID, time.Now()),
	}
	if err := s.insuredRepo.SaveVehicle(ctx, vehicle); err != nil {
		s.LogError(ctx, err, "Failed to save vehicle", "company_id", req.CompanyID)
		return nil, err
	}

	s.LogInfo(ctx, "Vehicle created", "vehicle_id", vehicle.VehicleID)
	return &vehicle, nil
}

func (s *insuredServiceImpl) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	return s.insuredRepo.FindVehicleByID(ctx, vehicleID)
}

func newAuditFields(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
