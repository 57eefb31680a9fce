package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	portssvc "github.com/policyzen/policyzen_app/internal/core/ports/services"
)

// entityServiceImpl implements the EntitySvcFacade interface. It resolves
// tagged entity references against the per-type backing tables.
type entityServiceImpl struct {
	BaseService
	entityRepo  portsrepo.EntityRepositoryFacade
	studentRepo portsrepo.StudentReader
	insuredRepo portsrepo.InsuredRecordRepositoryFacade
}

// NewEntityServiceImpl creates a new entity service
func NewEntityServiceImpl(
	entityRepo portsrepo.EntityRepositoryFacade,
	studentRepo portsrepo.StudentReader,
	insuredRepo portsrepo.InsuredRecordRepositoryFacade,
) portssvc.EntitySvcFacade {
	return &entityServiceImpl{
		entityRepo:  entityRepo,
		studentRepo: studentRepo,
		insuredRepo: insuredRepo,
	}
}

// Ensure entityServiceImpl implements the EntitySvcFacade interface
var _ portssvc.EntitySvcFacade = (*entityServiceImpl)(nil)

func (s *entityServiceImpl) GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	return s.entityRepo.FindEntityByID(ctx, entityID)
}

// ResolveEntity finds the wrapper row for a backing record. When no wrapper
// exists yet it returns an unsaved candidate (created=false) built from the
// backing record's details; the caller decides whether to persist it.
func (s *entityServiceImpl) ResolveEntity(ctx context.Context, ref domain.EntityRef) (*domain.Entity, bool, error) {
	if !domain.ValidEntityType(ref.Type) {
		return nil, false, apperrors.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("unknown entity type %q", ref.Type), apperrors.ErrValidation)
	}

	entity, err := s.entityRepo.FindEntityByRef(ctx, ref)
	if err == nil {
		return entity, true, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	description, companyID, err := s.DescribeEntity(ctx, ref)
	if err != nil {
		return nil, false, err
	}
	return &domain.Entity{
		EntityID:    uuid.NewString(),
		CompanyID:   companyID,
		Type:        ref.Type,
		RefID:       ref.RefID,
		Description: description,
	}, false, nil
}

// DescribeEntity looks the backing record up in its own table and returns the
// wrapper description and owning company.
func (s *entityServiceImpl) DescribeEntity(ctx context.Context, ref domain.EntityRef) (string, string, error) {
	switch ref.Type {
	case domain.EntityStudent:
		student, err := s.studentRepo.FindStudentByID(ctx, ref.RefID)
		if err != nil {
			return "", "", err
		}
		return "Student: " + student.Name, student.CompanyID, nil
	case domain.EntityEmployee:
		employee, err := s.insuredRepo.FindEmployeeByID(ctx, ref.RefID)
		if err != nil {
			return "", "", err
		}
		return "Employee: " + employee.Name, employee.CompanyID, nil
	case domain.EntityVessel:
		vessel, err := s.insuredRepo.FindVesselByID(ctx, ref.RefID)
		if err != nil {
			return "", "", err
		}
		return "Vessel: " + vessel.Name, vessel.CompanyID, nil
	case domain.EntityVehicle:
		vehicle, err := s.insuredRepo.FindVehicleByID(ctx, ref.RefID)
		if err != nil {
			return "", "", err
		}
		return fmt.Sprintf("Vehicle: %s %s (%s)", vehicle.Make, vehicle.Model, vehicle.RegistrationNumber), vehicle.CompanyID, nil
	default:
		return "", "", apperrors.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("unknown entity type %q", ref.Type), apperrors.ErrValidation)
	}
}
