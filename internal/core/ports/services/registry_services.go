package services

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/dto"
)

// CompanySvcFacade defines operations for company records.
type CompanySvcFacade interface {
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req dto.UpdateCompanyRequest, requestingUserID string) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID string, requestingUserID string) error
}

// StudentSvcFacade defines operations for student records.
type StudentSvcFacade interface {
	GetStudentByID(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context, companyID string, limit int, offset int) ([]domain.Student, error)
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest, creatorUserID string) (*domain.Student, error)
	UpdateStudent(ctx context.Context, studentID string, req dto.UpdateStudentRequest, requestingUserID string) (*domain.Student, error)
	DeleteStudent(ctx context.Context, studentID string, requestingUserID string) error

	// ListStudentPremiums retrieves the student's premium history, newest first.
	ListStudentPremiums(ctx context.Context, studentID string) ([]domain.StudentPolicyPremium, error)
}

// InsuredSvcFacade defines operations for the non-student insurable records.
type InsuredSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	CreateVessel(ctx context.Context, req dto.CreateVesselRequest, creatorUserID string) (*domain.Vessel, error)
	GetVesselByID(ctx context.Context, vesselID string) (*domain.Vessel, error)

	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
}

// EntitySvcFacade defines operations over coverage entity wrappers.
type EntitySvcFacade interface {
	// GetEntityByID retrieves an entity wrapper.
	GetEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// ResolveEntity finds the wrapper for a backing record, or builds an
	// unsaved candidate wrapper when none exists yet.
	ResolveEntity(ctx context.Context, ref domain.EntityRef) (*domain.Entity, bool, error)

	// DescribeEntity returns the human-readable description and owning
	// company ID for a backing record.
	DescribeEntity(ctx context.Context, ref domain.EntityRef) (description string, companyID string, err error)
}
