package repositories

import (
	"context"

	"github.com/policyzen/policyzen_app/internal/core/domain"
)

// EntityReader defines read operations over coverage entity wrappers
type EntityReader interface {
	// FindEntityByID retrieves a specific entity wrapper by its identifier.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// FindEntityByRef retrieves the wrapper for an underlying record, if one exists.
	FindEntityByRef(ctx context.Context, ref domain.EntityRef) (*domain.Entity, error)

	// FindEntitiesByIDs retrieves multiple entity wrappers keyed by ID.
	FindEntitiesByIDs(ctx context.Context, entityIDs []string) (map[string]domain.Entity, error)

	// ListEntitiesByCompany retrieves a paginated list of entities for a company.
	ListEntitiesByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.Entity, error)
}

// EntityWriter defines write operations over coverage entity wrappers
type EntityWriter interface {
	// SaveEntity persists a new entity wrapper.
	SaveEntity(ctx context.Context, entity domain.Entity) error
}

// EntityRepositoryFacade combines all entity wrapper repository interfaces
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}

// CompanyRepositoryFacade defines operations for company records
type CompanyRepositoryFacade interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
	SaveCompany(ctx context.Context, company domain.Company) error
	UpdateCompany(ctx context.Context, company domain.Company) error
	DeleteCompany(ctx context.Context, companyID string) error
}

// StudentReader defines read operations for student records
type StudentReader interface {
	// FindStudentByID retrieves a specific student by its identifier.
	FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error)

	// FindStudentsByIDs retrieves multiple students keyed by ID. IDs with no
	// matching row are absent from the map.
	FindStudentsByIDs(ctx context.Context, studentIDs []string) (map[string]domain.Student, error)

	// ListStudents retrieves a paginated list of students for a company.
	ListStudents(ctx context.Context, companyID string, limit int, offset int) ([]domain.Student, error)
}

// StudentWriter defines write operations for student records
type StudentWriter interface {
	SaveStudent(ctx context.Context, student domain.Student) error
	UpdateStudent(ctx context.Context, student domain.Student) error
	DeleteStudent(ctx context.Context, studentID string) error
}

// StudentRepositoryFacade combines all student repository interfaces
type StudentRepositoryFacade interface {
	StudentReader
	StudentWriter
}

// InsuredRecordRepositoryFacade defines operations for the non-student
// insured record types (employees, vessels, vehicles).
type InsuredRecordRepositoryFacade interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	FindVesselByID(ctx context.Context, vesselID string) (*domain.Vessel, error)
	SaveVessel(ctx context.Context, vessel domain.Vessel) error

	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
}
