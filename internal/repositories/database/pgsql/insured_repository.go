package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

// PgxInsuredRecordRepository covers the non-student insured record tables.
type PgxInsuredRecordRepository struct {
	BaseRepository
}

func newPgxInsuredRecordRepository(pool *pgxpool.Pool) portsrepo.InsuredRecordRepositoryFacade {
	return &PgxInsuredRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InsuredRecordRepositoryFacade = (*PgxInsuredRecordRepository)(nil)

func (r *PgxInsuredRecordRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, company_id, name, email, designation, created_at, created_by, last_updated_at, last_updated_by
		FROM employees
		WHERE employee_id = $1;
	`
	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID,
		&m.CompanyID,
		&m.Name,
		&m.Email,
		&m.Designation,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee "+employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *PgxInsuredRecordRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, company_id, name, email, designation, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.CompanyID,
		employee.Name,
		employee.Email,
		employee.Designation,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save employee "+employee.EmployeeID, err)
	}
	return nil
}

func (r *PgxInsuredRecordRepository) FindVesselByID(ctx context.Context, vesselID string) (*domain.Vessel, error) {
	query := `
		SELECT vessel_id, company_id, name, registration_number, vessel_type, created_at, created_by, last_updated_at, last_updated_by
		FROM vessels
		WHERE vessel_id = $1;
	`
	var m models.Vessel
	err := r.Pool.QueryRow(ctx, query, vesselID).Scan(
		&m.VesselID,
		&m.CompanyID,
		&m.Name,
		&m.RegistrationNumber,
		&m.VesselType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vessel "+vesselID, err)
	}
	vessel := mapping.ToDomainVessel(m)
	return &vessel, nil
}

func (r *PgxInsuredRecordRepository) SaveVessel(ctx context.Context, vessel domain.Vessel) error {
	query := `
		INSERT INTO vessels (vessel_id, company_id, name, registration_number, vessel_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		vessel.VesselID,
		vessel.CompanyID,
		vessel.Name,
		vessel.RegistrationNumber,
		vessel.VesselType,
		vessel.CreatedAt,
		vessel.CreatedBy,
		vessel.LastUpdatedAt,
		vessel.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save vessel "+vessel.VesselID, err)
	}
	return nil
}

func (r *PgxInsuredRecordRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `
		SELECT vehicle_id, company_id, make, model, registration_number, created_at, created_by, last_updated_at, last_updated_by
		FROM vehicles
		WHERE vehicle_id = $1;
	`
	var m models.Vehicle
	err := r.Pool.QueryRow(ctx, query, vehicleID).Scan(
		&m.VehicleID,
		&m.CompanyID,
		&m.Make,
		&m.Model,
		&m.RegistrationNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vehicle "+vehicleID, err)
	}
	vehicle := mapping.ToDomainVehicle(m)
	return &vehicle, nil
}

func (r *PgxInsuredRecordRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, company_id, make, model, registration_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID,
		vehicle.CompanyID,
		vehicle.Make,
		vehicle.Model,
		vehicle.RegistrationNumber,
		vehicle.CreatedAt,
		vehicle.CreatedBy,
		vehicle.LastUpdatedAt,
		vehicle.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save vehicle "+vehicle.VehicleID, err)
	}
	return nil
}
