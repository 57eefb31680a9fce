package mapping

import (
	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/policyzen/policyzen_app/internal/models"
)

// ToModelEntity converts a domain Entity to a model Entity
func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		EntityID:    d.EntityID,
		CompanyID:   d.CompanyID,
		Type:        string(d.Type),
		RefID:       d.RefID,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntity converts a model Entity to a domain Entity
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:    m.EntityID,
		CompanyID:   m.CompanyID,
		Type:        domain.EntityType(m.Type),
		RefID:       m.RefID,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		Registration: d.Registration,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Address:      d.Address,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		Registration: m.Registration,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		Address:      m.Address,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStudent converts a domain Student to a model Student
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		StudentID:     d.StudentID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		Email:         d.Email,
		StudentCode:   d.StudentCode,
		SumInsured:    d.SumInsured,
		DateOfJoining: d.DateOfJoining,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStudent converts a model Student to a domain Student
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		StudentID:     m.StudentID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		Email:         m.Email,
		StudentCode:   m.StudentCode,
		SumInsured:    m.SumInsured,
		DateOfJoining: m.DateOfJoining,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Email:       m.Email,
		Designation: m.Designation,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVessel converts a model Vessel to a domain Vessel
func ToDomainVessel(m models.Vessel) domain.Vessel {
	return domain.Vessel{
		VesselID:           m.VesselID,
		CompanyID:          m.CompanyID,
		Name:               m.Name,
		RegistrationNumber: m.RegistrationNumber,
		VesselType:         m.VesselType,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVehicle converts a model Vehicle to a domain Vehicle
func ToDomainVehicle(m models.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		VehicleID:          m.VehicleID,
		CompanyID:          m.CompanyID,
		Make:               m.Make,
		Model:              m.Model,
		RegistrationNumber: m.RegistrationNumber,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Status:       domain.UserStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
