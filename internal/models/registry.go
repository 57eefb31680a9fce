package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entity mirrors the entities table.
type Entity struct {
	EntityID    string `json:"entityID"`
	CompanyID   string `json:"companyID"`
	Type        string `json:"type"`
	RefID       string `json:"refID"`
	Description string `json:"description"`
	AuditFields
}

// Company mirrors the companies table.
type Company struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	AuditFields
}

// Student mirrors the students table.
type Student struct {
	StudentID     string          `json:"studentID"`
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	StudentCode   string          `json:"studentCode"`
	SumInsured    decimal.Decimal `json:"sumInsured"`
	DateOfJoining *time.Time      `json:"dateOfJoining,omitempty"`
	AuditFields
}

// Employee mirrors the employees table.
type Employee struct {
	EmployeeID  string `json:"employeeID"`
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	AuditFields
}

// Vessel mirrors the vessels table.
type Vessel struct {
	VesselID           string `json:"vesselID"`
	CompanyID          string `json:"companyID"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	VesselType         string `json:"vesselType"`
	AuditFields
}

// Vehicle mirrors the vehicles table.
type Vehicle struct {
	VehicleID          string `json:"vehicleID"`
	CompanyID          string `json:"companyID"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registrationNumber"`
	AuditFields
}

// User mirrors the users table.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Status       string `json:"status"`
	AuditFields
}
