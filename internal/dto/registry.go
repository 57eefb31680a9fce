package dto

import (
	"time"

	"github.com/policyzen/policyzen_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCompanyRequest defines the data needed to create a company.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	Registration string `json:"registration"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}

// UpdateCompanyRequest defines the data allowed for updating a company.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
	Address      *string `json:"address"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID    string    `json:"companyID"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateStudentRequest defines the data needed to create a student record.
// SumInsured defaults to 1,000,000 and DateOfJoining to today when omitted.
type CreateStudentRequest struct {
	CompanyID     string           `json:"companyID" binding:"required"`
	Name          string           `json:"name" binding:"required"`
	Email         string           `json:"email" binding:"omitempty,email"`
	StudentCode   string           `json:"studentCode"`
	SumInsured    *decimal.Decimal `json:"sumInsured"`
	DateOfJoining *time.Time       `json:"dateOfJoining"`
}

// UpdateStudentRequest defines the data allowed for updating a student.
type UpdateStudentRequest struct {
	Name          *string          `json:"name"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	StudentCode   *string          `json:"studentCode"`
	SumInsured    *decimal.Decimal `json:"sumInsured"`
	DateOfJoining *time.Time       `json:"dateOfJoining"`
}

// StudentResponse defines the data returned for a student.
type StudentResponse struct {
	StudentID     string          `json:"studentID"`
	CompanyID     string          `json:"companyID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	StudentCode   string          `json:"studentCode"`
	SumInsured    decimal.Decimal `json:"sumInsured"`
	DateOfJoining *time.Time      `json:"dateOfJoining,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// EntityResponse defines the data returned for a coverage entity wrapper.
type EntityResponse struct {
	EntityID    string `json:"entityID"`
	CompanyID   string `json:"companyID"`
	Type        string `json:"type"`
	RefID       string `json:"refID"`
	Description string `json:"description"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Registration: c.Registration,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Address:      c.Address,
		CreatedAt:    c.CreatedAt,
	}
}

// ToStudentResponse converts a domain.Student to StudentResponse DTO.
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID:     s.StudentID,
		CompanyID:     s.CompanyID,
		Name:          s.Name,
		Email:         s.Email,
		StudentCode:   s.StudentCode,
		SumInsured:    s.SumInsured,
		DateOfJoining: s.DateOfJoining,
		CreatedAt:     s.CreatedAt,
	}
}

// ToStudentResponses converts a slice of domain.Student to []StudentResponse.
func ToStudentResponses(students []domain.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i := range students {
		responses[i] = ToStudentResponse(&students[i])
	}
	return responses
}

// ToEntityResponse converts a domain.Entity to EntityResponse DTO.
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		EntityID:    e.EntityID,
		CompanyID:   e.CompanyID,
		Type:        string(e.Type),
		RefID:       e.RefID,
		Description: e.Description,
	}
}
