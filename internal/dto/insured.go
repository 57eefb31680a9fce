package dto

// CreateEmployeeRequest defines the data needed to create an employee record.
type CreateEmployeeRequest struct {
	CompanyID   string `json:"companyID" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Designation string `json:"designation"`
}

// CreateVesselRequest defines the data needed to create a vessel record.
type CreateVesselRequest struct {
	CompanyID          string `json:"companyID" binding:"required"`
	Name               string `json:"name" binding:"required"`
	RegistrationNumber string `json:"registrationNumber"`
	VesselType         string `json:"vesselType"`
}

// CreateVehicleRequest defines the data needed to create a vehicle record.
type CreateVehicleRequest struct {
	CompanyID          string `json:"companyID" binding:"required"`
	Make               string `json:"make" binding:"required"`
	Model              string `json:"model" binding:"required"`
	RegistrationNumber string `json:"registrationNumber"`
}
