package domain

// Employee is an insurable employee record.
type Employee struct {
	EmployeeID  string `json:"employeeID"`
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	AuditFields
}

// Vessel is an insurable marine vessel record.
type Vessel struct {
	VesselID           string `json:"vesselID"`
	CompanyID          string `json:"companyID"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	VesselType         string `json:"vesselType"`
	AuditFields
}

// Vehicle is an insurable vehicle record.
type Vehicle struct {
	VehicleID          string `json:"vehicleID"`
	CompanyID          string `json:"companyID"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registrationNumber"`
	AuditFields
}
