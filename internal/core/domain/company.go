package domain

// Company owns insurable records (students, employees, vessels, vehicles).
type Company struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	AuditFields
}
