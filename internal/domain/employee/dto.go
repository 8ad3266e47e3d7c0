package employee

type EmployeeResponse struct {
	ID                string  `json:"id"`
	EmployeeCode      string  `json:"employee_code"`
	FullName          string  `json:"full_name"`
	HourlyRate        string  `json:"hourly_rate"`
	EmploymentStatus  string  `json:"employment_status"`
	PrimaryWorkSiteID *string `json:"primary_work_site_id,omitempty"`
}

type ListEmployeeResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
