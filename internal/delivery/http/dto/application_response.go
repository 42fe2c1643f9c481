package dto

type ApplicationResponse struct {
	ID             string            `json:"id"`
	JobID          string            `json:"job_id"`
	JobTitle       string            `json:"job_title"`
	JobSlug        string            `json:"job_slug"`
	FullName       string            `json:"full_name"`
	NID            string            `json:"nid,omitempty"`
	DOB            string            `json:"dob,omitempty"`
	Gender         string            `json:"gender,omitempty"`
	Mobile         string            `json:"mobile"`
	Email          string            `json:"email"`
	Experience     string            `json:"experience,omitempty"`
	Education      string            `json:"education,omitempty"`
	Source         string            `json:"source,omitempty"`
	Objective      string            `json:"objective,omitempty"`
	CurrentSalary  string            `json:"current_salary,omitempty"`
	ExpectedSalary string            `json:"expected_salary,omitempty"`
	Achievements   string            `json:"achievements,omitempty"`
	Message        string            `json:"message,omitempty"`
	LinkedIn       string            `json:"linkedin,omitempty"`
	Facebook       string            `json:"facebook,omitempty"`
	Portfolio      string            `json:"portfolio,omitempty"`
	ResumePath     string            `json:"resume_path,omitempty"`
	PhotoPath      string            `json:"photo_path,omitempty"`
	Custom         map[string]string `json:"custom_fields,omitempty"`
	Status         string            `json:"status"`
	CreatedAt      string            `json:"created_at"`
}

// ExportApplicantResponse is the row shape of GET /api/applicants.
type ExportApplicantResponse struct {
	ID        string `json:"id"`
	JobTitle  string `json:"job_title"`
	FullName  string `json:"full_name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	AppliedAt string `json:"applied_at"`
}
