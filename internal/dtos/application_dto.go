package dtos

import "time"

type ApplicationSubmissionRequest struct {
	ResumeURL string `json:"resume_url"`
}

type ApplicationStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	// Notes replaces the organization's note when present; nil leaves it as is.
	Notes *string `json:"notes"`
}

// ApplicantApplicationView is the applicant dashboard row. Dangling
// references degrade to placeholders instead of failing the row.
type ApplicantApplicationView struct {
	ID               string    `json:"id"`
	JobID            string    `json:"job_id"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	JobTitle         string    `json:"job_title"`
	OrganizationName string    `json:"organization_name"`
	JobLocation      string    `json:"job_location"`
	Notes            *string   `json:"notes"`
}

// OrganizationApplicationView is the org-side review row: the application
// plus the title of the job it targets.
type OrganizationApplicationView struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	ResumeURL      *string   `json:"resume_url"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
