package dtos

import "time"

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Location     string `json:"location"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range"`
}

type JobStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// JobView is the flat row the public board renders: one job joined with its
// organization's display name. Decoded once at the service boundary so
// nothing downstream deals with nested association shapes.
type JobView struct {
	ID               string    `json:"id"`
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         *string   `json:"location"`
	Requirements     *string   `json:"requirements"`
	SalaryRange      *string   `json:"salary_range"`
	Status           string    `json:"status"`
	Remote           bool      `json:"remote"`
	CreatedAt        time.Time `json:"created_at"`
}
