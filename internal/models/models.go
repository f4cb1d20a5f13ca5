package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job status values. Inactive jobs stay in the organization's own list but
// are hidden from the public board.
const (
	JobStatusActive   = "active"
	JobStatusInactive = "inactive"
)

// Application status values. Pending is the only initial state. The status
// is a plain enum, not a guarded state machine: an organization may re-open
// a rejected application, so any value is reachable from any other.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Organization is an NGO account. Linked one-to-one to an authentication
// identity via UserID; the auth tier itself lives outside this service.
type Organization struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string `gorm:"uniqueIndex;not null" json:"user_id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Type      string `json:"type"`
	FocusArea string `json:"focus_area"`

	// 'omitempty' prevents infinite loops when fetching an Organization -> Jobs -> Organization -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key
	OrganizationID string `gorm:"index;not null" json:"organization_id"`
	// Association: GORM needs Preload() to fill this
	Organization Organization `json:"organization"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// A nil Location classifies the job as remote, same as a blank one.
	Location     *string `json:"location"`
	Requirements *string `gorm:"type:text" json:"requirements"`
	SalaryRange  *string `json:"salary_range"`
	Status       string  `gorm:"default:'active'" json:"status"`
}

// Application captures the applicant's name and email at submission time.
// They are denormalized on purpose: the row must keep rendering even if the
// account behind it changes or disappears.
type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID string `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	Job   Job    `json:"-"`

	ApplicantID    string  `gorm:"index" json:"applicant_id"`
	ApplicantEmail string  `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_email"`
	ApplicantName  string  `json:"applicant_name"`
	ResumeURL      *string `json:"resume_url"`
	Status         string  `gorm:"default:'pending'" json:"status"`
	Notes          *string `gorm:"type:text" json:"notes"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
