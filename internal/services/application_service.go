package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ngofreelancing/platform-api/internal/apperrors"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/ngofreelancing/platform-api/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// ParseApplicationStatus converts a raw string to a known status, returning
// an error for unknown values.
func ParseApplicationStatus(s string) (string, error) {
	switch s {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return s, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Submit creates a pending application for the signed-in applicant. At most
// one application per (job, applicant email) pair: a prior match returns
// ErrAlreadyApplied. The existence check races against concurrent
// submissions from the same identity; the unique index on
// (job_id, applicant_email) is the backstop, and a violation from the
// insert maps to ErrAlreadyApplied as well.
func (s *ApplicationService) Submit(ctx context.Context, jobID string, identity *auth.Identity, req *dtos.ApplicationSubmissionRequest) (*models.Application, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var existing int64
	err = s.DB.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ? AND applicant_email = ?", jobID, identity.Email).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		JobID:          jobID,
		ApplicantID:    identity.UserID,
		ApplicantEmail: identity.Email,
		ApplicantName:  identity.Name,
		ResumeURL:      optional(req.ResumeURL),
		Status:         models.ApplicationStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, err
	}
	return app, nil
}

// ListForApplicant returns the applicant's dashboard rows, newest first.
// Dangling job or organization references degrade to placeholders.
func (s *ApplicationService) ListForApplicant(ctx context.Context, identity *auth.Identity) ([]dtos.ApplicantApplicationView, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job.Organization").
		Where("applicant_email = ?", identity.Email).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	views := make([]dtos.ApplicantApplicationView, 0, len(apps))
	for _, app := range apps {
		view := dtos.ApplicantApplicationView{
			ID:               app.ID,
			JobID:            app.JobID,
			Status:           app.Status,
			CreatedAt:        app.CreatedAt,
			JobTitle:         "Unknown Job",
			OrganizationName: "Unknown Organization",
			JobLocation:      "Remote",
			Notes:            app.Notes,
		}
		if app.Job.ID != "" {
			view.JobTitle = app.Job.Title
			if app.Job.Location != nil && strings.TrimSpace(*app.Job.Location) != "" {
				view.JobLocation = *app.Job.Location
			}
			if app.Job.Organization.Name != "" {
				view.OrganizationName = app.Job.Organization.Name
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ListForOrganization returns every application targeting the organization's
// jobs, newest first. An organization owning zero jobs gets an empty list,
// not an error.
func (s *ApplicationService) ListForOrganization(ctx context.Context, orgID string) ([]dtos.OrganizationApplicationView, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Select("id", "title").
		Where("organization_id = ?", orgID).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return []dtos.OrganizationApplicationView{}, nil
	}

	jobIDs := make([]string, 0, len(jobs))
	titles := make(map[string]string, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
		titles[job.ID] = job.Title
	}

	var apps []models.Application
	err = s.DB.WithContext(ctx).
		Where("job_id IN ?", jobIDs).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	views := make([]dtos.OrganizationApplicationView, 0, len(apps))
	for _, app := range apps {
		title, ok := titles[app.JobID]
		if !ok {
			title = "Unknown Job"
		}
		views = append(views, dtos.OrganizationApplicationView{
			ID:             app.ID,
			JobID:          app.JobID,
			JobTitle:       title,
			ApplicantName:  app.ApplicantName,
			ApplicantEmail: app.ApplicantEmail,
			ResumeURL:      app.ResumeURL,
			Status:         app.Status,
			Notes:          app.Notes,
			CreatedAt:      app.CreatedAt,
		})
	}
	return views, nil
}

// ListForJob returns one posting's applications, newest first, scoped to the
// owning organization.
func (s *ApplicationService) ListForJob(ctx context.Context, orgID, jobID string) ([]models.Application, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Where("id = ? AND organization_id = ?", jobID, orgID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	var apps []models.Application
	err = s.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus moves an application to a new status and optionally replaces
// the organization's notes. Any known status is reachable from any other;
// the org re-opening a rejected application is a supported flow. Scoped to
// the organization owning the application's job.
func (s *ApplicationService) UpdateStatus(ctx context.Context, orgID, appID, status string, notes *string) (*models.Application, error) {
	parsed, err := ParseApplicationStatus(status)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "status", Msg: err.Error()}
	}

	var app models.Application
	err = s.DB.WithContext(ctx).First(&app, "id = ?", appID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	// Ownership runs through the job: only the org that posted it reviews.
	var owned int64
	err = s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ? AND organization_id = ?", app.JobID, orgID).
		Count(&owned).Error
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, apperrors.ErrNotFound
	}

	app.Status = parsed
	if notes != nil {
		app.Notes = notes
	}
	if err := s.DB.WithContext(ctx).Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Withdraw deletes the applicant's own application. Permitted only while the
// application is still pending; anything else returns ErrInvalidState.
func (s *ApplicationService) Withdraw(ctx context.Context, identity *auth.Identity, appID string) error {
	var app models.Application
	err := s.DB.WithContext(ctx).
		Where("id = ? AND applicant_email = ?", appID, identity.Email).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if app.Status != models.ApplicationStatusPending {
		return apperrors.ErrInvalidState
	}
	return s.DB.WithContext(ctx).Delete(&app).Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Drivers without translated errors report the constraint in the message.
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
