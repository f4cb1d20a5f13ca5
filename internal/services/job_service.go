package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ngofreelancing/platform-api/internal/apperrors"
	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/ngofreelancing/platform-api/internal/models"
	"gorm.io/gorm"
)

// placeholderOrgName is rendered when a job's organization row is missing.
// A dangling reference never fails the row.
const placeholderOrgName = "Organization"

type JobService struct {
	DB *gorm.DB

	// FallbackAll lists every job when no active one exists. Dev convenience
	// for unseeded databases, gated behind JOBS_FALLBACK_ALL.
	FallbackAll bool
}

func NewJobService(db *gorm.DB, fallbackAll bool) *JobService {
	return &JobService{
		DB:          db,
		FallbackAll: fallbackAll,
	}
}

// ListActiveJobs returns the public job board: active jobs, newest first,
// each joined with its organization's display name.
func (s *JobService) ListActiveJobs(ctx context.Context) ([]dtos.JobView, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Preload("Organization").
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 && s.FallbackAll {
		err := s.DB.WithContext(ctx).
			Preload("Organization").
			Order("created_at DESC").
			Find(&jobs).Error
		if err != nil {
			return nil, err
		}
	}

	views := make([]dtos.JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, toJobView(job))
	}
	return views, nil
}

// ListJobsByOrganization returns every job the organization owns, newest
// first, regardless of status.
func (s *JobService) ListJobsByOrganization(ctx context.Context, orgID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob validates and inserts a new posting for the organization. Title
// and description must be non-blank; optional fields are stored as NULL when
// blank so the remote classification keeps working.
func (s *JobService) CreateJob(ctx context.Context, orgID string, req *dtos.JobCreationRequest) (*models.Job, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &apperrors.ValidationError{Field: "title", Msg: "title is required"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, &apperrors.ValidationError{Field: "description", Msg: "description is required"}
	}

	job := &models.Job{
		OrganizationID: orgID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       optional(req.Location),
		Requirements:   optional(req.Requirements),
		SalaryRange:    optional(req.SalaryRange),
		Status:         models.JobStatusActive,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob hard-deletes a posting and its applications. Scoped to the
// owning organization: a mismatched org gets ErrNotFound, so one org cannot
// delete another's job.
func (s *JobService) DeleteJob(ctx context.Context, orgID, jobID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		err := tx.Where("id = ? AND organization_id = ?", jobID, orgID).First(&job).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}

// UpdateJobStatus toggles a posting between active and inactive.
func (s *JobService) UpdateJobStatus(ctx context.Context, orgID, jobID, status string) (*models.Job, error) {
	if status != models.JobStatusActive && status != models.JobStatusInactive {
		return nil, &apperrors.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown job status %q", status)}
	}

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

	job.Status = status
	if err := s.DB.WithContext(ctx).Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// JobWithApplicationCount returns an owned posting together with how many
// applications it has received.
func (s *JobService) JobWithApplicationCount(ctx context.Context, orgID, jobID string) (*models.Job, int64, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).
		Where("id = ? AND organization_id = ?", jobID, orgID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrNotFound
		}
		return nil, 0, err
	}

	var count int64
	err = s.DB.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	if err != nil {
		return nil, 0, err
	}
	return &job, count, nil
}

func toJobView(job models.Job) dtos.JobView {
	orgName := job.Organization.Name
	if orgName == "" {
		orgName = placeholderOrgName
	}
	return dtos.JobView{
		ID:               job.ID,
		OrganizationID:   job.OrganizationID,
		OrganizationName: orgName,
		Title:            job.Title,
		Description:      job.Description,
		Location:         job.Location,
		Requirements:     job.Requirements,
		SalaryRange:      job.SalaryRange,
		Status:           job.Status,
		Remote:           IsRemote(job.Location),
		CreatedAt:        job.CreatedAt,
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
