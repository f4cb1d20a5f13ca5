package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ngofreelancing/platform-api/internal/apperrors"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/ngofreelancing/platform-api/internal/models"
	"gorm.io/gorm"
)

type OrganizationService struct {
	DB *gorm.DB
}

func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{DB: db}
}

// Register creates the organization profile for the signed-in identity. One
// profile per identity; registering twice is a validation error.
func (s *OrganizationService) Register(ctx context.Context, identity *auth.Identity, req *dtos.OrganizationRegistrationRequest) (*models.Organization, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &apperrors.ValidationError{Field: "name", Msg: "name is required"}
	}

	var existing int64
	err := s.DB.WithContext(ctx).
		Model(&models.Organization{}).
		Where("user_id = ?", identity.UserID).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, &apperrors.ValidationError{Field: "user_id", Msg: "organization profile already exists"}
	}

	org := &models.Organization{
		UserID:    identity.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Type:      req.Type,
		FocusArea: req.FocusArea,
	}
	if err := s.DB.WithContext(ctx).Create(org).Error; err != nil {
		// The existence check races against a concurrent registration for the
		// same identity; the unique index on user_id is the backstop.
		if isUniqueViolation(err) {
			return nil, &apperrors.ValidationError{Field: "user_id", Msg: "organization profile already exists"}
		}
		return nil, err
	}
	return org, nil
}

// GetByUser resolves the organization behind an authenticated identity.
func (s *OrganizationService) GetByUser(ctx context.Context, userID string) (*models.Organization, error) {
	var org models.Organization
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// Update patches the profile fields that are present in the request.
func (s *OrganizationService) Update(ctx context.Context, userID string, req *dtos.OrganizationUpdateRequest) (*models.Organization, error) {
	org, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, &apperrors.ValidationError{Field: "name", Msg: "name cannot be blank"}
		}
		org.Name = *req.Name
	}
	if req.Email != nil {
		org.Email = *req.Email
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}
	if req.Type != nil {
		org.Type = *req.Type
	}
	if req.FocusArea != nil {
		org.FocusArea = *req.FocusArea
	}

	if err := s.DB.WithContext(ctx).Save(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}
