package dtos

type OrganizationRegistrationRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`

	// Optional Fields
	Phone     string `json:"phone"`
	Type      string `json:"type"`
	FocusArea string `json:"focus_area"`
}

// OrganizationUpdateRequest patches the profile; nil fields are left alone.
type OrganizationUpdateRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Type      *string `json:"type"`
	FocusArea *string `json:"focus_area"`
}
