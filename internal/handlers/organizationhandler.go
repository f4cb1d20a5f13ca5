package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/ngofreelancing/platform-api/internal/models"
	"github.com/ngofreelancing/platform-api/internal/services"
)

// OrganizationHandler serves the organization dashboard: profile, job
// management and applicant review.
type OrganizationHandler struct {
	OrganizationService *services.OrganizationService
	JobService          *services.JobService
	ApplicationService  *services.ApplicationService
}

func NewOrganizationHandler(o *services.OrganizationService, j *services.JobService, a *services.ApplicationService) *OrganizationHandler {
	return &OrganizationHandler{
		OrganizationService: o,
		JobService:          j,
		ApplicationService:  a,
	}
}

// currentOrg resolves the organization behind the signed-in identity. On
// failure it has already written the response.
func (h *OrganizationHandler) currentOrg(c *gin.Context) (*models.Organization, bool) {
	identity, err := auth.FromContext(c)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	org, err := h.OrganizationService.GetByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return org, true
}

// Register is the POST /organizations endpoint.
func (h *OrganizationHandler) Register(c *gin.Context) {
	identity, err := auth.FromContext(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dtos.OrganizationRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	org, err := h.OrganizationService.Register(c.Request.Context(), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// Me is the GET /organizations/me endpoint.
func (h *OrganizationHandler) Me(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, org)
}

// UpdateMe is the PATCH /organizations/me endpoint.
func (h *OrganizationHandler) UpdateMe(c *gin.Context) {
	identity, err := auth.FromContext(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dtos.OrganizationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	org, err := h.OrganizationService.Update(c.Request.Context(), identity.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// CreateJob is the POST /organizations/me/jobs endpoint.
func (h *OrganizationHandler) CreateJob(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.CreateJob(c.Request.Context(), org.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListJobs is the GET /organizations/me/jobs endpoint: every posting the
// organization owns, any status.
func (h *OrganizationHandler) ListJobs(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	jobs, err := h.JobService.ListJobsByOrganization(c.Request.Context(), org.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob is the GET /organizations/me/jobs/:id endpoint: the posting plus
// its application count.
func (h *OrganizationHandler) GetJob(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	job, count, err := h.JobService.JobWithApplicationCount(c.Request.Context(), org.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "application_count": count})
}

// DeleteJob is the DELETE /organizations/me/jobs/:id endpoint.
func (h *OrganizationHandler) DeleteJob(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	if err := h.JobService.DeleteJob(c.Request.Context(), org.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// UpdateJobStatus is the PATCH /organizations/me/jobs/:id/status endpoint.
func (h *OrganizationHandler) UpdateJobStatus(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	var req dtos.JobStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.UpdateJobStatus(c.Request.Context(), org.ID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobApplications is the GET /organizations/me/jobs/:id/applications
// endpoint.
func (h *OrganizationHandler) ListJobApplications(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	apps, err := h.ApplicationService.ListForJob(c.Request.Context(), org.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListApplications is the GET /organizations/me/applications endpoint:
// applications across all the organization's jobs.
func (h *OrganizationHandler) ListApplications(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	apps, err := h.ApplicationService.ListForOrganization(c.Request.Context(), org.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// UpdateApplicationStatus is the PATCH /organizations/me/applications/:id
// endpoint: status change plus optional notes.
func (h *OrganizationHandler) UpdateApplicationStatus(c *gin.Context) {
	org, ok := h.currentOrg(c)
	if !ok {
		return
	}

	var req dtos.ApplicationStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), org.ID, c.Param("id"), req.Status, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
