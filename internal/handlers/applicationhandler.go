package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/dtos"
	"github.com/ngofreelancing/platform-api/internal/services"
)

// ApplicationHandler serves the applicant-side application flows.
type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// Submit is the POST /jobs/:id/applications endpoint.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	identity, err := auth.FromContext(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dtos.ApplicationSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.ApplicationService.Submit(c.Request.Context(), c.Param("id"), identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMine is the GET /me/applications endpoint.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	identity, err := auth.FromContext(c)
	if err != nil {
		respondError(c, err)
		return
	}

	apps, err := h.ApplicationService.ListForApplicant(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Withdraw is the DELETE /me/applications/:id endpoint. Only pending
// applications can be withdrawn.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	identity, err := auth.FromContext(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.ApplicationService.Withdraw(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
