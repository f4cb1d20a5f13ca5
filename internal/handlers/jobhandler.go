package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofreelancing/platform-api/internal/services"
)

// JobHandler serves the public job board.
type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is the GET /jobs endpoint: active jobs newest first, joined with
// organization names. An optional ?q= applies the same substring filter the
// SPA runs client-side.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListActiveJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if q := c.Query("q"); q != "" {
		jobs = services.FilterJobs(jobs, q)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
