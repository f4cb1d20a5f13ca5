package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/models"
	"github.com/ngofreelancing/platform-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the real services against an in-memory database with
// the same routes main registers.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Organization{}, &models.Job{}, &models.Application{}))

	jobService := services.NewJobService(db, false)
	applicationService := services.NewApplicationService(db)
	organizationService := services.NewOrganizationService(db)

	jobHandler := NewJobHandler(jobService)
	applicationHandler := NewApplicationHandler(applicationService)
	organizationHandler := NewOrganizationHandler(organizationService, jobService, applicationService)
	chatHandler := NewChatHandler(&services.ChatService{})

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/chat", chatHandler.Chat)

		api.POST("/jobs/:id/applications", auth.RequireAuth(), applicationHandler.Submit)
		me := api.Group("/me", auth.RequireAuth())
		{
			me.GET("/applications", applicationHandler.ListMine)
			me.DELETE("/applications/:id", applicationHandler.Withdraw)
		}

		orgs := api.Group("/organizations", auth.RequireAuth())
		{
			orgs.POST("", organizationHandler.Register)
			orgs.GET("/me", organizationHandler.Me)
			orgs.PATCH("/me", organizationHandler.UpdateMe)
			orgs.POST("/me/jobs", organizationHandler.CreateJob)
			orgs.GET("/me/jobs", organizationHandler.ListJobs)
			orgs.GET("/me/jobs/:id", organizationHandler.GetJob)
			orgs.DELETE("/me/jobs/:id", organizationHandler.DeleteJob)
			orgs.PATCH("/me/jobs/:id/status", organizationHandler.UpdateJobStatus)
			orgs.GET("/me/jobs/:id/applications", organizationHandler.ListJobApplications)
			orgs.GET("/me/applications", organizationHandler.ListApplications)
			orgs.PATCH("/me/applications/:id", organizationHandler.UpdateApplicationStatus)
		}
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func applicantHeaders(email, name string) map[string]string {
	return map[string]string{
		auth.HeaderUserID:    "uid-" + email,
		auth.HeaderUserEmail: email,
		auth.HeaderUserName:  name,
	}
}

// seedOrgAccount registers an organization through the API and returns its
// identity headers. The email is derived from a space-free slug of the name
// so it stays a valid address.
func seedOrgAccount(t *testing.T, r *gin.Engine, name string) map[string]string {
	t.Helper()
	email := strings.ToLower(strings.ReplaceAll(name, " ", "-")) + "@example.org"
	headers := applicantHeaders(email, name)
	w := doJSON(t, r, http.MethodPost, "/api/v1/organizations", gin.H{
		"name":  name,
		"email": email,
	}, headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return headers
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs/some-id/applications", gin.H{}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrganizationProfileLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	headers := applicantHeaders("ngo@example.org", "Helping Hands")

	// No profile yet.
	w := doJSON(t, r, http.MethodGet, "/api/v1/organizations/me", nil, headers)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/organizations", gin.H{
		"name":  "Helping Hands",
		"email": "ngo@example.org",
		"phone": "+91 9599912493",
	}, headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Registering twice is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/organizations", gin.H{
		"name":  "Helping Hands",
		"email": "ngo@example.org",
	}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/organizations/me", gin.H{
		"focus_area": "Community Health",
	}, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/organizations/me", nil, headers)
	require.Equal(t, http.StatusOK, w.Code)
	var org models.Organization
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &org))
	assert.Equal(t, "Community Health", org.FocusArea)
	assert.Equal(t, "Helping Hands", org.Name)
}

func TestCreateJobValidationOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)
	headers := seedOrgAccount(t, r, "Helping Hands")

	// Binding rejects a missing title outright.
	w := doJSON(t, r, http.MethodPost, "/api/v1/organizations/me/jobs", gin.H{
		"description": "desc",
	}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A whitespace title passes binding but fails service validation.
	w = doJSON(t, r, http.MethodPost, "/api/v1/organizations/me/jobs", gin.H{
		"title":       "   ",
		"description": "desc",
	}, headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobBoardAndSearch(t *testing.T) {
	r, _ := newTestRouter(t)
	headers := seedOrgAccount(t, r, "Helping Hands")

	for _, job := range []gin.H{
		{"title": "Community Health Worker", "description": "Coordinate rural health camps", "location": "Remote, India"},
		{"title": "Field Coordinator", "description": "Organize plantation drives", "location": "Delhi"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/organizations/me/jobs", job, headers)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board struct {
		Jobs []map[string]any `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Len(t, board.Jobs, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/jobs?q=remote", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Jobs, 1)
	assert.Equal(t, "Community Health Worker", board.Jobs[0]["title"])
}

func TestApplyReviewWithdrawOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)
	orgHeaders := seedOrgAccount(t, r, "Helping Hands")

	w := doJSON(t, r, http.MethodPost, "/api/v1/organizations/me/jobs", gin.H{
		"title":       "Counselor",
		"description": "Provide counseling to students",
	}, orgHeaders)
	require.Equal(t, http.StatusCreated, w.Code)
	var job models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))

	applicant := applicantHeaders("x@example.com", "X Kumar")
	applyPath := fmt.Sprintf("/api/v1/jobs/%s/applications", job.ID)

	w = doJSON(t, r, http.MethodPost, applyPath, gin.H{"resume_url": "https://example.com/cv.pdf"}, applicant)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var app models.Application
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
	assert.Equal(t, models.ApplicationStatusPending, app.Status)

	// Duplicate submission surfaces as a conflict notice.
	w = doJSON(t, r, http.MethodPost, applyPath, gin.H{}, applicant)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Organization accepts with a note.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/organizations/me/applications/"+app.ID, gin.H{
		"status": "accepted",
		"notes":  "Strong profile",
	}, orgHeaders)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Applicant sees the accepted status.
	w = doJSON(t, r, http.MethodGet, "/api/v1/me/applications", nil, applicant)
	require.Equal(t, http.StatusOK, w.Code)
	var mine struct {
		Applications []map[string]any `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine.Applications, 1)
	assert.Equal(t, "accepted", mine.Applications[0]["status"])

	// Withdrawing an accepted application is refused.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/me/applications/"+app.ID, nil, applicant)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestChatEndpointKeywordMode(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{
		"messages": []gin.H{{"role": "user", "content": "how do I apply?"}},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reply    string `json:"reply"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "application")

	// Empty conversations are rejected by binding.
	w = doJSON(t, r, http.MethodPost, "/api/v1/chat", gin.H{"messages": []gin.H{}}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
