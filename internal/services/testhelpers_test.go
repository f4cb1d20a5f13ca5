package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/ngofreelancing/platform-api/internal/auth"
	"github.com/ngofreelancing/platform-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the production schema.
// Foreign key constraints are skipped so tests can stage dangling
// references, which the list views must tolerate.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Organization{}, &models.Job{}, &models.Application{}))
	return db
}

func seedOrganization(t *testing.T, db *gorm.DB, name string) *models.Organization {
	t.Helper()
	org := &models.Organization{
		UserID: "user-" + name,
		Name:   name,
		Email:  name + "@example.org",
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

func seedJob(t *testing.T, db *gorm.DB, orgID, title string, location *string) *models.Job {
	t.Helper()
	job := &models.Job{
		OrganizationID: orgID,
		Title:          title,
		Description:    "Support local communities through field work",
		Location:       location,
		Status:         models.JobStatusActive,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func testIdentity(email, name string) *auth.Identity {
	return &auth.Identity{UserID: "uid-" + email, Email: email, Name: name}
}

func strptr(s string) *string { return &s }
