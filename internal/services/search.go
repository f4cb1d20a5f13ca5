package services

import (
	"strings"

	"github.com/ngofreelancing/platform-api/internal/dtos"
)

// IsRemote classifies a job location. A job is remote iff the location is
// absent, blank after trimming, or contains "remote" case-insensitively.
func IsRemote(location *string) bool {
	if location == nil {
		return true
	}
	trimmed := strings.TrimSpace(*location)
	if trimmed == "" {
		return true
	}
	return strings.Contains(strings.ToLower(trimmed), "remote")
}

// FilterJobs narrows an in-memory job list by a free-text query. A blank
// query returns the input unchanged. Otherwise a job matches when the query
// appears case-insensitively in its title, organization name, location or
// description; absent fields are skipped, never matched. Relative order of
// matches mirrors the input order.
func FilterJobs(jobs []dtos.JobView, query string) []dtos.JobView {
	if strings.TrimSpace(query) == "" {
		return jobs
	}
	q := strings.ToLower(query)
	matched := make([]dtos.JobView, 0, len(jobs))
	for _, job := range jobs {
		if jobMatches(job, q) {
			matched = append(matched, job)
		}
	}
	return matched
}

func jobMatches(job dtos.JobView, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(job.Title), loweredQuery) {
		return true
	}
	if job.OrganizationName != "" && strings.Contains(strings.ToLower(job.OrganizationName), loweredQuery) {
		return true
	}
	if job.Location != nil && strings.Contains(strings.ToLower(*job.Location), loweredQuery) {
		return true
	}
	return strings.Contains(strings.ToLower(job.Description), loweredQuery)
}
